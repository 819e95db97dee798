package logging

// Поддерживаемые форматы вывода логов.
// console — человекочитаемый цветной вывод через tint, для локальных
// запусков демонстрационной утилиты.
const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatConsole = "console"
)

// Поддерживаемые уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Поддерживаемые типы вывода логов.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию для Config.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/faillog.log"
	DefaultMaxSize    = 50 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config содержит настройки диагностического логирования.
type Config struct {
	// Format определяет формат вывода: "json", "text" или "console".
	// По умолчанию: "text".
	Format string `yaml:"format" env:"FL_LOG_FORMAT" env-default:"text"`

	// Level определяет минимальный уровень логирования.
	// Допустимые значения: "debug", "info", "warn", "error".
	Level string `yaml:"level" env:"FL_LOG_LEVEL" env-default:"info"`

	// Output определяет куда выводить логи: "stderr" или "file".
	// stdout занят лог-строками отказов и не предлагается.
	Output string `yaml:"output" env:"FL_LOG_OUTPUT" env-default:"stderr"`

	// FilePath задаёт путь к файлу логов (при output="file").
	FilePath string `yaml:"filePath" env:"FL_LOG_FILE" env-default:"/var/log/faillog.log"`

	// MaxSize задаёт максимальный размер файла в мегабайтах перед ротацией.
	MaxSize int `yaml:"maxSize" env:"FL_LOG_MAX_SIZE" env-default:"50"`

	// MaxBackups задаёт количество backup файлов.
	MaxBackups int `yaml:"maxBackups" env:"FL_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge задаёт максимальный возраст backup файлов в днях.
	MaxAge int `yaml:"maxAge" env:"FL_LOG_MAX_AGE" env-default:"7"`

	// Compress определяет сжимать ли backup файлы в gzip.
	Compress bool `yaml:"compress" env:"FL_LOG_COMPRESS" env-default:"true"`
}
