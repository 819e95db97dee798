// Package config содержит конфигурацию демонстрационной утилиты.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Kargones/faillog/internal/constants"
	"github.com/Kargones/faillog/internal/pkg/logging"
)

// Config представляет настройки утилиты. Источники, по убыванию
// приоритета: переменные окружения, YAML-файл (FL_CONFIG_PATH),
// значения по умолчанию из тегов.
type Config struct {
	// Scenario — какой сценарий запускать; см. constants.Scenario*.
	Scenario string `yaml:"scenario" env:"FL_SCENARIO" env-default:"all"`

	// CorrelationID — фиксированный корреляционный идентификатор для
	// всех сценариев. Пустое значение — генерировать uuid на каждый отказ.
	CorrelationID string `yaml:"correlationId" env:"FL_CORRELATION_ID"`

	// Logging — настройки диагностического логирования утилиты.
	Logging logging.Config `yaml:"logging"`
}

// knownScenarios — допустимые значения Scenario.
var knownScenarios = []string{
	constants.ScenarioAll,
	constants.ScenarioDivide,
	constants.ScenarioFile,
	constants.ScenarioLookup,
	constants.ScenarioDecode,
	constants.ScenarioCustom,
}

// Validate проверяет корректность загруженной конфигурации.
func (c *Config) Validate() error {
	for _, s := range knownScenarios {
		if c.Scenario == s {
			return nil
		}
	}
	return fmt.Errorf("неизвестный сценарий %q, допустимые: %s",
		c.Scenario, strings.Join(knownScenarios, ", "))
}

// Load загружает конфигурацию из файла path и окружения.
// Пустой path означает только окружение и значения по умолчанию.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("не удалось прочитать конфигурацию %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("не удалось прочитать переменные окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad загружает конфигурацию, беря путь к файлу из FL_CONFIG_PATH.
// Возвращает ошибку вместо паники: точка входа сама решает, как завершаться.
func MustLoad() (*Config, error) {
	return Load(os.Getenv(constants.EnvConfigPath))
}
