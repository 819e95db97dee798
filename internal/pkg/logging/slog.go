package logging

import "log/slog"

// SlogAdapter реализует Logger поверх slog из stdlib. Это основная
// реализация диагностического логгера faillog: он пишет в stderr или
// файл и никогда не касается stdout, зарезервированного под строки
// отказов.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter оборачивает готовый slog.Logger. Для сборки по
// конфигурации используйте NewLogger(). При nil подставляется
// slog.Default() с предупреждением.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
		logger.Warn("faillog/logging: nil slog.Logger passed to NewSlogAdapter, using default")
	}
	return &SlogAdapter{logger: logger}
}

// Debug записывает диагностическое сообщение уровня DEBUG.
func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

// Info записывает диагностическое сообщение уровня INFO.
func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

// Warn записывает диагностическое сообщение уровня WARN.
func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error записывает диагностическое сообщение уровня ERROR.
func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// With возвращает новый Logger с добавленными атрибутами.
func (s *SlogAdapter) With(args ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(args...)}
}
