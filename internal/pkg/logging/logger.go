// Package logging предоставляет интерфейс и реализации для диагностического
// логирования демонстрационной утилиты. Это служебные логи самой утилиты;
// строки наблюдения отказов пишет приёмник faillog и только он.
package logging

// Logger определяет интерфейс для структурированного логирования.
// Реализации: SlogAdapter (использует slog из stdlib).
//
// Все методы принимают сообщение и опциональные key-value пары:
//
//	logger.Info("Сценарий выполнен", "scenario", name, "duration_ms", 150)
//
// ВАЖНО: Logger пишет ТОЛЬКО в stderr или файл, никогда в stdout.
// stdout зарезервирован под лог-строки отказов (контракт приёмника).
type Logger interface {
	// Debug записывает сообщение уровня DEBUG.
	// Используется для детальной диагностики.
	Debug(msg string, args ...any)

	// Info записывает сообщение уровня INFO.
	// Используется для значимых событий (старт/стоп, успешные операции).
	Info(msg string, args ...any)

	// Warn записывает сообщение уровня WARN.
	// Используется для recoverable issues, deprecated usage.
	Warn(msg string, args ...any)

	// Error записывает сообщение уровня ERROR.
	// Используется для ошибок требующих внимания.
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	// Атрибуты будут включены во все последующие записи.
	//
	//	logger.With("scenario", name).Info("Запуск")
	With(args ...any) Logger
}
