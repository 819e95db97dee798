package faillog

import "fmt"

// callInfo — разрешённые параметры одного вызова обёртки.
type callInfo struct {
	correlationID string
	operation     string
	fields        map[string]string
}

// Option — внеполосный параметр вызова обёрнутой операции. Опции видны
// только логирующему слою и никогда не передаются самой операции.
type Option func(*callInfo)

// WithCorrelationID задаёт корреляционный идентификатор вместо
// генерируемого. Пустое значение игнорируется.
func WithCorrelationID(id string) Option {
	return func(c *callInfo) {
		if id != "" {
			c.correlationID = id
		}
	}
}

// WithOperation задаёт имя операции вместо выведенного из символа функции.
// Пустое значение игнорируется.
func WithOperation(name string) Option {
	return func(c *callInfo) {
		if name != "" {
			c.operation = name
		}
	}
}

// WithField добавляет контекстную пару в лог-строку. Значение рендерится
// через fmt.Sprint; повторный ключ перезаписывает предыдущее значение.
func WithField(key string, value any) Option {
	return func(c *callInfo) {
		if c.fields == nil {
			c.fields = make(map[string]string)
		}
		c.fields[key] = fmt.Sprint(value)
	}
}
