package classify

import (
	"errors"
	"fmt"
)

// Classify возвращает категорию для err. Функция чистая и тотальная:
// никогда не паникует, для любого входа возвращает ровно одну категорию.
//
// Порядок проверки:
//  1. nil → Unknown;
//  2. Categorizer в цепочке ошибки → её собственная категория;
//  3. упорядоченная таблица правил (от частного к общему, см. rules.go);
//  4. Generic для всего остального.
func Classify(err error) Category {
	if err == nil {
		return Unknown
	}

	var c Categorizer
	if errors.As(err, &c) {
		return c.FailureCategory()
	}

	for _, r := range rules {
		if r.match(err) {
			return r.category
		}
	}

	return Generic
}

// PanicError оборачивает значение panic, не являющееся ошибкой
// (panic("boom"), panic(42)). Такие значения классифицируются как Unknown.
type PanicError struct {
	// Value — исходное значение, переданное в panic.
	Value any
}

// Error возвращает текстовое представление значения panic.
func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// NewPanicError приводит восстановленное значение panic к error.
// Значения, уже являющиеся ошибками (в т.ч. runtime.Error), возвращаются
// как есть, чтобы таблица правил видела исходный тип.
func NewPanicError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}
