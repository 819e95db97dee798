// Package classify определяет закрытый набор категорий отказов и
// классификатор, который сопоставляет произвольную ошибку (или значение
// panic) ровно одной категории. Классификация тотальна: любой вход,
// включая nil, получает категорию.
package classify

// Category — стабильный строковый тег категории отказа.
// Значения входят в формат лог-строки и не должны меняться между версиями.
type Category string

// Категории перечислены группами в порядке убывания специфичности,
// в том же порядке они проверяются таблицей правил (см. rules.go).
const (
	// Управляющие сигналы.
	Canceled Category = "Canceled"

	// Платформенные (ОС) отказы, от частного к общему.
	NotFound           Category = "NotFound"
	AlreadyExists      Category = "AlreadyExists"
	IsADirectory       Category = "IsADirectory"
	NotADirectory      Category = "NotADirectory"
	PermissionDenied   Category = "PermissionDenied"
	ProcessNotFound    Category = "ProcessNotFound"
	Timeout            Category = "Timeout"
	Interrupted        Category = "Interrupted"
	ChildProcessFailed Category = "ChildProcessFailed"
	WouldBlock         Category = "WouldBlock"
	ConnectionReset    Category = "ConnectionReset"
	ConnectionRefused  Category = "ConnectionRefused"
	ConnectionAborted  Category = "ConnectionAborted"
	BrokenPipe         Category = "BrokenPipe"
	ConnectionError    Category = "ConnectionError"
	NameUnresolved     Category = "NameUnresolved"
	OSFailure          Category = "OSFailure"

	// Арифметика.
	DivisionByZero     Category = "DivisionByZero"
	FloatingPointError Category = "FloatingPointError"
	Overflow           Category = "Overflow"
	ArithmeticError    Category = "ArithmeticError"

	// Типы и значения.
	TypeMismatch    Category = "TypeMismatch"
	InvalidArgument Category = "InvalidArgument"
	EncodingError   Category = "EncodingError"
	DecodeError     Category = "DecodeError"
	EncodeError     Category = "EncodeError"

	// Поиск.
	KeyNotFound      Category = "KeyNotFound"
	OutOfRange       Category = "OutOfRange"
	AttributeMissing Category = "AttributeMissing"
	LookupFailed     Category = "LookupFailed"

	// Загрузка модулей.
	ImportFailure Category = "ImportFailure"

	// Ресурсы.
	ResourceExhausted Category = "ResourceExhausted"
	RecursionLimit    Category = "RecursionLimit"

	// Маркеры потока управления.
	Unimplemented      Category = "Unimplemented"
	IterationExhausted Category = "IterationExhausted"
	StreamClosed       Category = "StreamClosed"

	// Синтаксис.
	SyntaxInvalid Category = "SyntaxInvalid"

	// Внутренние отказы платформы.
	InternalError     Category = "InternalError"
	DanglingReference Category = "DanglingReference"

	// Буферы и потоки.
	BufferError   Category = "BufferError"
	UnexpectedEof Category = "UnexpectedEof"

	// Проверки.
	AssertionFailed Category = "AssertionFailed"

	// Отказы времени выполнения.
	RuntimeError Category = "RuntimeError"

	// Базовые категории. Generic — любая непустая ошибка, не попавшая
	// в таблицу; Unknown — nil и не-ошибочные значения panic.
	Generic Category = "Generic"
	Unknown Category = "Unknown"
)

// String возвращает строковое значение тега.
func (c Category) String() string {
	return string(c)
}

// Categorizer позволяет доменной ошибке объявить собственную категорию.
// Самодекларация всегда специфичнее любой эвристики, поэтому проверяется
// до таблицы правил. Аналог кодов apperrors: ошибка сама знает свой тег.
type Categorizer interface {
	FailureCategory() Category
}
