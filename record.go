package faillog

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/Kargones/faillog/classify"
)

const (
	// NoMessage подставляется вместо пустого сообщения отказа.
	NoMessage = "No message provided"

	// UnknownLine — значение поля Line, когда строка исходника недоступна.
	UnknownLine = "Unknown"

	// timestampLayout — ISO-8601 с микросекундами и смещением зоны.
	// Для UTC даёт суффикс "+00:00".
	timestampLayout = "2006-01-02T15:04:05.000000-07:00"
)

// Record — неизменяемое описание одного наблюдённого отказа.
// Конструируется в момент пересечения отказом границы обёртки,
// записывается в приёмник ровно один раз и нигде не сохраняется.
type Record struct {
	// Timestamp — момент наблюдения отказа; при форматировании
	// приводится к UTC.
	Timestamp time.Time

	// CorrelationID — идентификатор для сопоставления строки с отказом.
	// Никогда не пуст: при отсутствии пользовательского значения
	// Recorder генерирует свежий.
	CorrelationID string

	// Operation — имя отказавшей операции.
	Operation string

	// Category — тег классификации отказа.
	Category classify.Category

	// Message — сообщение отказа; пустое заменяется на NoMessage.
	Message string

	// SourceLine — номер строки точки возникновения отказа
	// или UnknownLine.
	SourceLine string

	// Fields — контекстные пары ключ/значение; при рендеринге
	// сортируются по ключу.
	Fields map[string]string
}

// Line рендерит запись в одну строку фиксированного формата.
func (r Record) Line() string {
	var b strings.Builder

	b.WriteString(r.Timestamp.UTC().Format(timestampLayout))
	b.WriteString(" - ")
	b.WriteString(r.CorrelationID)
	b.WriteString(" - ")
	b.WriteString(r.Operation)
	b.WriteString(" - ")

	if len(r.Fields) > 0 {
		b.WriteString("logged args: ")
		for i, k := range slices.Sorted(maps.Keys(r.Fields)) {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(r.Fields[k])
		}
		b.WriteString(" - ")
	}

	msg := r.Message
	if msg == "" {
		msg = NoMessage
	}
	line := r.SourceLine
	if line == "" {
		line = UnknownLine
	}
	fmt.Fprintf(&b, "ERROR: %s: %s (Line: %s)", r.Category, msg, line)

	return b.String()
}
