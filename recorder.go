package faillog

import (
	"time"

	"github.com/google/uuid"

	"github.com/Kargones/faillog/classify"
)

// noFailureWarning пишется приёмнику при вызове LogFailure без отказа.
const noFailureWarning = "Warning: LogFailure called outside of failure context"

// Config задаёт внешние зависимости Recorder. Нулевое значение валидно:
// незаполненные поля получают значения по умолчанию.
type Config struct {
	// Sink — приёмник лог-строк. По умолчанию stdout.
	Sink Sink

	// Now — источник времени. По умолчанию time.Now.
	Now func() time.Time

	// NewID — генератор корреляционных идентификаторов.
	// По умолчанию uuid.NewString.
	NewID func() string
}

// Recorder строит и записывает Record для каждого наблюдённого отказа.
// Состояние между вызовами не разделяется, кроме самого приёмника;
// Recorder безопасен для конкурентного использования.
type Recorder struct {
	sink  Sink
	now   func() time.Time
	newID func() string
}

// New создаёт Recorder, подставляя значения по умолчанию вместо
// незаполненных полей конфигурации.
func New(cfg Config) *Recorder {
	r := &Recorder{
		sink:  cfg.Sink,
		now:   cfg.Now,
		newID: cfg.NewID,
	}
	if r.sink == nil {
		r.sink = &stdoutSink{}
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = uuid.NewString
	}
	return r
}

// std — рекордер по умолчанию, аналог модульного декоратора в оригинале:
// пишет в stdout, генерирует uuid.
var std = New(Config{})

// Default возвращает рекордер по умолчанию (stdout).
func Default() *Recorder {
	return std
}

// resolve применяет опции вызова и заполняет обязательные поля:
// correlationID всегда непуст, operation — fallbackName либо "unknown".
func (r *Recorder) resolve(fallbackName string, opts []Option) callInfo {
	call := callInfo{operation: fallbackName}
	for _, opt := range opts {
		opt(&call)
	}
	if call.correlationID == "" {
		call.correlationID = r.newID()
	}
	if call.operation == "" {
		call.operation = "unknown"
	}
	return call
}

// write классифицирует отказ, строит Record и пишет его одной строкой.
func (r *Recorder) write(call callInfo, err error, sourceLine string) {
	rec := Record{
		Timestamp:     r.now(),
		CorrelationID: call.correlationID,
		Operation:     call.operation,
		Category:      classify.Classify(err),
		Message:       err.Error(),
		SourceLine:    sourceLine,
		Fields:        call.fields,
	}
	r.sink.WriteLine(rec.Line())
}

// LogFailure — ручная точка входа для кода вне контракта обёртки.
// Отказ передаётся явно (в Go нет интроспекции «текущего» отказа);
// nil означает отсутствие отказа: пишется одна предупреждающая строка,
// метод возвращается без ошибки. Повторного возбуждения отказа нет —
// им распоряжается вызывающий код.
func (r *Recorder) LogFailure(err error, opts ...Option) {
	r.logFailure(err, opts)
}

// LogFailure — ручная точка входа через рекордер по умолчанию.
func LogFailure(err error, opts ...Option) {
	std.logFailure(err, opts)
}

func (r *Recorder) logFailure(err error, opts []Option) {
	if err == nil {
		r.sink.WriteLine(noFailureWarning)
		return
	}
	// Имя операции по умолчанию — имя непосредственного вызывающего:
	// callerName(0..2) — callerName, logFailure, LogFailure.
	call := r.resolve(callerName(3), opts)
	r.write(call, err, errorLine(err))
}
