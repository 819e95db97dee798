package faillog

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/Kargones/faillog/classify"
)

// pkgPrefix — префикс символов этого пакета; такие кадры пропускаются
// при поиске точки возникновения panic.
const pkgPrefix = "github.com/Kargones/faillog."

// Wrap возвращает обёртку над op с идентичной сигнатурой, дополненной
// внеполосными опциями вызова. Успешный результат проходит насквозь без
// единой записи в приёмник; ненулевая ошибка логируется один раз и
// возвращается той же величиной; panic логируется один раз и возбуждается
// повторно с тем же значением.
func (r *Recorder) Wrap(op func(context.Context) error) func(context.Context, ...Option) error {
	name := funcName(op)
	return func(ctx context.Context, opts ...Option) error {
		call := r.resolve(name, opts)
		defer r.relogPanic(call)

		err := op(ctx)
		if err != nil {
			r.write(call, err, errorLine(err))
		}
		return err
	}
}

// Wrap — обёртка через рекордер по умолчанию.
func Wrap(op func(context.Context) error) func(context.Context, ...Option) error {
	return std.Wrap(op)
}

// WrapResult — вариант Wrap для операций, возвращающих значение.
// Методы в Go не бывают обобщёнными, поэтому рекордер передаётся
// параметром; nil означает рекордер по умолчанию.
func WrapResult[T any](r *Recorder, op func(context.Context) (T, error)) func(context.Context, ...Option) (T, error) {
	if r == nil {
		r = std
	}
	name := funcName(op)
	return func(ctx context.Context, opts ...Option) (T, error) {
		call := r.resolve(name, opts)
		defer r.relogPanic(call)

		result, err := op(ctx)
		if err != nil {
			r.write(call, err, errorLine(err))
		}
		return result, err
	}
}

// relogPanic логирует перехваченную panic и возбуждает её повторно
// с тем же значением. Вызывается только через defer.
func (r *Recorder) relogPanic(call callInfo) {
	if p := recover(); p != nil {
		r.write(call, classify.NewPanicError(p), panicLine())
		panic(p)
	}
}

// funcName извлекает имя функции из её символа: отбрасывает путь пакета
// и квалификатор, оставляя аналог func.__name__.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "unknown"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// callerName возвращает имя функции на skip кадров выше по стеку
// либо "unknown".
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "unknown"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// errorLine извлекает номер строки из ошибки, если та его несёт.
// Обычные ошибки Go не хранят точку возникновения, поэтому по умолчанию
// возвращается UnknownLine.
func errorLine(err error) string {
	var located interface{ SourceLine() int }
	if errors.As(err, &located) {
		return strconv.Itoa(located.SourceLine())
	}
	return UnknownLine
}

// panicLine находит строку точки возникновения panic: первый кадр стека,
// не принадлежащий рантайму и этому пакету. Вызывается из relogPanic во
// время раскрутки, когда кадр паниковавшего кода ещё на стеке.
func panicLine() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fn := frame.Function
		if fn != "" &&
			!strings.HasPrefix(fn, "runtime.") &&
			!strings.HasPrefix(fn, pkgPrefix) {
			return strconv.Itoa(frame.Line)
		}
		if !more {
			return UnknownLine
		}
	}
}
