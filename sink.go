package faillog

import (
	"io"
	"os"
	"sync"
)

// Sink — приёмник готовых лог-строк. Вызывается ровно один раз на
// наблюдённый отказ (или на предупреждение LogFailure без отказа).
// Реализация не должна дописывать к строке ничего, кроме перевода строки.
type Sink interface {
	WriteLine(line string)
}

// stdoutSink — приёмник по умолчанию. Разыменовывает os.Stdout при
// каждой записи, а не при создании: подмена stdout (тесты, перехват
// вывода) продолжает работать.
type stdoutSink struct {
	mu sync.Mutex
}

// WriteLine записывает строку в текущий os.Stdout одним вызовом Write.
func (s *stdoutSink) WriteLine(line string) {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = os.Stdout.Write(buf)
}

// writerSink пишет строки в io.Writer. Одна строка — один вызов Write,
// под мьютексом: конкурентные обёртки не перемешивают частичные строки.
type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink оборачивает w в построчный приёмник.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

// WriteLine записывает строку и перевод строки одним вызовом Write.
// Ошибка записи игнорируется: доставка best-effort по контракту.
func (s *writerSink) WriteLine(line string) {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(buf)
}
