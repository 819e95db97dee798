package classify

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// recoverToError выполняет fn и возвращает восстановленное значение panic
// как error. Используется для получения настоящих runtime-ошибок.
func recoverToError(t *testing.T, fn func()) error {
	t.Helper()
	var recovered error
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "ожидалась panic")
			recovered = NewPanicError(r)
		}()
		fn()
	}()
	return recovered
}

func TestClassify_OSFamily(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Category
	}{
		{"not found через PathError", &fs.PathError{Op: "open", Path: "/nope", Err: syscall.ENOENT}, NotFound},
		{"not found sentinel", fs.ErrNotExist, NotFound},
		{"already exists обёрнутый", fmt.Errorf("mkdir: %w", fs.ErrExist), AlreadyExists},
		{"is a directory", syscall.EISDIR, IsADirectory},
		{"not a directory", syscall.ENOTDIR, NotADirectory},
		{"permission denied", fs.ErrPermission, PermissionDenied},
		{"permission denied через errno", &fs.PathError{Op: "open", Path: "/etc/shadow", Err: syscall.EACCES}, PermissionDenied},
		{"process not found", syscall.ESRCH, ProcessNotFound},
		{"deadline exceeded", os.ErrDeadlineExceeded, Timeout},
		{"context deadline", context.DeadlineExceeded, Timeout},
		{"interrupted", syscall.EINTR, Interrupted},
		{"child process", syscall.ECHILD, ChildProcessFailed},
		{"would block", syscall.EAGAIN, WouldBlock},
		{"broken pipe", syscall.EPIPE, BrokenPipe},
		{"invalid argument", syscall.EINVAL, InvalidArgument},
		{"no memory", syscall.ENOMEM, ResourceExhausted},
		{"not implemented", syscall.ENOSYS, Unimplemented},
		{"closed file", fs.ErrClosed, StreamClosed},
		{"closed connection", net.ErrClosed, StreamClosed},
		{"прочий errno", syscall.EBADF, OSFailure},
		{"syscall error", os.NewSyscallError("fcntl", syscall.EBADF), OSFailure},
		{"прочий errno через PathError", &fs.PathError{Op: "read", Path: "/dev/sda", Err: syscall.EIO}, OSFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestClassify_ConnectionFamilyPrecedence(t *testing.T) {
	// Сброс соединения — одновременно сетевой сбой (net.OpError) и
	// платформенный (syscall.Errno). Должна победить самая частная категория.
	reset := &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}
	assert.Equal(t, ConnectionReset, Classify(reset))

	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
	assert.Equal(t, ConnectionRefused, Classify(refused))

	aborted := &net.OpError{Op: "accept", Net: "tcp", Err: os.NewSyscallError("accept", syscall.ECONNABORTED)}
	assert.Equal(t, ConnectionAborted, Classify(aborted))

	// DNS-ошибка внутри OpError: разрешение имени специфичнее общего
	// сетевого отказа.
	dns := &net.OpError{Op: "dial", Net: "tcp", Err: &net.DNSError{Err: "no such host", Name: "nope.invalid"}}
	assert.Equal(t, NameUnresolved, Classify(dns))

	// Общий сетевой сбой без узнаваемого errno.
	generic := &net.OpError{Op: "write", Net: "tcp", Err: errors.New("use of closed network connection")}
	assert.Equal(t, ConnectionError, Classify(generic))

	// Ошибка адреса — сетевая по конкретному типу.
	addr := &net.AddrError{Err: "invalid address", Addr: "::::"}
	assert.Equal(t, ConnectionError, Classify(addr))

	// Голый errno — не сетевой отказ, хотя syscall.Errno и реализует
	// net.Error: семья соединений распознаётся по типам пакета net.
	assert.Equal(t, OSFailure, Classify(syscall.EBADF))
	assert.Equal(t, WouldBlock, Classify(syscall.EWOULDBLOCK))
}

// timeoutErr — минимальная реализация net.Error с Timeout()==true.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return false }

func TestClassify_NetTimeoutInterface(t *testing.T) {
	assert.Equal(t, Timeout, Classify(timeoutErr{}))
	assert.Equal(t, Timeout, Classify(fmt.Errorf("request: %w", timeoutErr{})))
}

func TestClassify_RuntimePanics(t *testing.T) {
	divide := recoverToError(t, func() {
		a, b := 1, 0
		_ = a / b
	})
	assert.Equal(t, DivisionByZero, Classify(divide))

	bounds := recoverToError(t, func() {
		s := []int{1}
		i := 5
		_ = s[i]
	})
	assert.Equal(t, OutOfRange, Classify(bounds))

	nilDeref := recoverToError(t, func() {
		var p *int
		_ = *p //nolint:govet // намеренное разыменование nil
	})
	assert.Equal(t, DanglingReference, Classify(nilDeref))

	badAssert := recoverToError(t, func() {
		var v any = "строка"
		_ = v.(int)
	})
	assert.Equal(t, TypeMismatch, Classify(badAssert))
}

func TestClassify_ValueAndEncoding(t *testing.T) {
	_, syntaxErr := strconv.Atoi("не число")
	assert.Equal(t, InvalidArgument, Classify(syntaxErr))

	_, rangeErr := strconv.Atoi("99999999999999999999999999")
	assert.Equal(t, Overflow, Classify(rangeErr))

	var m map[string]any
	jsonSyntax := json.Unmarshal([]byte("{"), &m)
	assert.Equal(t, SyntaxInvalid, Classify(jsonSyntax))

	var dst struct{ A int }
	typeMismatch := json.Unmarshal([]byte(`{"A":"строка"}`), &dst)
	assert.Equal(t, TypeMismatch, Classify(typeMismatch))

	_, b64Err := base64.StdEncoding.DecodeString("!!не base64!!")
	assert.Equal(t, DecodeError, Classify(b64Err))

	assert.Equal(t, EncodingError, Classify(encoding.ErrInvalidUTF8))
	assert.Equal(t, BufferError, Classify(transform.ErrShortDst))
	assert.Equal(t, BufferError, Classify(transform.ErrShortSrc))
}

func TestClassify_LookupAndMarkers(t *testing.T) {
	assert.Equal(t, KeyNotFound, Classify(sql.ErrNoRows))
	assert.Equal(t, KeyNotFound, Classify(fmt.Errorf("query user: %w", sql.ErrNoRows)))
	assert.Equal(t, IterationExhausted, Classify(io.EOF))
	assert.Equal(t, UnexpectedEof, Classify(io.ErrUnexpectedEOF))
	assert.Equal(t, Unimplemented, Classify(errors.ErrUnsupported))
	assert.Equal(t, Canceled, Classify(context.Canceled))
}

// codedError — доменная ошибка с самодекларацией категории.
type codedError struct {
	cause error
}

func (e *codedError) Error() string             { return "бизнес-отказ" }
func (e *codedError) Unwrap() error             { return e.cause }
func (e *codedError) FailureCategory() Category { return AssertionFailed }

func TestClassify_CategorizerWinsOverRules(t *testing.T) {
	// Самодекларация категории побеждает даже когда в цепочке лежит
	// узнаваемый errno.
	err := &codedError{cause: syscall.ECONNRESET}
	assert.Equal(t, AssertionFailed, Classify(err))

	// Обёртка поверх Categorizer тоже находится через errors.As.
	assert.Equal(t, AssertionFailed, Classify(fmt.Errorf("outer: %w", err)))
}

func TestClassify_Fallbacks(t *testing.T) {
	assert.Equal(t, Unknown, Classify(nil))
	assert.Equal(t, Generic, Classify(errors.New("нечто невиданное")))
	assert.Equal(t, Unknown, Classify(NewPanicError("boom")))
	assert.Equal(t, Unknown, Classify(NewPanicError(42)))
}

func TestClassify_Totality(t *testing.T) {
	// Любой вход обязан получить непустую категорию.
	inputs := []error{
		nil,
		errors.New(""),
		fmt.Errorf("wrap: %w", errors.New("x")),
		syscall.ELOOP,
		&net.AddrError{Err: "invalid", Addr: "::::"},
		NewPanicError(struct{ X int }{1}),
		context.Canceled,
	}
	for _, err := range inputs {
		assert.NotEmpty(t, Classify(err))
	}
}

func TestNewPanicError(t *testing.T) {
	// Ошибочные значения возвращаются как есть.
	orig := errors.New("уже ошибка")
	assert.Same(t, orig, NewPanicError(orig))

	// Прочие значения оборачиваются с сохранением текста.
	wrapped := NewPanicError("boom")
	require.Error(t, wrapped)
	assert.Equal(t, "boom", wrapped.Error())
}
