package classify

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// rule — одна строка таблицы классификации: предикат и категория.
type rule struct {
	category Category
	match    func(error) bool
}

// is строит предикат errors.Is по списку sentinel-ошибок.
func is(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, t := range targets {
			if errors.Is(err, t) {
				return true
			}
		}
		return false
	}
}

// as строит предикат errors.As по типу ошибки.
func as[T error]() func(error) bool {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

// anyOf объединяет предикаты по ИЛИ.
func anyOf(preds ...func(error) bool) func(error) bool {
	return func(err error) bool {
		for _, p := range preds {
			if p(err) {
				return true
			}
		}
		return false
	}
}

// runtimeMsg строит предикат по тексту runtime.Error. Паники времени
// выполнения (деление на ноль, выход за границы, nil dereference)
// различимы только по сообщению: у всех один конкретный тип.
func runtimeMsg(substrings ...string) func(error) bool {
	return func(err error) bool {
		var rerr runtime.Error
		if !errors.As(err, &rerr) {
			return false
		}
		msg := rerr.Error()
		for _, s := range substrings {
			if strings.Contains(msg, s) {
				return true
			}
		}
		return false
	}
}

// netTimeout распознаёт таймаут через интерфейс net.Error.
// syscall.Errno тоже реализует net.Error, причём Errno.Timeout()
// истинен для EAGAIN/EWOULDBLOCK — голые errno здесь исключаются,
// иначе правило Timeout перехватило бы категорию WouldBlock.
func netTimeout(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return false
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// rules — упорядоченная таблица классификации: первое совпадение побеждает.
// Порядок групп — от самой специфичной категории к базовой; проверка общей
// категории раньше частной дала бы неверный тег для специализаций
// (ECONNRESET — это и сетевой, и платформенный сбой одновременно).
//
// Сознательные переносы относительно группового порядка:
//   - NameUnresolved стоит до общего сетевого правила, т.к. ошибки dial
//     оборачивают *net.DNSError в *net.OpError;
//   - InvalidArgument (EINVAL) и Unimplemented (ENOSYS) стоят до общего
//     OSFailure, иначе эти errno утонули бы в syscall.Errno.
var rules = []rule{
	// Управляющие сигналы.
	{Canceled, is(context.Canceled)},

	// Платформенные отказы, от частного к общему.
	{NotFound, is(fs.ErrNotExist, exec.ErrNotFound)},
	{AlreadyExists, is(fs.ErrExist)},
	{IsADirectory, is(syscall.EISDIR)},
	{NotADirectory, is(syscall.ENOTDIR)},
	{PermissionDenied, is(fs.ErrPermission)},
	{ProcessNotFound, is(syscall.ESRCH)},
	{Timeout, anyOf(
		is(context.DeadlineExceeded, os.ErrDeadlineExceeded, syscall.ETIMEDOUT),
		netTimeout,
	)},
	{Interrupted, is(syscall.EINTR)},
	{ChildProcessFailed, anyOf(is(syscall.ECHILD), as[*exec.ExitError]())},
	{WouldBlock, is(syscall.EAGAIN, syscall.EWOULDBLOCK)},
	{ConnectionReset, is(syscall.ECONNRESET)},
	{ConnectionRefused, is(syscall.ECONNREFUSED)},
	{ConnectionAborted, is(syscall.ECONNABORTED)},
	{BrokenPipe, is(syscall.EPIPE, syscall.ESHUTDOWN)},
	{NameUnresolved, as[*net.DNSError]()},
	// Сетевая семья распознаётся только по конкретным типам пакета net:
	// проверка через интерфейс net.Error притянула бы сюда любой
	// syscall.Errno (у Errno есть Timeout/Temporary) и съела бы все
	// платформенные правила ниже.
	{ConnectionError, anyOf(as[*net.OpError](), as[*net.AddrError]())},
	{InvalidArgument, is(os.ErrInvalid, syscall.EINVAL)},
	{ResourceExhausted, is(syscall.ENOMEM, syscall.EMFILE, syscall.ENFILE, syscall.ENOSPC)},
	{StreamClosed, is(fs.ErrClosed, net.ErrClosed, io.ErrClosedPipe, os.ErrProcessDone)},
	// ENOSYS/ENOTSUP сопоставляются с errors.ErrUnsupported, поэтому
	// проверка стоит до общего OSFailure.
	{Unimplemented, is(errors.ErrUnsupported)},
	{OSFailure, anyOf(
		as[*os.PathError](),
		as[*os.LinkError](),
		as[*os.SyscallError](),
		as[syscall.Errno](),
	)},

	// Арифметика: паники рантайма плюс переполнение strconv.
	{DivisionByZero, runtimeMsg("divide by zero")},
	{FloatingPointError, runtimeMsg("floating point")},
	{Overflow, is(strconv.ErrRange)},

	// Типы и значения.
	{TypeMismatch, anyOf(as[*json.UnmarshalTypeError](), as[*runtime.TypeAssertionError]())},
	{InvalidArgument, anyOf(is(strconv.ErrSyntax), as[*json.InvalidUnmarshalError]())},
	{EncodingError, is(encoding.ErrInvalidUTF8)},
	{DecodeError, anyOf(as[base64.CorruptInputError](), as[hex.InvalidByteError]())},
	{EncodeError, anyOf(as[*json.UnsupportedTypeError](), as[*json.UnsupportedValueError]())},

	// Поиск.
	{KeyNotFound, is(sql.ErrNoRows)},
	{OutOfRange, runtimeMsg(
		"index out of range",
		"slice bounds out of range",
		"string index out of range",
	)},

	// Маркеры потока управления.
	{UnexpectedEof, is(io.ErrUnexpectedEOF)},
	{IterationExhausted, is(io.EOF)},

	// Синтаксис.
	{SyntaxInvalid, as[*json.SyntaxError]()},

	// Внутренние отказы.
	{DanglingReference, runtimeMsg("invalid memory address or nil pointer dereference")},

	// Буферы и потоки.
	{BufferError, is(bufio.ErrBufferFull, bytes.ErrTooLarge, transform.ErrShortDst, transform.ErrShortSrc)},

	// Оставшиеся паники рантайма.
	{RuntimeError, as[runtime.Error]()},

	// Не-ошибочные значения panic.
	{Unknown, as[*PanicError]()},
}
