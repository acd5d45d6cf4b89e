package interp

import (
	"errors"

	"github.com/tangzhangming/tulox/internal/i18n"
)

// ErrorKind 运行时错误的种类
type ErrorKind int

const (
	UndefinedVariable ErrorKind = iota + 1
	TypeMismatch
	NotCallable
	ArityMismatch
	ReturnOutsideFunction
	DivisionByZero
	StackOverflow
	Interrupted
	NativeError
)

// 每种错误对应一个哨兵，配合 errors.Is 使用
var (
	ErrUndefinedVariable     = errors.New("undefined variable")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrNotCallable           = errors.New("not callable")
	ErrArityMismatch         = errors.New("arity mismatch")
	ErrReturnOutsideFunction = errors.New("return outside function")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrStackOverflow         = errors.New("stack overflow")
	ErrInterrupted           = errors.New("interrupted")
	ErrNativeError           = errors.New("native function failed")
)

var kindInfo = map[ErrorKind]struct {
	name     string
	sentinel error
}{
	UndefinedVariable:     {"UndefinedVariable", ErrUndefinedVariable},
	TypeMismatch:          {"TypeMismatch", ErrTypeMismatch},
	NotCallable:           {"NotCallable", ErrNotCallable},
	ArityMismatch:         {"ArityMismatch", ErrArityMismatch},
	ReturnOutsideFunction: {"ReturnOutsideFunction", ErrReturnOutsideFunction},
	DivisionByZero:        {"DivisionByZero", ErrDivisionByZero},
	StackOverflow:         {"StackOverflow", ErrStackOverflow},
	Interrupted:           {"Interrupted", ErrInterrupted},
	NativeError:           {"NativeError", ErrNativeError},
}

func (k ErrorKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "ErrorKind(?)"
}

// RuntimeError 运行时错误，出现后立即中止执行
type RuntimeError struct {
	Kind ErrorKind
	Line int
	Msg  string

	cause error // Interrupted 时为 ctx.Err()，NativeError 时为原生函数返回的错误
}

func (e *RuntimeError) Error() string {
	return i18n.T(i18n.ErrRuntimeAt, e.Line, "RuntimeError", e.Msg)
}

// Is 让 errors.Is(err, ErrTypeMismatch) 之类的判断成立
func (e *RuntimeError) Is(target error) bool {
	info, ok := kindInfo[e.Kind]
	return ok && info.sentinel == target
}

// Unwrap 返回底层原因
func (e *RuntimeError) Unwrap() error {
	return e.cause
}

func newError(kind ErrorKind, line int, key string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Line: line, Msg: i18n.T(key, args...)}
}
