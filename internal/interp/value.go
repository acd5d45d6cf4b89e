// Package interp 实现树遍历求值器：值、作用域链、闭包与非局部 return
package interp

import (
	"math"
	"strconv"

	"github.com/tangzhangming/tulox/internal/parser"
)

// Value 运行时值，只有以下几种：
// Number、String、Bool、Nil、*Function、*Native
type Value interface {
	value()
}

// Number 数字，统一为 float64
type Number float64

// String 字符串
type String string

// Bool 布尔值
type Bool bool

// Nil 空值
type Nil struct{}

func (Number) value() {}
func (String) value() {}
func (Bool) value()   {}
func (Nil) value()    {}

// Callable 可调用的值
type Callable interface {
	Value
	Arity() int
	call(in *Interpreter, args []Value, line int) (Value, error)
}

// Function 用户定义的函数，闭包捕获声明时的作用域
type Function struct {
	Decl    *parser.FunDecl
	Closure *Environment
}

func (*Function) value() {}

// Arity 形参个数
func (f *Function) Arity() int { return len(f.Decl.Params) }

// Name 函数名
func (f *Function) Name() string { return f.Decl.Name }

// Native 宿主实现的函数
type Native struct {
	Name string
	Argc int
	Fn   func(args []Value) (Value, error)
}

func (*Native) value() {}

// Arity 参数个数
func (n *Native) Arity() int { return n.Argc }

// TypeName 返回值的类型名，用于错误信息
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "boolean"
	case Nil, nil:
		return "nil"
	case *Function, *Native:
		return "function"
	default:
		return "unknown"
	}
}

// IsTruthy 只有 nil 和 false 为假
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil, nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal 判断相等，不做类型转换；函数按身份比较
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Number:
		bn, ok := b.(Number)
		return ok && a == bn
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case *Function:
		bf, ok := b.(*Function)
		return ok && a == bf
	case *Native:
		bf, ok := b.(*Native)
		return ok && a == bf
	default:
		return false
	}
}

// Stringify 按 print 的规则格式化值
func Stringify(v Value) string {
	switch v := v.(type) {
	case Nil, nil:
		return "nil"
	case Bool:
		return strconv.FormatBool(bool(v))
	case String:
		return string(v)
	case Number:
		return formatNumber(float64(v))
	case *Function:
		return "<fn " + v.Name() + ">"
	case *Native:
		return "<native fn " + v.Name + ">"
	default:
		return "<unknown>"
	}
}

// formatNumber 整数不带小数点，其余使用最短的可往返形式
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FromLiteral 把语法树中的字面量转换为运行时值
func FromLiteral(v any) Value {
	switch v := v.(type) {
	case float64:
		return Number(v)
	case string:
		return String(v)
	case bool:
		return Bool(v)
	default:
		return Nil{}
	}
}
