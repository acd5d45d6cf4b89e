package interp

import (
	"errors"
	"log/slog"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
)

// evaluate 在 env 中求值表达式
func (in *Interpreter) evaluate(expr parser.Expression, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *parser.Literal:
		return FromLiteral(e.Value), nil

	case *parser.Grouping:
		return in.evaluate(e.Inner, env)

	case *parser.Variable:
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, newError(UndefinedVariable, e.Line(), i18n.RtUndefinedVariable, e.Name)
		}
		return v, nil

	case *parser.Assign:
		v, err := in.evaluate(e.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Assign(e.Name, v) {
			return nil, newError(UndefinedVariable, e.Line(), i18n.RtUndefinedVariable, e.Name)
		}
		return v, nil

	case *parser.Logical:
		left, err := in.evaluate(e.Left, env)
		if err != nil {
			return nil, err
		}
		// 短路，返回操作数本身而不是布尔值
		if e.Operator == lexer.TOKEN_OR {
			if IsTruthy(left) {
				return left, nil
			}
		} else if !IsTruthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right, env)

	case *parser.Unary:
		return in.evalUnary(e, env)

	case *parser.Binary:
		return in.evalBinary(e, env)

	case *parser.Call:
		return in.evalCall(e, env)

	default:
		return nil, errors.New(i18n.T(i18n.RtInternal, expr))
	}
}

func (in *Interpreter) evalUnary(e *parser.Unary, env *Environment) (Value, error) {
	operand, err := in.evaluate(e.Operand, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case lexer.TOKEN_MINUS:
		n, ok := operand.(Number)
		if !ok {
			return nil, newError(TypeMismatch, e.Line(), i18n.RtOperandNumber, e.Token.Literal)
		}
		return -n, nil
	case lexer.TOKEN_NOT:
		return Bool(!IsTruthy(operand)), nil
	default:
		return nil, errors.New(i18n.T(i18n.RtInternal, e))
	}
}

func (in *Interpreter) evalBinary(e *parser.Binary, env *Environment) (Value, error) {
	left, err := in.evaluate(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case lexer.TOKEN_EQ:
		return Bool(Equal(left, right)), nil
	case lexer.TOKEN_NOT_EQ:
		return Bool(!Equal(left, right)), nil
	case lexer.TOKEN_PLUS:
		switch l := left.(type) {
		case Number:
			if r, ok := right.(Number); ok {
				return l + r, nil
			}
		case String:
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		return nil, newError(TypeMismatch, e.Line(), i18n.RtOperandsAdd)
	}

	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		return nil, newError(TypeMismatch, e.Line(), i18n.RtOperandsNumbers, e.Token.Literal)
	}

	switch e.Operator {
	case lexer.TOKEN_MINUS:
		return l - r, nil
	case lexer.TOKEN_ASTERISK:
		return l * r, nil
	case lexer.TOKEN_SLASH:
		if r == 0 {
			return nil, newError(DivisionByZero, e.Line(), i18n.RtDivisionByZero)
		}
		return l / r, nil
	case lexer.TOKEN_LT:
		return Bool(l < r), nil
	case lexer.TOKEN_LT_EQ:
		return Bool(l <= r), nil
	case lexer.TOKEN_GT:
		return Bool(l > r), nil
	case lexer.TOKEN_GT_EQ:
		return Bool(l >= r), nil
	default:
		return nil, errors.New(i18n.T(i18n.RtInternal, e))
	}
}

// evalCall 先求值被调用者，再从左到右求值实参，最后检查可调用性和参数个数
func (in *Interpreter) evalCall(e *parser.Call, env *Environment) (Value, error) {
	callee, err := in.evaluate(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		v, err := in.evaluate(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newError(NotCallable, e.Line(), i18n.RtNotCallable, TypeName(callee))
	}
	if len(args) != fn.Arity() {
		return nil, newError(ArityMismatch, e.Line(), i18n.RtArity, fn.Arity(), len(args))
	}

	if err := in.checkContext(e.Line()); err != nil {
		return nil, err
	}
	if in.depth >= in.maxDepth {
		return nil, newError(StackOverflow, e.Line(), i18n.RtStackOverflow, in.maxDepth)
	}
	in.depth++
	defer func() { in.depth-- }()

	return fn.call(in, args, e.Line())
}

func (f *Function) call(in *Interpreter, args []Value, line int) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Literal, args[i])
	}

	in.log.Debug("call enter",
		slog.String("function", f.Name()),
		slog.Int("depth", in.depth),
		slog.Int("args", len(args)))

	sig, err := in.executeBlock(f.Decl.Body, env)
	if err != nil {
		return nil, err
	}

	in.log.Debug("call exit",
		slog.String("function", f.Name()),
		slog.Int("depth", in.depth),
		slog.Bool("returned", sig.returning))

	if sig.returning {
		return sig.value, nil
	}
	return Nil{}, nil
}

func (n *Native) call(in *Interpreter, args []Value, line int) (Value, error) {
	in.log.Debug("native call",
		slog.String("function", n.Name),
		slog.Int("depth", in.depth),
		slog.Int("args", len(args)))

	v, err := n.Fn(args)
	if err != nil {
		var rtErr *RuntimeError
		if errors.As(err, &rtErr) {
			return nil, rtErr
		}
		return nil, &RuntimeError{Kind: NativeError, Line: line, Msg: err.Error(), cause: err}
	}
	if v == nil {
		return Nil{}, nil
	}
	return v, nil
}
