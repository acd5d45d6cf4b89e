package interp

import (
	"errors"
	"fmt"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/parser"
)

// execute 在 env 中执行一条语句
func (in *Interpreter) execute(stmt parser.Statement, env *Environment) (signal, error) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.evaluate(s.Expression, env)
		return normal, err

	case *parser.PrintStmt:
		v, err := in.evaluate(s.Expression, env)
		if err != nil {
			return normal, err
		}
		if _, err := fmt.Fprintln(in.out, Stringify(v)); err != nil {
			return normal, fmt.Errorf("print: %w", err)
		}
		return normal, nil

	case *parser.VarDecl:
		var v Value = Nil{}
		if s.Initializer != nil {
			var err error
			if v, err = in.evaluate(s.Initializer, env); err != nil {
				return normal, err
			}
		}
		env.Define(s.Name, v)
		return normal, nil

	case *parser.BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(env))

	case *parser.IfStmt:
		cond, err := in.evaluate(s.Condition, env)
		if err != nil {
			return normal, err
		}
		if IsTruthy(cond) {
			return in.execute(s.Then, env)
		}
		if s.Else != nil {
			return in.execute(s.Else, env)
		}
		return normal, nil

	case *parser.WhileStmt:
		return in.executeWhile(s, env)

	case *parser.FunDecl:
		// 先捕获作用域再绑定名字，函数体里能看到自己
		env.Define(s.Name, &Function{Decl: s, Closure: env})
		return normal, nil

	case *parser.ReturnStmt:
		var v Value = Nil{}
		if s.Value != nil {
			var err error
			if v, err = in.evaluate(s.Value, env); err != nil {
				return normal, err
			}
		}
		return signal{returning: true, value: v, line: s.Line()}, nil

	default:
		return normal, errors.New(i18n.T(i18n.RtInternal, stmt))
	}
}

// executeBlock 在给定作用域中依次执行语句，遇到 return 信号立即返回
func (in *Interpreter) executeBlock(stmts []parser.Statement, env *Environment) (signal, error) {
	for _, stmt := range stmts {
		sig, err := in.execute(stmt, env)
		if err != nil || sig.returning {
			return sig, err
		}
	}
	return normal, nil
}

func (in *Interpreter) executeWhile(s *parser.WhileStmt, env *Environment) (signal, error) {
	for {
		if err := in.checkContext(s.Line()); err != nil {
			return normal, err
		}
		cond, err := in.evaluate(s.Condition, env)
		if err != nil {
			return normal, err
		}
		if !IsTruthy(cond) {
			return normal, nil
		}
		sig, err := in.execute(s.Body, env)
		if err != nil || sig.returning {
			return sig, err
		}
	}
}
