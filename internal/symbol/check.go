package symbol

import (
	"sort"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/parser"
)

// WarningKind 静态检查警告的种类
type WarningKind int

const (
	ReturnAtTopLevel WarningKind = iota + 1
	SelfInitializer
	Redeclared
	UnresolvedName
)

func (k WarningKind) String() string {
	switch k {
	case ReturnAtTopLevel:
		return "ReturnAtTopLevel"
	case SelfInitializer:
		return "SelfInitializer"
	case Redeclared:
		return "Redeclared"
	case UnresolvedName:
		return "UnresolvedName"
	default:
		return "WarningKind(?)"
	}
}

// Warning 一条静态检查警告，只是提示，运行时语义不受影响
type Warning struct {
	Kind WarningKind
	Line int
	Name string
	Msg  string
}

func (w Warning) String() string {
	return i18n.T(i18n.WarnAt, w.Line, w.Msg)
}

// Checker 基于符号表遍历语法树
type Checker struct {
	table    *Table
	warnings []Warning
}

// Check 检查程序并返回按行号排序的警告；predeclared 为运行时预先定义的全局名字
func Check(prog *parser.Program, predeclared ...string) []Warning {
	c := &Checker{table: New(predeclared...)}
	c.statements(prog.Statements)
	// 全局作用域里的函数体最后检查，此时所有顶层声明都已知
	c.flushPending()

	sort.SliceStable(c.warnings, func(i, j int) bool {
		return c.warnings[i].Line < c.warnings[j].Line
	})
	return c.warnings
}

func (c *Checker) warn(kind WarningKind, line int, name, key string, args ...any) {
	c.warnings = append(c.warnings, Warning{
		Kind: kind,
		Line: line,
		Name: name,
		Msg:  i18n.T(key, args...),
	})
}

func (c *Checker) statements(stmts []parser.Statement) {
	for _, stmt := range stmts {
		c.statement(stmt)
	}
}

// scope 在新作用域中检查语句，作用域结束前检查其中声明的函数
func (c *Checker) scope(function bool, declare func(), stmts []parser.Statement) {
	c.table.Push(function)
	if declare != nil {
		declare()
	}
	c.statements(stmts)
	c.flushPending()
	c.table.Pop()
}

// flushPending 检查当前作用域中延后的函数体
func (c *Checker) flushPending() {
	for {
		fns := c.table.TakePending()
		if len(fns) == 0 {
			return
		}
		for _, fn := range fns {
			c.function(fn)
		}
	}
}

func (c *Checker) function(fn *parser.FunDecl) {
	c.scope(true, func() {
		for _, param := range fn.Params {
			c.declare(param.Literal, SymbolParam, param.Line, true)
		}
	}, fn.Body)
}

// declare 声明符号；局部作用域中的重复声明给出警告
func (c *Checker) declare(name string, kind SymbolKind, line int, defined bool) *Symbol {
	sym := &Symbol{Name: name, Kind: kind, Line: line, Defined: defined}
	if prev := c.table.Declare(sym); prev != nil && !c.table.IsGlobal() {
		c.warn(Redeclared, line, name, i18n.WarnRedeclared, name)
	}
	return sym
}

func (c *Checker) statement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		c.expression(s.Expression)

	case *parser.PrintStmt:
		c.expression(s.Expression)

	case *parser.VarDecl:
		if c.table.IsGlobal() {
			// 全局变量在初始化表达式求值之后才绑定
			if s.Initializer != nil {
				c.expression(s.Initializer)
			}
			c.declare(s.Name, SymbolVar, s.Line(), true)
			return
		}
		sym := c.declare(s.Name, SymbolVar, s.Line(), false)
		if s.Initializer != nil {
			c.expression(s.Initializer)
		}
		sym.Defined = true

	case *parser.BlockStmt:
		c.scope(false, nil, s.Statements)

	case *parser.IfStmt:
		c.expression(s.Condition)
		c.statement(s.Then)
		if s.Else != nil {
			c.statement(s.Else)
		}

	case *parser.WhileStmt:
		c.expression(s.Condition)
		c.statement(s.Body)

	case *parser.FunDecl:
		c.declare(s.Name, SymbolFunc, s.Line(), true)
		c.table.Defer(s)

	case *parser.ReturnStmt:
		if !c.table.InFunction() {
			c.warn(ReturnAtTopLevel, s.Line(), "", i18n.WarnReturnTopLevel)
		}
		if s.Value != nil {
			c.expression(s.Value)
		}
	}
}

func (c *Checker) expression(expr parser.Expression) {
	switch e := expr.(type) {
	case *parser.Variable:
		sym := c.table.Lookup(e.Name)
		switch {
		case sym == nil:
			c.warn(UnresolvedName, e.Line(), e.Name, i18n.WarnUnresolved, e.Name)
		case !sym.Defined:
			c.warn(SelfInitializer, e.Line(), e.Name, i18n.WarnSelfInitializer, e.Name)
		}

	case *parser.Assign:
		c.expression(e.Value)
		if c.table.Lookup(e.Name) == nil {
			c.warn(UnresolvedName, e.Line(), e.Name, i18n.WarnUnresolved, e.Name)
		}

	case *parser.Logical:
		c.expression(e.Left)
		c.expression(e.Right)

	case *parser.Binary:
		c.expression(e.Left)
		c.expression(e.Right)

	case *parser.Unary:
		c.expression(e.Operand)

	case *parser.Grouping:
		c.expression(e.Inner)

	case *parser.Call:
		c.expression(e.Callee)
		for _, arg := range e.Arguments {
			c.expression(arg)
		}
	}
}
