// Package symbol 提供作用域符号表和基于它的静态检查
package symbol

import (
	"github.com/tangzhangming/tulox/internal/parser"
)

// SymbolKind 符号类型
type SymbolKind int

const (
	SymbolVar SymbolKind = iota
	SymbolFunc
	SymbolParam
	SymbolNative
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "var"
	case SymbolFunc:
		return "fun"
	case SymbolParam:
		return "param"
	case SymbolNative:
		return "native"
	default:
		return "unknown"
	}
}

// Symbol 表示一个符号
type Symbol struct {
	Name    string
	Kind    SymbolKind
	Line    int  // 声明所在行，预声明符号为 0
	Defined bool // 初始化表达式求值完成后才为 true
}

// Scope 一层作用域
type Scope struct {
	symbols  map[string]*Symbol
	parent   *Scope
	function bool // 函数体作用域（形参所在层）

	// 在本作用域中声明、等本作用域结束时再检查的函数
	pending []*parser.FunDecl
}

// Table 符号表，按词法作用域组织
type Table struct {
	global  *Scope
	current *Scope
}

// New 创建一个新的符号表，predeclared 作为已定义的全局符号（如内置函数）
func New(predeclared ...string) *Table {
	global := newScope(nil, false)
	for _, name := range predeclared {
		global.symbols[name] = &Symbol{Name: name, Kind: SymbolNative, Defined: true}
	}
	return &Table{global: global, current: global}
}

func newScope(parent *Scope, function bool) *Scope {
	return &Scope{
		symbols:  make(map[string]*Symbol),
		parent:   parent,
		function: function,
	}
}

// Push 进入一层新作用域
func (t *Table) Push(function bool) {
	t.current = newScope(t.current, function)
}

// Pop 离开当前作用域
func (t *Table) Pop() *Scope {
	s := t.current
	if s.parent != nil {
		t.current = s.parent
	}
	return s
}

// IsGlobal 当前是否处于全局作用域
func (t *Table) IsGlobal() bool {
	return t.current == t.global
}

// Declare 在当前作用域声明符号，返回同一作用域中已有的同名符号
func (t *Table) Declare(sym *Symbol) (prev *Symbol) {
	prev = t.current.symbols[sym.Name]
	t.current.symbols[sym.Name] = sym
	return prev
}

// Lookup 由内向外查找符号
func (t *Table) Lookup(name string) *Symbol {
	for s := t.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok {
			return sym
		}
	}
	return nil
}

// LookupLocal 只在当前作用域中查找
func (t *Table) LookupLocal(name string) *Symbol {
	return t.current.symbols[name]
}

// Defer 记录一个函数，等当前作用域结束时再检查它的函数体
func (t *Table) Defer(fn *parser.FunDecl) {
	t.current.pending = append(t.current.pending, fn)
}

// TakePending 取出当前作用域中等待检查的函数
func (t *Table) TakePending() []*parser.FunDecl {
	fns := t.current.pending
	t.current.pending = nil
	return fns
}

// InFunction 当前是否位于某个函数体内
func (t *Table) InFunction() bool {
	for s := t.current; s != nil; s = s.parent {
		if s.function {
			return true
		}
	}
	return false
}
