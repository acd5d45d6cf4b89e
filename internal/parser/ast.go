package parser

import (
	"github.com/tangzhangming/tulox/internal/lexer"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
	Line() int
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// Program 表示一个完整的程序
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string { return "program" }
func (p *Program) Line() int {
	if len(p.Statements) > 0 {
		return p.Statements[0].Line()
	}
	return 0
}

// ===== 表达式 =====

// Literal 字面量，Value 为 float64、string、bool 或 nil
type Literal struct {
	Token lexer.Token
	Value any
}

func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Line() int            { return l.Token.Line }
func (l *Literal) expressionNode()      {}

// Variable 变量引用
type Variable struct {
	Token lexer.Token // 标识符 token
	Name  string
}

func (v *Variable) TokenLiteral() string { return v.Token.Literal }
func (v *Variable) Line() int            { return v.Token.Line }
func (v *Variable) expressionNode()      {}

// Assign 赋值表达式，目标只能是变量名
type Assign struct {
	Token lexer.Token // 目标标识符 token
	Name  string
	Value Expression
}

func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) Line() int            { return a.Token.Line }
func (a *Assign) expressionNode()      {}

// Logical 短路逻辑表达式 (and / or)
type Logical struct {
	Token    lexer.Token // 运算符 token
	Operator lexer.TokenType
	Left     Expression
	Right    Expression
}

func (l *Logical) TokenLiteral() string { return l.Token.Literal }
func (l *Logical) Line() int            { return l.Token.Line }
func (l *Logical) expressionNode()      {}

// Binary 二元表达式
type Binary struct {
	Token    lexer.Token // 运算符 token
	Operator lexer.TokenType
	Left     Expression
	Right    Expression
}

func (b *Binary) TokenLiteral() string { return b.Token.Literal }
func (b *Binary) Line() int            { return b.Token.Line }
func (b *Binary) expressionNode()      {}

// Unary 一元表达式 (! / -)
type Unary struct {
	Token    lexer.Token
	Operator lexer.TokenType
	Operand  Expression
}

func (u *Unary) TokenLiteral() string { return u.Token.Literal }
func (u *Unary) Line() int            { return u.Token.Line }
func (u *Unary) expressionNode()      {}

// Call 函数调用表达式
type Call struct {
	Token     lexer.Token // 右括号 token，运行时错误报告在这一行
	Callee    Expression
	Arguments []Expression
}

func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Line() int            { return c.Token.Line }
func (c *Call) expressionNode()      {}

// Grouping 括号表达式
type Grouping struct {
	Token lexer.Token // ( token
	Inner Expression
}

func (g *Grouping) TokenLiteral() string { return g.Token.Literal }
func (g *Grouping) Line() int            { return g.Token.Line }
func (g *Grouping) expressionNode()      {}

// ===== 语句 =====

// ExpressionStmt 表达式语句
type ExpressionStmt struct {
	Token      lexer.Token // 表达式的第一个 token
	Expression Expression
}

func (e *ExpressionStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStmt) Line() int            { return e.Token.Line }
func (e *ExpressionStmt) statementNode()       {}

// PrintStmt print 语句
type PrintStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (p *PrintStmt) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStmt) Line() int            { return p.Token.Line }
func (p *PrintStmt) statementNode()       {}

// VarDecl 变量声明
type VarDecl struct {
	Token       lexer.Token // 变量名 token
	Name        string
	Initializer Expression // 可选
}

func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) Line() int            { return v.Token.Line }
func (v *VarDecl) statementNode()       {}

// BlockStmt 代码块
type BlockStmt struct {
	Token      lexer.Token // { token
	Statements []Statement
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) Line() int            { return b.Token.Line }
func (b *BlockStmt) statementNode()       {}

// IfStmt if 语句
type IfStmt struct {
	Token     lexer.Token
	Condition Expression
	Then      Statement
	Else      Statement // 可选
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) Line() int            { return i.Token.Line }
func (i *IfStmt) statementNode()       {}

// WhileStmt while 语句，for 循环也脱糖为它
type WhileStmt struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) Line() int            { return w.Token.Line }
func (w *WhileStmt) statementNode()       {}

// FunDecl 函数声明
type FunDecl struct {
	Token  lexer.Token // 函数名 token
	Name   string
	Params []lexer.Token
	Body   []Statement
}

func (f *FunDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FunDecl) Line() int            { return f.Token.Line }
func (f *FunDecl) statementNode()       {}

// ReturnStmt return 语句
type ReturnStmt struct {
	Token lexer.Token
	Value Expression // 可选
}

func (r *ReturnStmt) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStmt) Line() int            { return r.Token.Line }
func (r *ReturnStmt) statementNode()       {}
