// Package printer 把语法树渲染为带缩进的前缀形式，供 tulox ast 和测试使用
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
)

// Printer 前缀形式生成器
type Printer struct {
	builder strings.Builder
	indent  int
}

// Fprint 把节点写入 w
func Fprint(w io.Writer, node parser.Node) error {
	_, err := io.WriteString(w, Sprint(node))
	return err
}

// Sprint 返回节点的前缀形式；程序的每条顶层语句占一行（块内换行缩进）
func Sprint(node parser.Node) string {
	p := &Printer{}
	p.print(node)
	return p.builder.String()
}

func (p *Printer) print(node parser.Node) {
	switch n := node.(type) {
	case *parser.Program:
		for _, stmt := range n.Statements {
			p.statement(stmt)
			p.builder.WriteString("\n")
		}
	case parser.Statement:
		p.statement(n)
	case parser.Expression:
		p.expression(n)
	default:
		fmt.Fprintf(&p.builder, "<%T>", node)
	}
}

// newline 换行并写入当前缩进
func (p *Printer) newline() {
	p.builder.WriteString("\n")
	p.builder.WriteString(strings.Repeat("  ", p.indent))
}

// body 在新行上逐条输出子语句
func (p *Printer) body(stmts []parser.Statement) {
	p.indent++
	for _, stmt := range stmts {
		p.newline()
		p.statement(stmt)
	}
	p.indent--
}

func (p *Printer) statement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		p.builder.WriteString("(expr ")
		p.expression(s.Expression)
		p.builder.WriteString(")")

	case *parser.PrintStmt:
		p.builder.WriteString("(print ")
		p.expression(s.Expression)
		p.builder.WriteString(")")

	case *parser.VarDecl:
		p.builder.WriteString("(var " + s.Name)
		if s.Initializer != nil {
			p.builder.WriteString(" ")
			p.expression(s.Initializer)
		}
		p.builder.WriteString(")")

	case *parser.BlockStmt:
		p.builder.WriteString("(block")
		p.body(s.Statements)
		p.builder.WriteString(")")

	case *parser.IfStmt:
		p.builder.WriteString("(if ")
		p.expression(s.Condition)
		branches := []parser.Statement{s.Then}
		if s.Else != nil {
			branches = append(branches, s.Else)
		}
		p.body(branches)
		p.builder.WriteString(")")

	case *parser.WhileStmt:
		p.builder.WriteString("(while ")
		p.expression(s.Condition)
		p.body([]parser.Statement{s.Body})
		p.builder.WriteString(")")

	case *parser.FunDecl:
		names := make([]string, len(s.Params))
		for i, param := range s.Params {
			names[i] = param.Literal
		}
		p.builder.WriteString("(fun " + s.Name + " (" + strings.Join(names, " ") + ")")
		p.body(s.Body)
		p.builder.WriteString(")")

	case *parser.ReturnStmt:
		p.builder.WriteString("(return")
		if s.Value != nil {
			p.builder.WriteString(" ")
			p.expression(s.Value)
		}
		p.builder.WriteString(")")

	default:
		fmt.Fprintf(&p.builder, "<%T>", stmt)
	}
}

func (p *Printer) expression(expr parser.Expression) {
	switch e := expr.(type) {
	case *parser.Literal:
		p.builder.WriteString(Literal(e.Value))

	case *parser.Variable:
		p.builder.WriteString(e.Name)

	case *parser.Assign:
		p.builder.WriteString("(= " + e.Name + " ")
		p.expression(e.Value)
		p.builder.WriteString(")")

	case *parser.Logical:
		p.parenthesize(lexer.TokenTypeName(e.Operator), e.Left, e.Right)

	case *parser.Binary:
		p.parenthesize(lexer.TokenTypeName(e.Operator), e.Left, e.Right)

	case *parser.Unary:
		p.parenthesize(lexer.TokenTypeName(e.Operator), e.Operand)

	case *parser.Grouping:
		p.parenthesize("group", e.Inner)

	case *parser.Call:
		p.parenthesize("call", append([]parser.Expression{e.Callee}, e.Arguments...)...)

	default:
		fmt.Fprintf(&p.builder, "<%T>", expr)
	}
}

// parenthesize 输出 (head a b ...)
func (p *Printer) parenthesize(head string, exprs ...parser.Expression) {
	p.builder.WriteString("(" + head)
	for _, e := range exprs {
		p.builder.WriteString(" ")
		p.expression(e)
	}
	p.builder.WriteString(")")
}

// Literal 格式化字面量的值：整数不带小数点，字符串带引号
func Literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
