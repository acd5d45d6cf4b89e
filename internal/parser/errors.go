package parser

import (
	"errors"
	"strings"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
)

// ErrSyntax 所有语法错误都匹配该哨兵（errors.Is）
var ErrSyntax = errors.New("syntax error")

// SyntaxError 语法错误，携带出错 token 的位置
type SyntaxError struct {
	Line   int
	Column int
	Lexeme string
	AtEOF  bool // 错误出现在输入末尾，REPL 据此判断输入尚未结束
	Msg    string
}

func newSyntaxError(tok lexer.Token, msg string) *SyntaxError {
	return &SyntaxError{
		Line:   tok.Line,
		Column: tok.Column,
		Lexeme: tok.Literal,
		AtEOF:  tok.Type == lexer.TOKEN_EOF,
		Msg:    msg,
	}
}

func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return i18n.T(i18n.ErrSyntaxAtEnd, e.Line, e.Msg)
	}
	return i18n.T(i18n.ErrSyntaxAt, e.Line, e.Lexeme, e.Msg)
}

// Is 让 errors.Is(err, ErrSyntax) 成立
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ErrorList 一次解析收集到的全部语法错误
type ErrorList []*SyntaxError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap 返回每一个语法错误
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Err 没有错误时返回 nil，避免出现非 nil 的空列表
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// IsIncomplete 判断最后一个语法错误是否出现在输入末尾
func IsIncomplete(err error) bool {
	var list ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return list[len(list)-1].AtEOF
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.AtEOF
	}
	return false
}
