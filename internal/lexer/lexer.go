package lexer

import (
	"unicode"
)

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前行号
	column  int  // 当前列号
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// atEnd 判断是否已读完输入
func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// NextToken 获取下一个 token，输入结束后一直返回 EOF
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespaceAndComments()

	tok.Line = l.line
	tok.Column = l.column

	if l.atEnd() {
		tok.Type = TOKEN_EOF
		return tok
	}

	switch l.ch {
	case '=':
		tok = l.twoCharToken('=', TOKEN_EQ, TOKEN_ASSIGN)
	case '!':
		tok = l.twoCharToken('=', TOKEN_NOT_EQ, TOKEN_NOT)
	case '<':
		tok = l.twoCharToken('=', TOKEN_LT_EQ, TOKEN_LT)
	case '>':
		tok = l.twoCharToken('=', TOKEN_GT_EQ, TOKEN_GT)
	case '+':
		tok = l.newToken(TOKEN_PLUS, l.ch)
	case '-':
		tok = l.newToken(TOKEN_MINUS, l.ch)
	case '*':
		tok = l.newToken(TOKEN_ASTERISK, l.ch)
	case '/':
		tok = l.newToken(TOKEN_SLASH, l.ch)
	case ',':
		tok = l.newToken(TOKEN_COMMA, l.ch)
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON, l.ch)
	case '.':
		tok = l.newToken(TOKEN_DOT, l.ch)
	case '(':
		tok = l.newToken(TOKEN_LPAREN, l.ch)
	case ')':
		tok = l.newToken(TOKEN_RPAREN, l.ch)
	case '{':
		tok = l.newToken(TOKEN_LBRACE, l.ch)
	case '}':
		tok = l.newToken(TOKEN_RBRACE, l.ch)
	case '"':
		line, column := l.line, l.column
		lit, ok := l.readString()
		tok = Token{Type: TOKEN_STRING, Literal: lit, Line: line, Column: column}
		if !ok {
			tok.Type = TOKEN_ILLEGAL
		}
		return tok
	default:
		if l.isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = LookupIdent(tok.Literal)
			return tok
		} else if l.isDigit(l.ch) {
			tok.Literal = l.readNumber()
			tok.Type = TOKEN_NUMBER
			return tok
		}
		tok = l.newToken(TOKEN_ILLEGAL, l.ch)
	}

	l.readChar()
	return tok
}

// newToken 创建新的 token
func (l *Lexer) newToken(tokenType TokenType, ch byte) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

// twoCharToken 处理 "x=" 形式的双字符运算符
func (l *Lexer) twoCharToken(next byte, double, single TokenType) Token {
	if l.peekChar() == next {
		tok := Token{Type: double, Literal: string([]byte{l.ch, next}), Line: l.line, Column: l.column}
		l.readChar()
		return tok
	}
	return l.newToken(single, l.ch)
}

// skipWhitespaceAndComments 跳过空白字符和 // 注释
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && !l.atEnd() {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for l.isLetter(l.ch) || l.isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber 读取数字，小数点两侧都必须有数字
func (l *Lexer) readNumber() string {
	pos := l.pos
	for l.isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && l.isDigit(l.peekChar()) {
		l.readChar()
		for l.isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[pos:l.pos]
}

// readString 读取双引号字符串（可跨行，不支持转义），返回值包含引号
func (l *Lexer) readString() (string, bool) {
	pos := l.pos
	l.readChar() // 跳过开头的 "
	for l.ch != '"' {
		if l.atEnd() {
			return l.input[pos:], false
		}
		l.readChar()
	}
	l.readChar() // 跳过结尾的 "
	return l.input[pos:l.pos], true
}

// isLetter 判断是否为字母
func (l *Lexer) isLetter(ch byte) bool {
	return ch < 0x80 && unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit 判断是否为数字
func (l *Lexer) isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 将输入字符串转换为 token 列表
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}

// SliceSource 按顺序回放已经扫描好的 token
type SliceSource struct {
	tokens []Token
	pos    int
}

// NewSliceSource 创建回放源；末尾没有 EOF 时自动补上
func NewSliceSource(tokens []Token) *SliceSource {
	if n := len(tokens); n == 0 || tokens[n-1].Type != TOKEN_EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], Token{Type: TOKEN_EOF, Line: line})
	}
	return &SliceSource{tokens: tokens}
}

// NextToken 返回下一个 token，到达末尾后一直返回 EOF
func (s *SliceSource) NextToken() Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}
