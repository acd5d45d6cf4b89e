package lexer

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_NUMBER // 数字
	TOKEN_STRING // 字符串

	// 运算符
	TOKEN_ASSIGN   // =
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *
	TOKEN_SLASH    // /

	TOKEN_EQ     // ==
	TOKEN_NOT_EQ // !=
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LT_EQ  // <=
	TOKEN_GT_EQ  // >=
	TOKEN_NOT    // !

	// 分隔符
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .

	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_LBRACE // {
	TOKEN_RBRACE // }

	// 关键字
	TOKEN_AND    // and
	TOKEN_OR     // or
	TOKEN_ELSE   // else
	TOKEN_FALSE  // false
	TOKEN_TRUE   // true
	TOKEN_NIL    // nil
	TOKEN_FUN    // fun
	TOKEN_FOR    // for
	TOKEN_IF     // if
	TOKEN_PRINT  // print
	TOKEN_RETURN // return
	TOKEN_VAR    // var
	TOKEN_WHILE  // while
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"and":    TOKEN_AND,
	"or":     TOKEN_OR,
	"else":   TOKEN_ELSE,
	"false":  TOKEN_FALSE,
	"true":   TOKEN_TRUE,
	"nil":    TOKEN_NIL,
	"fun":    TOKEN_FUN,
	"for":    TOKEN_FOR,
	"if":     TOKEN_IF,
	"print":  TOKEN_PRINT,
	"return": TOKEN_RETURN,
	"var":    TOKEN_VAR,
	"while":  TOKEN_WHILE,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var names = map[TokenType]string{
	TOKEN_ILLEGAL:   "ILLEGAL",
	TOKEN_EOF:       "EOF",
	TOKEN_IDENT:     "IDENT",
	TOKEN_NUMBER:    "NUMBER",
	TOKEN_STRING:    "STRING",
	TOKEN_ASSIGN:    "=",
	TOKEN_PLUS:      "+",
	TOKEN_MINUS:     "-",
	TOKEN_ASTERISK:  "*",
	TOKEN_SLASH:     "/",
	TOKEN_EQ:        "==",
	TOKEN_NOT_EQ:    "!=",
	TOKEN_LT:        "<",
	TOKEN_GT:        ">",
	TOKEN_LT_EQ:     "<=",
	TOKEN_GT_EQ:     ">=",
	TOKEN_NOT:       "!",
	TOKEN_COMMA:     ",",
	TOKEN_SEMICOLON: ";",
	TOKEN_DOT:       ".",
	TOKEN_LPAREN:    "(",
	TOKEN_RPAREN:    ")",
	TOKEN_LBRACE:    "{",
	TOKEN_RBRACE:    "}",
	TOKEN_AND:       "and",
	TOKEN_OR:        "or",
	TOKEN_ELSE:      "else",
	TOKEN_FALSE:     "false",
	TOKEN_TRUE:      "true",
	TOKEN_NIL:       "nil",
	TOKEN_FUN:       "fun",
	TOKEN_FOR:       "for",
	TOKEN_IF:        "if",
	TOKEN_PRINT:     "print",
	TOKEN_RETURN:    "return",
	TOKEN_VAR:       "var",
	TOKEN_WHILE:     "while",
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t TokenType) String() string {
	return TokenTypeName(t)
}

// IsStatementStart 判断 token 是否可以开始一条语句（用于错误恢复）
func IsStatementStart(t TokenType) bool {
	switch t {
	case TOKEN_FUN, TOKEN_VAR, TOKEN_FOR, TOKEN_IF, TOKEN_WHILE, TOKEN_PRINT, TOKEN_RETURN:
		return true
	default:
		return false
	}
}
