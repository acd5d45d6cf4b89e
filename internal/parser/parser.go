package parser

import (
	"strconv"
	"strings"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
)

const (
	// MaxArgs 调用实参和函数形参的个数上限
	MaxArgs = 255
	// MaxNestingDepth 语句与表达式的最大嵌套层数
	MaxNestingDepth = 256
)

// TokenSource 提供 token 流，*lexer.Lexer 和 *lexer.SliceSource 都满足
type TokenSource interface {
	NextToken() lexer.Token
}

// Parser 语法分析器
type Parser struct {
	l         TokenSource
	curToken  lexer.Token
	peekToken lexer.Token
	errors    ErrorList

	failed bool // 当前声明中出现了需要同步恢复的错误
	depth  int
}

// New 创建一个新的语法分析器
func New(l TokenSource) *Parser {
	p := &Parser{l: l}
	// 读取两个 token，初始化 curToken 和 peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Parse 解析一段源码，返回程序和全部语法错误
func Parse(input string) (*Program, error) {
	p := New(lexer.New(input))
	prog := p.ParseProgram()
	return prog, p.Errors().Err()
}

// Errors 返回解析过程中的错误
func (p *Parser) Errors() ErrorList {
	return p.errors
}

// nextToken 前进到下一个 token
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek 期望下一个 token 类型并前进
func (p *Parser) expectPeek(t lexer.TokenType, msg string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(msg)
	return false
}

// peekError 在下一个 token 处记录错误
func (p *Parser) peekError(msg string) {
	if p.peekTokenIs(lexer.TOKEN_ILLEGAL) {
		p.fail(p.peekToken, illegalMessage(p.peekToken))
		return
	}
	p.fail(p.peekToken, msg)
}

// report 记录错误但继续解析
func (p *Parser) report(tok lexer.Token, msg string) {
	p.errors = append(p.errors, newSyntaxError(tok, msg))
}

// fail 记录错误，并让外层声明进入同步恢复
func (p *Parser) fail(tok lexer.Token, msg string) {
	p.report(tok, msg)
	p.failed = true
}

func illegalMessage(tok lexer.Token) string {
	if strings.HasPrefix(tok.Literal, `"`) {
		return i18n.T(i18n.ErrUnterminatedString)
	}
	return i18n.T(i18n.ErrUnexpectedChar, tok.Literal)
}

func expectAfter(t lexer.TokenType, ctx string) string {
	return i18n.T(i18n.ErrExpectAfter, lexer.TokenTypeName(t), i18n.T(ctx))
}

func expectBefore(t lexer.TokenType, ctx string) string {
	return i18n.T(i18n.ErrExpectBefore, lexer.TokenTypeName(t), i18n.T(ctx))
}

// enter 进入一层嵌套，超过上限时报错
func (p *Parser) enter() bool {
	if p.depth >= MaxNestingDepth {
		p.fail(p.curToken, i18n.T(i18n.ErrNestingTooDeep, MaxNestingDepth))
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// synchronize 丢弃 token 直到可能的语句边界
func (p *Parser) synchronize() {
	for !p.curTokenIs(lexer.TOKEN_EOF) {
		if p.curTokenIs(lexer.TOKEN_SEMICOLON) {
			return
		}
		if lexer.IsStatementStart(p.peekToken.Type) {
			return
		}
		p.nextToken()
	}
}

// ParseProgram 解析整个程序
func (p *Parser) ParseProgram() *Program {
	prog := &Program{}

	for !p.curTokenIs(lexer.TOKEN_EOF) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}

	return prog
}

// parseDeclaration 解析声明（var 只能出现在这里）；失败时同步到下一条语句并返回 nil
func (p *Parser) parseDeclaration() Statement {
	p.failed = false

	var stmt Statement
	if p.curTokenIs(lexer.TOKEN_VAR) {
		stmt = p.parseVarDecl()
	} else {
		stmt = p.parseStatement()
	}

	if p.failed {
		p.synchronize()
		p.failed = false
		return nil
	}
	return stmt
}

// parseStatement 解析语句（不含 var 声明）
func (p *Parser) parseStatement() Statement {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	switch p.curToken.Type {
	case lexer.TOKEN_PRINT:
		return p.parsePrintStmt()
	case lexer.TOKEN_FUN:
		return p.parseFunDecl()
	case lexer.TOKEN_LBRACE:
		// 避免把类型化的 nil 指针装进接口
		if block := p.parseBlockStmt(); block != nil {
			return block
		}
		return nil
	case lexer.TOKEN_IF:
		return p.parseIfStmt()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStmt()
	case lexer.TOKEN_FOR:
		return p.parseForStmt()
	case lexer.TOKEN_RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVarDecl 解析 var 声明: var name (= expr)? ;
func (p *Parser) parseVarDecl() Statement {
	if !p.expectPeek(lexer.TOKEN_IDENT, i18n.T(i18n.ErrExpectVarName)) {
		return nil
	}
	decl := &VarDecl{Token: p.curToken, Name: p.curToken.Literal}

	if p.peekTokenIs(lexer.TOKEN_ASSIGN) {
		p.nextToken()
		p.nextToken()
		decl.Initializer = p.parseAssignment()
		if decl.Initializer == nil {
			return nil
		}
	}

	if !p.expectPeek(lexer.TOKEN_SEMICOLON, expectAfter(lexer.TOKEN_SEMICOLON, i18n.CtxVarDecl)) {
		return nil
	}
	return decl
}

// parseFunDecl 解析函数声明: fun name(params) { body }
func (p *Parser) parseFunDecl() Statement {
	if !p.expectPeek(lexer.TOKEN_IDENT, i18n.T(i18n.ErrExpectFunName)) {
		return nil
	}
	fn := &FunDecl{Token: p.curToken, Name: p.curToken.Literal}

	if !p.expectPeek(lexer.TOKEN_LPAREN, expectAfter(lexer.TOKEN_LPAREN, i18n.CtxFunName)) {
		return nil
	}

	if !p.peekTokenIs(lexer.TOKEN_RPAREN) {
		for {
			if len(fn.Params) == MaxArgs {
				p.report(p.peekToken, i18n.T(i18n.ErrTooManyParams, MaxArgs))
			}
			if !p.expectPeek(lexer.TOKEN_IDENT, i18n.T(i18n.ErrExpectParamName)) {
				return nil
			}
			fn.Params = append(fn.Params, p.curToken)
			if !p.peekTokenIs(lexer.TOKEN_COMMA) {
				break
			}
			p.nextToken()
		}
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN, expectAfter(lexer.TOKEN_RPAREN, i18n.CtxParameters)) {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_LBRACE, expectBefore(lexer.TOKEN_LBRACE, i18n.CtxFunBody)) {
		return nil
	}

	body := p.parseBlockStmt()
	if body == nil {
		return nil
	}
	fn.Body = body.Statements
	return fn
}

// parsePrintStmt 解析 print 语句
func (p *Parser) parsePrintStmt() Statement {
	stmt := &PrintStmt{Token: p.curToken}
	p.nextToken()

	stmt.Expression = p.parseAssignment()
	if stmt.Expression == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON, expectAfter(lexer.TOKEN_SEMICOLON, i18n.CtxValue)) {
		return nil
	}
	return stmt
}

// parseReturnStmt 解析 return 语句
func (p *Parser) parseReturnStmt() Statement {
	stmt := &ReturnStmt{Token: p.curToken}

	if p.peekTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseAssignment()
	if stmt.Value == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON, expectAfter(lexer.TOKEN_SEMICOLON, i18n.CtxReturnValue)) {
		return nil
	}
	return stmt
}

// parseBlockStmt 解析代码块，结束时 curToken 停在 }
func (p *Parser) parseBlockStmt() *BlockStmt {
	block := &BlockStmt{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(lexer.TOKEN_RBRACE) && !p.curTokenIs(lexer.TOKEN_EOF) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if !p.curTokenIs(lexer.TOKEN_RBRACE) {
		p.fail(p.curToken, expectAfter(lexer.TOKEN_RBRACE, i18n.CtxBlock))
		return nil
	}
	return block
}

// parseIfStmt 解析 if 语句，else 归属最近的 if
func (p *Parser) parseIfStmt() Statement {
	stmt := &IfStmt{Token: p.curToken}

	if !p.expectPeek(lexer.TOKEN_LPAREN, expectAfter(lexer.TOKEN_LPAREN, i18n.CtxIf)) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseAssignment()
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN, expectAfter(lexer.TOKEN_RPAREN, i18n.CtxIfCondition)) {
		return nil
	}

	p.nextToken()
	stmt.Then = p.parseStatement()
	if stmt.Then == nil {
		return nil
	}

	if p.peekTokenIs(lexer.TOKEN_ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Else = p.parseStatement()
		if stmt.Else == nil {
			return nil
		}
	}
	return stmt
}

// parseWhileStmt 解析 while 语句
func (p *Parser) parseWhileStmt() Statement {
	stmt := &WhileStmt{Token: p.curToken}

	if !p.expectPeek(lexer.TOKEN_LPAREN, expectAfter(lexer.TOKEN_LPAREN, i18n.CtxWhile)) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseAssignment()
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN, expectAfter(lexer.TOKEN_RPAREN, i18n.CtxWhileCond)) {
		return nil
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseForStmt 解析 for 语句并脱糖:
//
//	{ init; while (cond) { body; incr; } }
//
// 缺省条件视为 true，没有 init 时外层块只包含 while
func (p *Parser) parseForStmt() Statement {
	tok := p.curToken

	if !p.expectPeek(lexer.TOKEN_LPAREN, expectAfter(lexer.TOKEN_LPAREN, i18n.CtxFor)) {
		return nil
	}
	p.nextToken()

	var init Statement
	switch p.curToken.Type {
	case lexer.TOKEN_SEMICOLON:
	case lexer.TOKEN_VAR:
		if init = p.parseVarDecl(); init == nil {
			return nil
		}
	default:
		if init = p.parseExpressionStatement(); init == nil {
			return nil
		}
	}

	var cond Expression
	if !p.peekTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
		if cond = p.parseAssignment(); cond == nil {
			return nil
		}
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON, expectAfter(lexer.TOKEN_SEMICOLON, i18n.CtxLoopCondition)) {
		return nil
	}

	var incr *ExpressionStmt
	if !p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		incr = &ExpressionStmt{Token: p.curToken}
		if incr.Expression = p.parseAssignment(); incr.Expression == nil {
			return nil
		}
	}
	if !p.expectPeek(lexer.TOKEN_RPAREN, expectAfter(lexer.TOKEN_RPAREN, i18n.CtxForClauses)) {
		return nil
	}

	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	if cond == nil {
		cond = &Literal{Token: tok, Value: true}
	}
	inner := &BlockStmt{Token: tok, Statements: []Statement{body}}
	if incr != nil {
		inner.Statements = append(inner.Statements, incr)
	}
	loop := &WhileStmt{Token: tok, Condition: cond, Body: inner}

	outer := &BlockStmt{Token: tok}
	if init != nil {
		outer.Statements = append(outer.Statements, init)
	}
	outer.Statements = append(outer.Statements, loop)
	return outer
}

// parseExpressionStatement 解析表达式语句
func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStmt{Token: p.curToken}

	stmt.Expression = p.parseAssignment()
	if stmt.Expression == nil {
		return nil
	}
	if !p.expectPeek(lexer.TOKEN_SEMICOLON, expectAfter(lexer.TOKEN_SEMICOLON, i18n.CtxExpression)) {
		return nil
	}
	return stmt
}

// 运算符优先级
const (
	_ int = iota
	LOWEST
	ASSIGN      // =
	OR          // or
	AND         // and
	EQUALS      // == !=
	LESSGREATER // > < >= <=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -X !X
	CALL        // myFunction(X)
)

var precedences = map[lexer.TokenType]int{
	lexer.TOKEN_OR:       OR,
	lexer.TOKEN_AND:      AND,
	lexer.TOKEN_EQ:       EQUALS,
	lexer.TOKEN_NOT_EQ:   EQUALS,
	lexer.TOKEN_LT:       LESSGREATER,
	lexer.TOKEN_GT:       LESSGREATER,
	lexer.TOKEN_LT_EQ:    LESSGREATER,
	lexer.TOKEN_GT_EQ:    LESSGREATER,
	lexer.TOKEN_PLUS:     SUM,
	lexer.TOKEN_MINUS:    SUM,
	lexer.TOKEN_ASTERISK: PRODUCT,
	lexer.TOKEN_SLASH:    PRODUCT,
	lexer.TOKEN_LPAREN:   CALL,
}

// peekPrecedence 获取下一个 token 的优先级
func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}
	return LOWEST
}

// curPrecedence 获取当前 token 的优先级
func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}
	return LOWEST
}

// parseAssignment 解析完整表达式；赋值右结合，目标只能是变量
func (p *Parser) parseAssignment() Expression {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	left := p.parseExpression(ASSIGN)
	if left == nil {
		return nil
	}
	if !p.peekTokenIs(lexer.TOKEN_ASSIGN) {
		return left
	}

	p.nextToken()
	equals := p.curToken
	p.nextToken()
	value := p.parseAssignment()
	if value == nil {
		return nil
	}

	if v, ok := left.(*Variable); ok {
		return &Assign{Token: v.Token, Name: v.Name, Value: value}
	}
	// 报错但不需要同步，左侧照常返回
	p.report(equals, i18n.T(i18n.ErrInvalidAssignTarget))
	return left
}

// parseExpression 按优先级解析表达式
func (p *Parser) parseExpression(precedence int) Expression {
	var left Expression

	switch p.curToken.Type {
	case lexer.TOKEN_IDENT:
		left = &Variable{Token: p.curToken, Name: p.curToken.Literal}
	case lexer.TOKEN_NUMBER:
		left = p.parseNumberLiteral()
	case lexer.TOKEN_STRING:
		lit := p.curToken.Literal
		left = &Literal{Token: p.curToken, Value: lit[1 : len(lit)-1]}
	case lexer.TOKEN_TRUE:
		left = &Literal{Token: p.curToken, Value: true}
	case lexer.TOKEN_FALSE:
		left = &Literal{Token: p.curToken, Value: false}
	case lexer.TOKEN_NIL:
		left = &Literal{Token: p.curToken, Value: nil}
	case lexer.TOKEN_LPAREN:
		left = p.parseGroupedExpression()
	case lexer.TOKEN_MINUS, lexer.TOKEN_NOT:
		left = p.parsePrefixExpression()
	case lexer.TOKEN_ILLEGAL:
		p.fail(p.curToken, illegalMessage(p.curToken))
		return nil
	default:
		p.fail(p.curToken, i18n.T(i18n.ErrExpectExpression))
		return nil
	}
	if left == nil {
		return nil
	}

	// 解析中缀表达式；左结合链每多一层也计入嵌套深度
	entered := 0
	defer func() { p.depth -= entered }()
	for precedence < p.peekPrecedence() {
		if !p.enter() {
			return nil
		}
		entered++
		switch p.peekToken.Type {
		case lexer.TOKEN_LPAREN:
			p.nextToken()
			left = p.parseCallExpression(left)
		case lexer.TOKEN_AND, lexer.TOKEN_OR:
			p.nextToken()
			left = p.parseLogicalExpression(left)
		default:
			p.nextToken()
			left = p.parseInfixExpression(left)
		}
		if left == nil {
			return nil
		}
	}

	return left
}

// parseNumberLiteral 解析数字字面量
func (p *Parser) parseNumberLiteral() Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.fail(p.curToken, i18n.T(i18n.ErrBadNumber, p.curToken.Literal))
		return nil
	}
	return &Literal{Token: p.curToken, Value: value}
}

// parseGroupedExpression 解析括号表达式
func (p *Parser) parseGroupedExpression() Expression {
	token := p.curToken
	p.nextToken()
	inner := p.parseAssignment()
	if inner == nil {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN, expectAfter(lexer.TOKEN_RPAREN, i18n.CtxExpression)) {
		return nil
	}
	return &Grouping{Token: token, Inner: inner}
}

// parsePrefixExpression 解析前缀表达式
func (p *Parser) parsePrefixExpression() Expression {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	expr := &Unary{Token: p.curToken, Operator: p.curToken.Type}
	p.nextToken()
	expr.Operand = p.parseExpression(PREFIX)
	if expr.Operand == nil {
		return nil
	}
	return expr
}

// parseInfixExpression 解析中缀表达式，同级运算符左结合
func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &Binary{
		Token:    p.curToken,
		Operator: p.curToken.Type,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseLogicalExpression 解析 and / or
func (p *Parser) parseLogicalExpression(left Expression) Expression {
	expr := &Logical{
		Token:    p.curToken,
		Operator: p.curToken.Type,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseCallExpression 解析函数调用表达式，curToken 为 (
func (p *Parser) parseCallExpression(callee Expression) Expression {
	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	// 此时 curToken 为 )
	return &Call{Token: p.curToken, Callee: callee, Arguments: args}
}

// parseCallArguments 解析调用参数
func (p *Parser) parseCallArguments() ([]Expression, bool) {
	var args []Expression

	if p.peekTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	for {
		if len(args) == MaxArgs {
			p.report(p.curToken, i18n.T(i18n.ErrTooManyArgs, MaxArgs))
		}
		arg := p.parseAssignment()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)

		if !p.peekTokenIs(lexer.TOKEN_COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN, expectAfter(lexer.TOKEN_RPAREN, i18n.CtxArguments)) {
		return nil, false
	}
	return args, true
}
