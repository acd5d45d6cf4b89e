package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Diagnostics display
	ErrSyntaxAt:    "[line %d] Error at '%s': %s",
	ErrSyntaxAtEnd: "[line %d] Error at end: %s",
	ErrRuntimeAt:   "[line %d] %s: %s",
	WarnAt:         "[line %d] Warning: %s",

	// Parser errors
	ErrExpectExpression:    "expect expression",
	ErrExpectAfter:         "expect '%s' after %s",
	ErrExpectBefore:        "expect '%s' before %s",
	ErrExpectVarName:       "expect variable name",
	ErrExpectFunName:       "expect function name",
	ErrExpectParamName:     "expect parameter name",
	ErrInvalidAssignTarget: "invalid assignment target",
	ErrTooManyArgs:         "can't have more than %d arguments",
	ErrTooManyParams:       "can't have more than %d parameters",
	ErrUnterminatedString:  "unterminated string",
	ErrUnexpectedChar:      "unexpected character '%s'",
	ErrNestingTooDeep:      "expression nested too deeply (limit %d)",
	ErrBadNumber:           "invalid number literal '%s'",

	CtxValue:         "value",
	CtxExpression:    "expression",
	CtxVarDecl:       "variable declaration",
	CtxBlock:         "block",
	CtxIf:            "'if'",
	CtxIfCondition:   "if condition",
	CtxWhile:         "'while'",
	CtxWhileCond:     "while condition",
	CtxFor:           "'for'",
	CtxLoopCondition: "loop condition",
	CtxForClauses:    "for clauses",
	CtxArguments:     "arguments",
	CtxFunName:       "function name",
	CtxParameters:    "parameters",
	CtxFunBody:       "function body",
	CtxReturnValue:   "return value",

	// Runtime errors
	RtUndefinedVariable: "undefined variable '%s'",
	RtOperandNumber:     "operand of '%s' must be a number",
	RtOperandsNumbers:   "operands of '%s' must be numbers",
	RtOperandsAdd:       "operands of '+' must be two numbers or two strings",
	RtNotCallable:       "can only call functions, got %s",
	RtArity:             "expected %d arguments but got %d",
	RtReturnOutside:     "can't return from top-level code",
	RtDivisionByZero:    "division by zero",
	RtStackOverflow:     "stack overflow (more than %d nested calls)",
	RtInterrupted:       "execution interrupted: %v",
	RtAssertion:         "assertion failed",
	RtInternal:          "internal error: unsupported node %T",

	// Static check warnings
	WarnReturnTopLevel:  "'return' outside of a function",
	WarnSelfInitializer: "local variable '%s' is read in its own initializer",
	WarnRedeclared:      "variable '%s' is already declared in this scope",
	WarnUnresolved:      "name '%s' is not declared in any enclosing scope",

	// CLI
	MsgUsage:          "Usage: tulox <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdRun:         "  run      Run a script",
	MsgCmdRepl:        "  repl     Start an interactive session",
	MsgCmdCheck:       "  check    Parse a script and report static warnings",
	MsgCmdAst:         "  ast      Print the syntax tree of a script",
	MsgCmdTokens:      "  tokens   Print the token stream of a script",
	MsgCmdVersion:     "  version  Print version information",
	MsgCmdHelp:        "  help     Show this help",
	MsgUseHelp:        "Use \"tulox help\" for more information.",
	MsgUnknownCommand: "Unknown command: %s",

	MsgRunUsage:          "Usage: tulox run [options] <file>",
	MsgRunDescription:    "Parse and execute a script.",
	MsgCheckUsage:        "Usage: tulox check <file>",
	MsgCheckDescription:  "Parse a script and report syntax errors and static warnings without running it.",
	MsgAstUsage:          "Usage: tulox ast [options] <file>",
	MsgAstDescription:    "Print the desugared syntax tree of a script.",
	MsgTokensUsage:       "Usage: tulox tokens <file>",
	MsgTokensDescription: "Print the token stream of a script.",
	MsgReplUsage:         "Usage: tulox repl [options]",
	MsgReplDescription:   "Start an interactive session. Globals persist between inputs.",
	MsgArgInput:          "  <file>    Script to process",
	MsgOptVerbose:        "Enable debug logging",
	MsgOptTimeout:        "Abort execution after this duration (0 = no limit)",
	MsgOptRaw:            "Dump Go structures instead of the prefix form",

	MsgReplBanner:     "tulox %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.",
	MsgReplUnknownCmd: "unknown command. Type :quit to exit.",

	ErrInputRequired:     "Error: input file is required",
	ErrCannotAccessInput: "Error: cannot access input: %v",
	ErrCannotLoadConfig:  "Error: cannot load tulox.toml: %v",
	ErrCannotReadFile:    "Error: cannot read %s: %v",
	ErrStrictCheck:       "refusing to run: %d static warning(s) in strict mode",

	MsgUsingConfig: "Using config: %s",
	MsgNoConfig:    "No tulox.toml found, using defaults",
	MsgCheckClean:  "%s: no problems found",
}
