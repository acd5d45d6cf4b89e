package i18n

// Message keys for diagnostics display
const (
	ErrSyntaxAt    = "diag.syntax_at"     // args: line, lexeme, message
	ErrSyntaxAtEnd = "diag.syntax_at_end" // args: line, message
	ErrRuntimeAt   = "diag.runtime_at"    // args: line, kind, message
	WarnAt         = "diag.warning_at"    // args: line, message
)

// Message keys for parser errors
const (
	ErrExpectExpression    = "parser.expect_expression"
	ErrExpectAfter         = "parser.expect_after"  // args: token, context
	ErrExpectBefore        = "parser.expect_before" // args: token, context
	ErrExpectVarName       = "parser.expect_var_name"
	ErrExpectFunName       = "parser.expect_fun_name"
	ErrExpectParamName     = "parser.expect_param_name"
	ErrInvalidAssignTarget = "parser.invalid_assignment_target"
	ErrTooManyArgs         = "parser.too_many_args"   // args: limit
	ErrTooManyParams       = "parser.too_many_params" // args: limit
	ErrUnterminatedString  = "parser.unterminated_string"
	ErrUnexpectedChar      = "parser.unexpected_char" // args: char
	ErrNestingTooDeep      = "parser.nesting_too_deep" // args: limit
	ErrBadNumber           = "parser.bad_number"      // args: lexeme
)

// Parser context words, used as the %s of ErrExpectAfter / ErrExpectBefore
const (
	CtxValue         = "ctx.value"
	CtxExpression    = "ctx.expression"
	CtxVarDecl       = "ctx.var_decl"
	CtxBlock         = "ctx.block"
	CtxIf            = "ctx.if"
	CtxIfCondition   = "ctx.if_condition"
	CtxWhile         = "ctx.while"
	CtxWhileCond     = "ctx.while_condition"
	CtxFor           = "ctx.for"
	CtxLoopCondition = "ctx.loop_condition"
	CtxForClauses    = "ctx.for_clauses"
	CtxArguments     = "ctx.arguments"
	CtxFunName       = "ctx.fun_name"
	CtxParameters    = "ctx.parameters"
	CtxFunBody       = "ctx.fun_body"
	CtxReturnValue   = "ctx.return_value"
)

// Message keys for runtime errors
const (
	RtUndefinedVariable = "runtime.undefined_variable" // args: name
	RtOperandNumber     = "runtime.operand_number"     // args: operator
	RtOperandsNumbers   = "runtime.operands_numbers"   // args: operator
	RtOperandsAdd       = "runtime.operands_add"
	RtNotCallable       = "runtime.not_callable" // args: type name
	RtArity             = "runtime.arity"        // args: expected, got
	RtReturnOutside     = "runtime.return_outside_function"
	RtDivisionByZero    = "runtime.division_by_zero"
	RtStackOverflow     = "runtime.stack_overflow" // args: limit
	RtInterrupted       = "runtime.interrupted"    // args: cause
	RtAssertion         = "runtime.assertion_failed"
	RtInternal          = "runtime.internal" // args: node
)

// Message keys for static check warnings
const (
	WarnReturnTopLevel  = "check.return_top_level"
	WarnSelfInitializer = "check.self_initializer" // args: name
	WarnRedeclared      = "check.redeclared"       // args: name
	WarnUnresolved      = "check.unresolved"       // args: name
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdRepl        = "cli.cmd_repl"
	MsgCmdCheck       = "cli.cmd_check"
	MsgCmdAst         = "cli.cmd_ast"
	MsgCmdTokens      = "cli.cmd_tokens"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Subcommand usage
	MsgRunUsage          = "cli.run_usage"
	MsgRunDescription    = "cli.run_description"
	MsgCheckUsage        = "cli.check_usage"
	MsgCheckDescription  = "cli.check_description"
	MsgAstUsage          = "cli.ast_usage"
	MsgAstDescription    = "cli.ast_description"
	MsgTokensUsage       = "cli.tokens_usage"
	MsgTokensDescription = "cli.tokens_description"
	MsgReplUsage         = "cli.repl_usage"
	MsgReplDescription   = "cli.repl_description"
	MsgArgInput          = "cli.arg_input"
	MsgOptVerbose        = "cli.opt_verbose"
	MsgOptTimeout        = "cli.opt_timeout"
	MsgOptRaw            = "cli.opt_raw"

	// REPL
	MsgReplBanner     = "cli.repl_banner" // args: version
	MsgReplUnknownCmd = "cli.repl_unknown_command"

	// Common errors
	ErrInputRequired     = "cli.input_required"
	ErrCannotAccessInput = "cli.cannot_access_input" // args: error
	ErrCannotLoadConfig  = "cli.cannot_load_config"  // args: error
	ErrCannotReadFile    = "cli.cannot_read_file"    // args: path, error
	ErrStrictCheck       = "cli.strict_check"        // args: count

	// Info messages
	MsgUsingConfig = "cli.using_config" // args: configPath
	MsgNoConfig    = "cli.no_config"
	MsgCheckClean  = "cli.check_clean" // args: path
)
