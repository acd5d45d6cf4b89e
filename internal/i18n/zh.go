package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// 诊断信息
	ErrSyntaxAt:    "[第 %d 行] 错误，位于 '%s'：%s",
	ErrSyntaxAtEnd: "[第 %d 行] 错误，位于文件末尾：%s",
	ErrRuntimeAt:   "[第 %d 行] %s：%s",
	WarnAt:         "[第 %d 行] 警告：%s",

	// 语法错误
	ErrExpectExpression:    "此处需要表达式",
	ErrExpectAfter:         "%[2]s 之后需要 '%[1]s'",
	ErrExpectBefore:        "%[2]s 之前需要 '%[1]s'",
	ErrExpectVarName:       "需要变量名",
	ErrExpectFunName:       "需要函数名",
	ErrExpectParamName:     "需要参数名",
	ErrInvalidAssignTarget: "无效的赋值目标",
	ErrTooManyArgs:         "参数个数不能超过 %d 个",
	ErrTooManyParams:       "形参个数不能超过 %d 个",
	ErrUnterminatedString:  "字符串未结束",
	ErrUnexpectedChar:      "意外的字符 '%s'",
	ErrNestingTooDeep:      "表达式嵌套过深（上限 %d）",
	ErrBadNumber:           "无效的数字字面量 '%s'",

	CtxValue:         "值",
	CtxExpression:    "表达式",
	CtxVarDecl:       "变量声明",
	CtxBlock:         "代码块",
	CtxIf:            "'if'",
	CtxIfCondition:   "if 条件",
	CtxWhile:         "'while'",
	CtxWhileCond:     "while 条件",
	CtxFor:           "'for'",
	CtxLoopCondition: "循环条件",
	CtxForClauses:    "for 子句",
	CtxArguments:     "实参列表",
	CtxFunName:       "函数名",
	CtxParameters:    "形参列表",
	CtxFunBody:       "函数体",
	CtxReturnValue:   "返回值",

	// 运行时错误
	RtUndefinedVariable: "未定义的变量 '%s'",
	RtOperandNumber:     "'%s' 的操作数必须是数字",
	RtOperandsNumbers:   "'%s' 的操作数必须都是数字",
	RtOperandsAdd:       "'+' 的操作数必须同为数字或同为字符串",
	RtNotCallable:       "只能调用函数，实际为 %s",
	RtArity:             "需要 %d 个参数，实际传入 %d 个",
	RtReturnOutside:     "不能在顶层代码中 return",
	RtDivisionByZero:    "除数为零",
	RtStackOverflow:     "栈溢出（嵌套调用超过 %d 层）",
	RtInterrupted:       "执行被中断：%v",
	RtAssertion:         "断言失败",
	RtInternal:          "内部错误：不支持的节点 %T",

	// 静态检查警告
	WarnReturnTopLevel:  "'return' 出现在函数之外",
	WarnSelfInitializer: "局部变量 '%s' 在自身的初始化表达式中被读取",
	WarnRedeclared:      "变量 '%s' 已在当前作用域中声明",
	WarnUnresolved:      "名称 '%s' 没有在任何外层作用域中声明",

	// 命令行
	MsgUsage:          "用法: tulox <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdRun:         "  run      运行脚本",
	MsgCmdRepl:        "  repl     启动交互式会话",
	MsgCmdCheck:       "  check    解析脚本并报告静态警告",
	MsgCmdAst:         "  ast      打印脚本的语法树",
	MsgCmdTokens:      "  tokens   打印脚本的 token 流",
	MsgCmdVersion:     "  version  打印版本信息",
	MsgCmdHelp:        "  help     显示帮助",
	MsgUseHelp:        "使用 \"tulox help\" 获取更多信息。",
	MsgUnknownCommand: "未知命令: %s",

	MsgRunUsage:          "用法: tulox run [选项] <文件>",
	MsgRunDescription:    "解析并执行脚本。",
	MsgCheckUsage:        "用法: tulox check <文件>",
	MsgCheckDescription:  "解析脚本并报告语法错误和静态警告，不执行脚本。",
	MsgAstUsage:          "用法: tulox ast [选项] <文件>",
	MsgAstDescription:    "打印脚本脱糖后的语法树。",
	MsgTokensUsage:       "用法: tulox tokens <文件>",
	MsgTokensDescription: "打印脚本的 token 流。",
	MsgReplUsage:         "用法: tulox repl [选项]",
	MsgReplDescription:   "启动交互环境，全局变量在多次输入之间保留。",
	MsgArgInput:          "  <文件>    要处理的脚本",
	MsgOptVerbose:        "开启调试日志",
	MsgOptTimeout:        "超过该时长后中止执行（0 表示不限制）",
	MsgOptRaw:            "输出 Go 结构而不是前缀形式",

	MsgReplBanner:     "tulox %s 交互环境\nCtrl+C 取消输入，Ctrl+D 退出。输入 :quit 退出。",
	MsgReplUnknownCmd: "未知命令。输入 :quit 退出。",

	ErrInputRequired:     "错误: 需要指定输入文件",
	ErrCannotAccessInput: "错误: 无法访问输入: %v",
	ErrCannotLoadConfig:  "错误: 无法加载 tulox.toml: %v",
	ErrCannotReadFile:    "错误: 无法读取 %s: %v",
	ErrStrictCheck:       "拒绝运行: 严格模式下存在 %d 个静态警告",

	MsgUsingConfig: "使用配置: %s",
	MsgNoConfig:    "未找到 tulox.toml，使用默认配置",
	MsgCheckClean:  "%s: 未发现问题",
}
