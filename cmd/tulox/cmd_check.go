package main

import (
	"flag"
	"fmt"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/interp"
	"github.com/tangzhangming/tulox/internal/parser"
	"github.com/tangzhangming/tulox/internal/symbol"
)

// checkCmd 解析脚本并报告静态警告，不执行
func checkCmd(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgCheckUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgCheckDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgArgInput))
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		return exitUsage
	}

	path := fs.Arg(0)
	source, cfg, err := loadScript(path, false)
	if err != nil {
		return fail(err)
	}

	prog, err := parser.Parse(source)
	if err != nil {
		return fail(err)
	}

	var predeclared []string
	if cfg.Interpreter.Natives {
		predeclared = interp.NativeNames
	}
	warnings := symbol.Check(prog, predeclared...)
	if len(warnings) == 0 {
		fmt.Println(i18n.T(i18n.MsgCheckClean, path))
		return exitOK
	}

	for _, w := range warnings {
		fmt.Println(w.String())
	}
	if cfg.Interpreter.Strict {
		return exitDataErr
	}
	return exitOK
}
