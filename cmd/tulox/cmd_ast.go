package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kr/pretty"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
	"github.com/tangzhangming/tulox/internal/printer"
)

// astCmd 打印脱糖后的语法树
func astCmd(args []string) int {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	raw := fs.Bool("raw", false, i18n.T(i18n.MsgOptRaw))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgAstUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgAstDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		return exitUsage
	}

	source, _, err := loadScript(fs.Arg(0), false)
	if err != nil {
		return fail(err)
	}

	prog, err := parser.Parse(source)
	if err != nil {
		return fail(err)
	}

	if *raw {
		fmt.Printf("%# v\n", pretty.Formatter(prog))
		return exitOK
	}
	if err := printer.Fprint(os.Stdout, prog); err != nil {
		return fail(err)
	}
	return exitOK
}

// tokensCmd 打印 token 流
func tokensCmd(args []string) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgTokensUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgTokensDescription))
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

	source, _, err := loadScript(fs.Arg(0), false)
	if err != nil {
		return fail(err)
	}

	for _, tok := range lexer.Tokenize(source) {
		fmt.Printf("%d:%d\t%-8s %q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
	}
	return exitOK
}
