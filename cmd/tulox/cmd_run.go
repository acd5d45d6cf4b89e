package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/interp"
	"github.com/tangzhangming/tulox/internal/parser"
	"github.com/tangzhangming/tulox/internal/symbol"
)

// runCmd 解析并执行脚本
func runCmd(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgOptVerbose))
	timeout := fs.Duration("timeout", 0, i18n.T(i18n.MsgOptTimeout))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgRunDescription))
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

	source, cfg, err := loadScript(fs.Arg(0), *verbose)
	if err != nil {
		return fail(err)
	}

	// 命令行上的 -timeout 优先于配置文件
	limit := cfg.Interpreter.Timeout.Duration
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "timeout" {
			limit = *timeout
		}
	})

	prog, err := parser.Parse(source)
	if err != nil {
		return fail(err)
	}

	if cfg.Interpreter.Strict {
		var predeclared []string
		if cfg.Interpreter.Natives {
			predeclared = interp.NativeNames
		}
		if warnings := symbol.Check(prog, predeclared...); len(warnings) > 0 {
			for _, w := range warnings {
				printError(w.String())
			}
			return fail(&strictError{count: len(warnings)})
		}
	}

	in := interp.New(interp.Options{
		Stdout:       os.Stdout,
		Logger:       newLogger(cfg.Log, *verbose),
		MaxCallDepth: cfg.Interpreter.MaxCallDepth,
		Natives:      cfg.Interpreter.Natives,
	})

	ctx, stop := interruptContext(limit)
	defer stop()

	if err := in.Interpret(ctx, prog); err != nil {
		return fail(err)
	}
	return exitOK
}

// interruptContext 在 Ctrl+C 或超时后取消；limit 为 0 表示不限制时长
func interruptContext(limit time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	if limit <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, limit)
	return ctx, func() {
		cancel()
		stop()
	}
}
