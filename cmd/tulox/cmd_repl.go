package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/tangzhangming/tulox/internal/config"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/interp"
	"github.com/tangzhangming/tulox/internal/parser"
)

// replCmd 启动交互环境，全局变量在多次输入之间保留
func replCmd(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgReplUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgReplDescription))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fail(&accessError{err: err})
	}
	cfg, err := loadConfig(cwd, *verbose)
	if err != nil {
		return fail(err)
	}

	fmt.Println(i18n.T(i18n.MsgReplBanner, version))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.Repl.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	in := interp.New(interp.Options{
		Stdout:       os.Stdout,
		Logger:       newLogger(cfg.Log, *verbose),
		MaxCallDepth: cfg.Interpreter.MaxCallDepth,
		Natives:      cfg.Interpreter.Natives,
	})

	for {
		code, ok := readByParseProbe(ln, cfg.Repl.Prompt, cfg.Repl.ContinuePrompt)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return exitOK
			default:
				fmt.Println(i18n.T(i18n.MsgReplUnknownCmd))
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err := evalInput(in, cfg, code); err != nil {
			printError(err.Error())
		}
	}
	return exitOK
}

// evalInput 执行一次输入；单个表达式语句会回显其值
func evalInput(in *interp.Interpreter, cfg *config.Config, code string) error {
	prog, err := parser.Parse(code)
	if err != nil {
		return err
	}

	ctx, stop := interruptContext(cfg.Interpreter.Timeout.Duration)
	defer stop()

	if len(prog.Statements) == 1 {
		if stmt, ok := prog.Statements[0].(*parser.ExpressionStmt); ok {
			v, err := in.Evaluate(ctx, stmt.Expression)
			if err != nil {
				return err
			}
			fmt.Println(interp.Stringify(v))
			return nil
		}
	}
	return in.Interpret(ctx, prog)
}

// readByParseProbe 读取一段完整的输入：解析器报告“在输入末尾出错”时继续读下一行
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C 丢弃当前输入
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := parser.Parse(src)
		if perr == nil || !parser.IsIncomplete(perr) || strings.TrimSpace(line) == "" {
			return src, true
		}
		// 只缺结尾分号时直接补上
		if _, err := parser.Parse(src + ";"); err == nil {
			return src + ";", true
		}
	}
}
