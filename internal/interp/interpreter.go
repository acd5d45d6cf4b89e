package interp

import (
	"context"
	"io"
	"log/slog"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/parser"
)

// DefaultMaxCallDepth 默认的最大嵌套调用层数
const DefaultMaxCallDepth = 1024

// Options 解释器选项
type Options struct {
	Stdout       io.Writer    // print 的输出，默认丢弃
	Logger       *slog.Logger // 调试日志，默认丢弃
	MaxCallDepth int          // <= 0 时使用 DefaultMaxCallDepth
	Natives      bool         // 是否安装 clock / assert
}

// Interpreter 树遍历解释器，不能并发使用
type Interpreter struct {
	globals  *Environment
	out      io.Writer
	log      *slog.Logger
	maxDepth int

	depth int
	ctx   context.Context
}

// New 创建解释器，全局作用域在多次 Interpret 之间保留
func New(opts Options) *Interpreter {
	in := &Interpreter{
		globals:  NewEnvironment(nil),
		out:      opts.Stdout,
		log:      opts.Logger,
		maxDepth: opts.MaxCallDepth,
	}
	if in.out == nil {
		in.out = io.Discard
	}
	if in.log == nil {
		in.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if in.maxDepth <= 0 {
		in.maxDepth = DefaultMaxCallDepth
	}
	if opts.Natives {
		InstallNatives(in.globals)
	}
	return in
}

// Globals 返回全局作用域
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Interpret 在全局作用域中依次执行程序的语句，遇到第一个运行时错误即停止
func (in *Interpreter) Interpret(ctx context.Context, prog *parser.Program) error {
	in.begin(ctx)
	defer in.end()

	for _, stmt := range prog.Statements {
		sig, err := in.execute(stmt, in.globals)
		if err != nil {
			in.log.Debug("runtime error", slog.Any("error", err))
			return err
		}
		if sig.returning {
			return newError(ReturnOutsideFunction, sig.line, i18n.RtReturnOutside)
		}
	}
	return nil
}

// Evaluate 在全局作用域中求值单个表达式，REPL 用它回显结果
func (in *Interpreter) Evaluate(ctx context.Context, expr parser.Expression) (Value, error) {
	in.begin(ctx)
	defer in.end()

	v, err := in.evaluate(expr, in.globals)
	if err != nil {
		in.log.Debug("runtime error", slog.Any("error", err))
	}
	return v, err
}

func (in *Interpreter) begin(ctx context.Context) {
	in.ctx = ctx
	in.depth = 0
}

func (in *Interpreter) end() {
	in.ctx = nil
}

// checkContext 在循环迭代和函数调用前检查是否已被取消
func (in *Interpreter) checkContext(line int) error {
	if in.ctx == nil {
		return nil
	}
	if err := in.ctx.Err(); err != nil {
		return &RuntimeError{
			Kind:  Interrupted,
			Line:  line,
			Msg:   i18n.T(i18n.RtInterrupted, err),
			cause: err,
		}
	}
	return nil
}

// signal 语句执行结果：正常结束，或携带 return 的值向上传递
type signal struct {
	returning bool
	value     Value
	line      int
}

var normal = signal{}
