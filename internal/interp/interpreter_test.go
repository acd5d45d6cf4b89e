package interp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/parser"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func mustParse(t *testing.T, src string) *parser.Program {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v\nsource:\n%s", err, src)
	}
	return prog
}

func runWith(t *testing.T, opts Options, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.Stdout = &out
	in := New(opts)
	err := in.Interpret(context.Background(), mustParse(t, src))
	return out.String(), err
}

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	return runWith(t, Options{Natives: true}, src)
}

func wantOutput(t *testing.T, src string, lines ...string) {
	t.Helper()
	got, err := run(t, src)
	if err != nil {
		t.Fatalf("runtime error: %v\nsource:\n%s", err, src)
	}
	want := strings.Join(lines, "\n")
	if len(lines) > 0 {
		want += "\n"
	}
	if got != want {
		t.Fatalf("\nsource:\n%s\nwant output:\n%s\ngot output:\n%s", src, want, got)
	}
}

func wantRuntimeError(t *testing.T, src string, kind ErrorKind, line int) *RuntimeError {
	t.Helper()
	_, err := run(t, src)
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *RuntimeError, got %v\nsource:\n%s", err, src)
	}
	if rtErr.Kind != kind || rtErr.Line != line {
		t.Fatalf("got %v on line %d (%q), want %v on line %d", rtErr.Kind, rtErr.Line, rtErr.Msg, kind, line)
	}
	return rtErr
}

func TestInterpret_Precedence(t *testing.T) {
	wantOutput(t, "print 1 + 2 * 3;", "7")
	wantOutput(t, "print (1 + 2) * 3;", "9")
	wantOutput(t, "print 10 - 4 - 3;", "3")
	wantOutput(t, "print -2 * 3 < 0 == true;", "true")
}

func TestInterpret_ChainedAssignment(t *testing.T) {
	wantOutput(t, "var a; var b; a = b = 3; print a; print b; print a = 4;", "3", "3", "4")
}

func TestInterpret_ShortCircuit(t *testing.T) {
	wantOutput(t, "print false and (1/0);", "false")
	wantOutput(t, "print true or (1/0);", "true")
	wantOutput(t, `print nil or "x";`, "x")
	wantOutput(t, "print 1 and 2;", "2")
	wantOutput(t, `print nil and "never";`, "nil")

	src := "var called = false; fun f() { called = true; return true; } print false and f(); print called;"
	wantOutput(t, src, "false", "false")
}

func TestInterpret_BlockScoping(t *testing.T) {
	wantOutput(t, `var a = "outer"; { var a = "inner"; print a; } print a;`, "inner", "outer")
	wantOutput(t, "var a = 1; { a = 2; } print a;", "2")
	wantOutput(t, "var a = 1; { var a = a + 1; print a; } print a;", "2", "1")
	wantOutput(t, "var a = 1; var a = 2; print a;", "2")
}

func TestInterpret_Closures(t *testing.T) {
	src := `
fun makeCounter() {
  var i = 0;
  fun count() {
    i = i + 1;
    return i;
  }
  return count;
}
var c1 = makeCounter();
var c2 = makeCounter();
print c1();
print c1();
print c2();
`
	wantOutput(t, src, "1", "2", "1")
}

func TestInterpret_ClosureCapturesEachIteration(t *testing.T) {
	src := `
var first;
var second;
for (var i = 0; i < 2; i = i + 1) {
  var j = i;
  fun g() { return j; }
  if (i == 0) first = g; else second = g;
}
print first();
print second();
`
	wantOutput(t, src, "0", "1")
}

func TestInterpret_ClosureSeesLaterMutation(t *testing.T) {
	src := `
var x = "before";
fun show() { print x; }
x = "after";
show();
`
	wantOutput(t, src, "after")
}

func TestInterpret_Recursion(t *testing.T) {
	src := "fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } print fib(15);"
	wantOutput(t, src, "610")
}

func TestInterpret_FunctionDeclaredInBranch(t *testing.T) {
	wantOutput(t, "if (true) fun f() { print 1; } f();", "1")
	wantOutput(t, "if (false) fun f() { print 1; } else fun f() { print 2; } f();", "2")
}

func TestInterpret_LongChain(t *testing.T) {
	wantOutput(t, "print 0"+strings.Repeat(" + 1", 200)+";", "200")

	_, err := parser.Parse("print 1" + strings.Repeat(" + 1", 100000) + ";")
	if !errors.Is(err, parser.ErrSyntax) {
		t.Fatalf("err = %v, want a syntax error before evaluation", err)
	}
}

func TestInterpret_ForLoop(t *testing.T) {
	wantOutput(t, "for (var i = 0; i < 3; i = i + 1) print i;", "0", "1", "2")
	wantOutput(t, "var i = 5; for (i = 0; i < 2; i = i + 1) {} print i;", "2")
	wantOutput(t, "fun loop() { var n = 0; for (;;) { n = n + 1; if (n == 3) return n; } } print loop();", "3")
}

func TestInterpret_ReturnUnwindsNestedStatements(t *testing.T) {
	src := `
fun f() {
  var i = 0;
  while (true) {
    i = i + 1;
    if (i > 2) {
      {
        return i;
      }
    }
  }
  print "unreachable";
}
print f();
`
	wantOutput(t, src, "3")
	wantOutput(t, "fun f() { return; } print f();", "nil")
	wantOutput(t, "fun f() { } print f();", "nil")
	wantOutput(t, "fun f() { for (var i = 0; ; i = i + 1) if (i == 4) return i; } print f();", "4")
}

func TestInterpret_PrintFormatting(t *testing.T) {
	wantOutput(t, "print 1.5;", "1.5")
	wantOutput(t, "print 6 / 2;", "3")
	wantOutput(t, "print 1 / 3;", "0.3333333333333333")
	wantOutput(t, "print 100000;", "100000")
	wantOutput(t, `print "raw text";`, "raw text")
	wantOutput(t, `print "con" + "cat";`, "concat")
	wantOutput(t, "print nil; print true; print !nil;", "nil", "true", "true")
	wantOutput(t, "fun f() {} print f;", "<fn f>")
	wantOutput(t, "print clock;", "<native fn clock>")
}

func TestFormatNumber_NonFinite(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
		{-2.5, "-2.5"},
		{1e21, "1000000000000000000000"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInterpret_Equality(t *testing.T) {
	wantOutput(t, `print "a" == 1;`, "false")
	wantOutput(t, `print nil == false;`, "false")
	wantOutput(t, `print nil == nil;`, "true")
	wantOutput(t, `print "a" == "a";`, "true")
	wantOutput(t, `print 1 != 2;`, "true")
	wantOutput(t, "fun f() {} fun g() {} var h = f; print f == h; print f == g;", "true", "false")
	wantOutput(t, "print clock == clock;", "true")
}

func TestInterpret_RuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
		line int
		msg  string
	}{
		{"add mismatch", `print 1 + "a";`, TypeMismatch, 1, "operands of '+' must be two numbers or two strings"},
		{"compare mismatch", "\nprint 1 < nil;", TypeMismatch, 2, "operands of '<' must be numbers"},
		{"negate string", `print -"x";`, TypeMismatch, 1, "operand of '-' must be a number"},
		{"undefined read", "print missing;", UndefinedVariable, 1, "undefined variable 'missing'"},
		{"undefined assign", "missing = 1;", UndefinedVariable, 1, "undefined variable 'missing'"},
		{"not callable", `"str"();`, NotCallable, 1, "can only call functions, got string"},
		{"arity", "fun f(a) {}\nf(1, 2);", ArityMismatch, 2, "expected 1 arguments but got 2"},
		{"native arity", "clock(1);", ArityMismatch, 1, "expected 0 arguments but got 1"},
		{"division by zero", "print 1 / 0;", DivisionByZero, 1, "division by zero"},
		{"top-level return", "print 1;\nreturn 2;", ReturnOutsideFunction, 2, "can't return from top-level code"},
		{"return in top-level block", "{ return; }", ReturnOutsideFunction, 1, "can't return from top-level code"},
		{"assertion", "assert(1 == 2);", NativeError, 1, "assertion failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rtErr := wantRuntimeError(t, tt.src, tt.kind, tt.line)
			if rtErr.Msg != tt.msg {
				t.Fatalf("msg = %q, want %q", rtErr.Msg, tt.msg)
			}
		})
	}
}

func TestRuntimeError_Sentinels(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("errors.Is(%v, ErrTypeMismatch) = false", err)
	}
	if errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("type mismatch should not match ErrUndefinedVariable")
	}
	if got, want := err.Error(), "[line 1] RuntimeError: operands of '+' must be two numbers or two strings"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestInterpret_ErrorStopsExecution(t *testing.T) {
	out, err := run(t, "print 1; print nope; print 3;")
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("err = %v", err)
	}
	if out != "1\n" {
		t.Fatalf("output = %q, want only the first line", out)
	}
}

func TestInterpret_CallEvaluationOrder(t *testing.T) {
	in := New(Options{})
	err := in.Interpret(context.Background(), mustParse(t, "var x = 0; nil(x = 1, x = x + 1);"))
	if !errors.Is(err, ErrNotCallable) {
		t.Fatalf("err = %v, want NotCallable", err)
	}
	v, _ := in.Globals().Get("x")
	if !Equal(v, Number(2)) {
		t.Fatalf("arguments were not evaluated before the callable check: x = %s", Stringify(v))
	}
}

func TestInterpret_StackOverflow(t *testing.T) {
	_, err := runWith(t, Options{MaxCallDepth: 100}, "fun f(n) { return f(n + 1); }\nf(0);")
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) || rtErr.Kind != StackOverflow {
		t.Fatalf("err = %v, want StackOverflow", err)
	}
	if !errors.Is(err, ErrStackOverflow) {
		t.Fatalf("sentinel mismatch")
	}

	// 深度在错误后恢复，解释器仍可继续使用
	out, err := runWith(t, Options{MaxCallDepth: 100}, "fun f(n) { if (n == 0) return 0; return f(n - 1); } print f(99);")
	if err != nil || out != "0\n" {
		t.Fatalf("recursion within the limit failed: %q %v", out, err)
	}
}

func TestInterpret_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := New(Options{})
	err := in.Interpret(ctx, mustParse(t, "while (true) {}"))
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("err = %v, want Interrupted", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v should wrap context.Canceled", err)
	}
}

func TestInterpret_GlobalsPersistAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	in := New(Options{Stdout: &out})
	ctx := context.Background()
	if err := in.Interpret(ctx, mustParse(t, "var n = 1; fun inc() { n = n + 1; }")); err != nil {
		t.Fatal(err)
	}
	if err := in.Interpret(ctx, mustParse(t, "inc(); print n;")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "2\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestEvaluate(t *testing.T) {
	in := New(Options{})
	ctx := context.Background()
	if err := in.Interpret(ctx, mustParse(t, "var a = 20;")); err != nil {
		t.Fatal(err)
	}
	prog := mustParse(t, "a * 2 + 2;")
	v, err := in.Evaluate(ctx, prog.Statements[0].(*parser.ExpressionStmt).Expression)
	if err != nil {
		t.Fatal(err)
	}
	if Stringify(v) != "42" {
		t.Fatalf("Evaluate = %s", Stringify(v))
	}
}

func TestInterpret_Natives(t *testing.T) {
	wantOutput(t, "print clock() > 0;", "true")
	wantOutput(t, "assert(true); print \"ok\";", "ok")

	_, err := runWith(t, Options{}, "clock();")
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("natives installed without Options.Natives: %v", err)
	}
}

func TestInterpret_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := runWith(t, Options{Logger: logger}, "fun f() { return 1; } f();")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"call enter", "call exit", "function=f"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestValues(t *testing.T) {
	if IsTruthy(Nil{}) || IsTruthy(Bool(false)) {
		t.Fatal("nil and false must be falsy")
	}
	if !IsTruthy(Number(0)) || !IsTruthy(String("")) {
		t.Fatal("0 and empty string must be truthy")
	}
	if Equal(Number(math.NaN()), Number(math.NaN())) {
		t.Fatal("NaN must not equal itself")
	}
	if got := TypeName(String("x")); got != "string" {
		t.Fatalf("TypeName = %q", got)
	}
}
