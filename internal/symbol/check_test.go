package symbol

import (
	"os"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/parser"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

type found struct {
	Kind WarningKind
	Line int
	Name string
}

func check(t *testing.T, src string, predeclared ...string) []found {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out []found
	for _, w := range Check(prog, predeclared...) {
		out = append(out, found{Kind: w.Kind, Line: w.Line, Name: w.Name})
	}
	return out
}

func wantWarnings(t *testing.T, src string, want []found, predeclared ...string) {
	t.Helper()
	got := check(t, src, predeclared...)
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Fatalf("\nsource:\n%s\nwarnings mismatch:\n%s", src, strings.Join(diff, "\n"))
	}
}

func TestCheck_Clean(t *testing.T) {
	src := `
var a = 1;
fun add(x, y) { return x + y; }
{
  var b = add(a, 2);
  print b;
}
for (var i = 0; i < 3; i = i + 1) print i;
`
	wantWarnings(t, src, nil)
}

func TestCheck_ReturnAtTopLevel(t *testing.T) {
	wantWarnings(t, "return 1;\n{ return; }", []found{
		{ReturnAtTopLevel, 1, ""},
		{ReturnAtTopLevel, 2, ""},
	})
	wantWarnings(t, "fun f() { { return; } }", nil)
}

func TestCheck_SelfInitializer(t *testing.T) {
	wantWarnings(t, "{ var a = a; }", []found{
		{SelfInitializer, 1, "a"},
	})
	// 全局变量可以引用之前的同名全局
	wantWarnings(t, "var a = 1; var a = a + 1;", nil)
	// 内层初始化读取的是外层同名变量之前，仍然是自引用
	wantWarnings(t, "var a = 1; { var a = a + 1; }", []found{
		{SelfInitializer, 1, "a"},
	})
}

func TestCheck_Redeclared(t *testing.T) {
	wantWarnings(t, "{ var a; var a; }", []found{
		{Redeclared, 1, "a"},
	})
	wantWarnings(t, "fun f(a, a) {}", []found{
		{Redeclared, 1, "a"},
	})
	wantWarnings(t, "fun f(a) {\n  var a = 1;\n}", []found{
		{Redeclared, 2, "a"},
	})
	wantWarnings(t, "var a; var a;", nil)
	wantWarnings(t, "{ var a; { var a; } }", nil)
}

func TestCheck_UnresolvedName(t *testing.T) {
	wantWarnings(t, "print x;\nvar x = 1;", []found{
		{UnresolvedName, 1, "x"},
	})
	wantWarnings(t, "y = 2;", []found{
		{UnresolvedName, 1, "y"},
	})
	wantWarnings(t, "print clock();", []found{
		{UnresolvedName, 1, "clock"},
	})
	wantWarnings(t, "print clock();", nil, "clock")
}

func TestCheck_FunctionsSeeLaterDeclarations(t *testing.T) {
	src := `
fun isEven(n) { if (n == 0) return true; return isOdd(n - 1); }
fun isOdd(n) { if (n == 0) return false; return isEven(n - 1); }
print isEven(4);
`
	wantWarnings(t, src, nil)

	src = `
fun outer() {
  fun inner() { return z; }
  var z = 1;
  return inner;
}
`
	wantWarnings(t, src, nil)
}

func TestCheck_WarningsSortedByLine(t *testing.T) {
	src := "fun f() {\n  return missing;\n}\nprint other;"
	wantWarnings(t, src, []found{
		{UnresolvedName, 2, "missing"},
		{UnresolvedName, 4, "other"},
	})
}

func TestWarning_String(t *testing.T) {
	prog, _ := parser.Parse("print nope;")
	ws := Check(prog)
	if len(ws) != 1 {
		t.Fatalf("got %d warnings", len(ws))
	}
	want := "[line 1] Warning: name 'nope' is not declared in any enclosing scope"
	if ws[0].String() != want {
		t.Fatalf("String() = %q, want %q", ws[0].String(), want)
	}
}

func TestTable_Scopes(t *testing.T) {
	tab := New("clock")
	if !tab.IsGlobal() || tab.InFunction() {
		t.Fatal("fresh table should be at global scope")
	}
	if sym := tab.Lookup("clock"); sym == nil || sym.Kind != SymbolNative {
		t.Fatalf("predeclared symbol = %# v", pretty.Formatter(sym))
	}

	tab.Push(true)
	tab.Declare(&Symbol{Name: "x", Kind: SymbolParam, Defined: true})
	tab.Push(false)
	if !tab.InFunction() {
		t.Fatal("block inside function should report InFunction")
	}
	if tab.LookupLocal("x") != nil {
		t.Fatal("x should not be local to the inner block")
	}
	if tab.Lookup("x") == nil {
		t.Fatal("x should resolve through the parent scope")
	}
	tab.Pop()
	tab.Pop()
	if !tab.IsGlobal() {
		t.Fatal("expected to be back at global scope")
	}
	tab.Pop()
	if !tab.IsGlobal() {
		t.Fatal("popping the global scope must be a no-op")
	}
}
