package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kr/pretty"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(DefaultConfig(), cfg); len(diff) > 0 {
		t.Fatalf("empty file should yield defaults:\n%s", strings.Join(diff, "\n"))
	}
}

func TestParse_FullFile(t *testing.T) {
	src := `
lang = "zh"

[interpreter]
max_call_depth = 200
natives = false
strict = true
timeout = "1.5s"

[log]
level = "debug"
format = "json"

[repl]
prompt = "lox> "
continue_prompt = "   | "
history = ""
`
	cfg, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Lang: "zh",
		Interpreter: InterpreterConfig{
			MaxCallDepth: 200,
			Natives:      false,
			Strict:       true,
			Timeout:      Duration{1500 * time.Millisecond},
		},
		Log:  LogConfig{Level: "debug", Format: "json"},
		Repl: ReplConfig{Prompt: "lox> ", ContinuePrompt: "   | ", History: ""},
	}
	if diff := pretty.Diff(want, cfg); len(diff) > 0 {
		t.Fatalf("decoded config mismatch:\n%s", strings.Join(diff, "\n"))
	}
	if level, _ := cfg.Log.SlogLevel(); level != slog.LevelDebug {
		t.Fatalf("SlogLevel = %v", level)
	}
	if cfg.Repl.HistoryPath() != "" {
		t.Fatalf("empty history should disable the history file")
	}
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse("[interpreter]\nstrict = true\n")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Interpreter.Strict || cfg.Interpreter.MaxCallDepth != 1024 || !cfg.Interpreter.Natives {
		t.Fatalf("partial file lost defaults: %# v", pretty.Formatter(cfg.Interpreter))
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"depth", "[interpreter]\nmax_call_depth = 0", "max_call_depth must be positive"},
		{"timeout", "[interpreter]\ntimeout = \"-1s\"", "timeout must not be negative"},
		{"bad duration", "[interpreter]\ntimeout = \"soon\"", "soon"},
		{"level", "[log]\nlevel = \"loud\"", "unknown level"},
		{"format", "[log]\nformat = \"xml\"", "text or json"},
		{"lang", "lang = \"fr\"", "unsupported language"},
		{"unknown key", "[interpreter]\nturbo = true", "unknown keys: interpreter.turbo"},
		{"syntax", "[interpreter", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestFindAndLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte("[repl]\nprompt = \"# \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, found, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if found != path {
		t.Fatalf("found %q, want %q", found, path)
	}
	if cfg.Repl.Prompt != "# " {
		t.Fatalf("prompt = %q", cfg.Repl.Prompt)
	}
}

func TestFindAndLoad_NoFile(t *testing.T) {
	cfg, found, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// 临时目录的上级中可能恰好存在配置文件，这里只在未找到时检查默认值
	if found == "" && cfg.Interpreter.MaxCallDepth != 1024 {
		t.Fatalf("defaults not applied: %# v", pretty.Formatter(cfg))
	}
}

func TestLoad_ReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("[log]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("error %v should mention %s", err, path)
	}
}
