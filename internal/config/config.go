package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tangzhangming/tulox/internal/i18n"
)

// FileName 配置文件名
const FileName = "tulox.toml"

// Config tulox 配置
type Config struct {
	Lang        string            `toml:"lang"` // 覆盖环境变量检测到的语言
	Interpreter InterpreterConfig `toml:"interpreter"`
	Log         LogConfig         `toml:"log"`
	Repl        ReplConfig        `toml:"repl"`
}

// InterpreterConfig 解释器配置
type InterpreterConfig struct {
	MaxCallDepth int      `toml:"max_call_depth"`
	Natives      bool     `toml:"natives"` // 安装 clock / assert
	Strict       bool     `toml:"strict"`  // 静态检查警告视为错误
	Timeout      Duration `toml:"timeout"` // 0 表示不限制
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `toml:"level"`  // debug|info|warn|error
	Format string `toml:"format"` // text|json
}

// ReplConfig 交互环境配置
type ReplConfig struct {
	Prompt         string `toml:"prompt"`
	ContinuePrompt string `toml:"continue_prompt"`
	History        string `toml:"history"` // 相对路径基于用户主目录，空字符串关闭历史
}

// Duration 支持 "1.5s" 形式的时长
type Duration struct {
	time.Duration
}

// UnmarshalText 解析 time.ParseDuration 格式
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText 输出 time.Duration 的字符串形式
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Interpreter: InterpreterConfig{
			MaxCallDepth: 1024,
			Natives:      true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Repl: ReplConfig{
			Prompt:         "> ",
			ContinuePrompt: "... ",
			History:        ".tulox_history",
		},
	}
}

// FindAndLoad 从指定目录向上查找 tulox.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 tulox.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，未出现的键保留默认值
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse 解析配置文本并校验
func Parse(data string) (*Config, error) {
	config := DefaultConfig()
	md, err := toml.Decode(data, config)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	var errs []error
	if c.Lang != "" {
		if _, ok := i18n.ParseLanguage(c.Lang); !ok {
			errs = append(errs, fmt.Errorf("lang: unsupported language %q", c.Lang))
		}
	}
	if c.Interpreter.MaxCallDepth <= 0 {
		errs = append(errs, fmt.Errorf("interpreter.max_call_depth must be positive, got %d", c.Interpreter.MaxCallDepth))
	}
	if c.Interpreter.Timeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("interpreter.timeout must not be negative, got %s", c.Interpreter.Timeout.Duration))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// SlogLevel 把 level 字段转换为 slog.Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: unknown level %q", l.Level)
	}
	return level, nil
}

// HistoryPath 返回历史文件的绝对路径，关闭历史时返回空字符串
func (r ReplConfig) HistoryPath() string {
	if r.History == "" || filepath.IsAbs(r.History) {
		return r.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, r.History)
}
