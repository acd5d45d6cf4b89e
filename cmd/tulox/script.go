package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tangzhangming/tulox/internal/config"
	"github.com/tangzhangming/tulox/internal/i18n"
)

// loadScript 读取脚本，并从脚本所在目录向上查找 tulox.toml
func loadScript(path string, verbose bool) (string, *config.Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, &accessError{err: err}
	}
	if info.IsDir() {
		return "", nil, &accessError{err: fmt.Errorf("%s is a directory", path)}
	}

	cfg, err := loadConfig(filepath.Dir(path), verbose)
	if err != nil {
		return "", nil, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &readFileError{path: path, err: err}
	}
	return string(source), cfg, nil
}

// loadConfig 查找并加载配置，同时应用语言设置
func loadConfig(startDir string, verbose bool) (*config.Config, error) {
	cfg, configPath, err := config.FindAndLoad(startDir)
	if err != nil {
		return nil, &configError{err: err}
	}

	if cfg.Lang != "" {
		if lang, ok := i18n.ParseLanguage(cfg.Lang); ok {
			i18n.SetLanguage(lang)
		}
	}

	if verbose {
		if configPath != "" {
			printInfo(i18n.T(i18n.MsgUsingConfig, configPath))
		} else {
			printInfo(i18n.T(i18n.MsgNoConfig))
		}
	}
	return cfg, nil
}

// newLogger 按配置创建写到 stderr 的日志器，-v 强制 debug 级别
func newLogger(cfg config.LogConfig, verbose bool) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
