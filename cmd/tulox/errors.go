package main

import (
	"errors"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/interp"
	"github.com/tangzhangming/tulox/internal/parser"
)

// 退出码沿用 sysexits 约定
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65 // 语法错误，或严格模式下的静态检查警告
	exitSoftware = 70 // 运行时错误
	exitIOErr    = 74
)

// 错误类型定义
type accessError struct {
	err error
}

func (e *accessError) Error() string {
	return i18n.T(i18n.ErrCannotAccessInput, e.err)
}

func (e *accessError) Unwrap() error { return e.err }

type configError struct {
	err error
}

func (e *configError) Error() string {
	return i18n.T(i18n.ErrCannotLoadConfig, e.err)
}

func (e *configError) Unwrap() error { return e.err }

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return i18n.T(i18n.ErrCannotReadFile, e.path, e.err)
}

func (e *readFileError) Unwrap() error { return e.err }

type strictError struct {
	count int
}

func (e *strictError) Error() string {
	return i18n.T(i18n.ErrStrictCheck, e.count)
}

// exitCode 根据错误类型选择退出码
func exitCode(err error) int {
	var (
		rtErr     *interp.RuntimeError
		strictErr *strictError
		cfgErr    *configError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, parser.ErrSyntax), errors.As(err, &strictErr):
		return exitDataErr
	case errors.As(err, &rtErr):
		return exitSoftware
	case errors.As(err, &cfgErr):
		return exitUsage
	default:
		return exitIOErr
	}
}

// fail 打印错误并返回对应的退出码
func fail(err error) int {
	printError(err.Error())
	return exitCode(err)
}
