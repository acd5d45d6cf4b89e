package interp

import (
	"errors"
	"time"

	"github.com/tangzhangming/tulox/internal/i18n"
)

// NativeNames 由 InstallNatives 定义的全局名字
var NativeNames = []string{"clock", "assert"}

// InstallNatives 在 env 中定义内置函数
func InstallNatives(env *Environment) {
	env.Define("clock", &Native{
		Name: "clock",
		Argc: 0,
		Fn: func(args []Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	})
	env.Define("assert", &Native{
		Name: "assert",
		Argc: 1,
		Fn: func(args []Value) (Value, error) {
			if !IsTruthy(args[0]) {
				return nil, errors.New(i18n.T(i18n.RtAssertion))
			}
			return Nil{}, nil
		},
	})
}
