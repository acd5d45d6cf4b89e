package interp

// Environment 词法作用域，除全局作用域外都有唯一的父作用域
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment 创建作用域，parent 为 nil 时即全局作用域
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Define 在当前作用域绑定名字，已存在时覆盖
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get 沿父链查找名字
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign 覆盖最近一个包含该名字的作用域中的绑定；找不到时返回 false
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return true
		}
	}
	return false
}
