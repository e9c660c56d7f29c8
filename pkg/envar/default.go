package envar

// Default 默认策略：变量缺失时返回回退值，或视为错误。
type Default[T any] struct {
	value T
	ok    bool
}

// Fallback 返回带回退值的策略。
func Fallback[T any](v T) Default[T] {
	return Default[T]{value: v, ok: true}
}

// Unset 返回 "缺失即错误" 的策略。
func Unset[T any]() Default[T] {
	return Default[T]{}
}

// Get 返回回退值；策略为 Unset 时 ok 为 false。
func (d Default[T]) Get() (T, bool) {
	return d.value, d.ok
}

// IsSet 报告策略是否带回退值。
func (d Default[T]) IsSet() bool {
	return d.ok
}

// DefaultFunc 默认策略工厂。
//
// 声明时不会调用，只在变量缺失（或解析器返回 [ErrTryDefault]）时调用。
type DefaultFunc[T any] func() Default[T]

// Required 变量必须存在。
func Required[T any]() DefaultFunc[T] {
	return Unset[T]
}

// WithDefault 变量缺失时使用 v。
func WithDefault[T any](v T) DefaultFunc[T] {
	return func() Default[T] {
		return Fallback(v)
	}
}
