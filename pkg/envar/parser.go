package envar

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Parser 将原始字符串转换为类型 T。
//
// 实现必须是无状态、可重入的，除 raw 外不得读取任何外部输入。
// 失败时返回 [*ParseError]；返回 [ErrTryDefault] 表示改用默认策略。
type Parser[T any] interface {
	Parse(name, raw string) (T, error)
}

// ParseFunc 函数适配器，自定义类型通常直接使用它。
type ParseFunc[T any] func(name, raw string) (T, error)

// Parse 实现 [Parser]。
func (f ParseFunc[T]) Parse(name, raw string) (T, error) {
	return f(name, raw)
}

// Signed 有符号整数类型集合。
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned 无符号整数类型集合。
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating 浮点类型集合。
type Floating interface {
	~float32 | ~float64
}

var (
	trueWords  = []string{"true", "1", "yes", "y", "on", "enabled"}
	falseWords = []string{"false", "0", "no", "n", "off", "disabled"}
)

// String 原样返回字符串，不做裁剪。
func String() Parser[string] {
	return ParseFunc[string](func(_, raw string) (string, error) {
		return raw, nil
	})
}

// Bool 解析布尔值，忽略大小写与首尾空白。
//
//   - 真: true, 1, yes, y, on, enabled
//   - 假: false, 0, no, n, off, disabled
//   - 空字符串视为 false
func Bool() Parser[bool] {
	return ParseFunc[bool](parseBool)
}

func parseBool(name, raw string) (bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return false, nil
	}
	for _, word := range trueWords {
		if strings.EqualFold(word, value) {
			return true, nil
		}
	}
	for _, word := range falseWords {
		if strings.EqualFold(word, value) {
			return false, nil
		}
	}

	return false, NewParseError(name, "bool", value, func() string {
		return "expected one of " + strings.Join(trueWords, "/") + " or " + strings.Join(falseWords, "/")
	})
}

// Int 按 T 的位宽解析十进制有符号整数，溢出视为解析失败。
func Int[T Signed]() Parser[T] {
	typ := reflect.TypeFor[T]()

	return ParseFunc[T](func(name, raw string) (T, error) {
		n, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return 0, WrapParseError(name, typ.String(), raw, err)
		}

		return T(n), nil
	})
}

// Uint 按 T 的位宽解析十进制无符号整数。
func Uint[T Unsigned]() Parser[T] {
	typ := reflect.TypeFor[T]()

	return ParseFunc[T](func(name, raw string) (T, error) {
		n, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return 0, WrapParseError(name, typ.String(), raw, err)
		}

		return T(n), nil
	})
}

// Float 按 T 的位宽解析浮点数。
func Float[T Floating]() Parser[T] {
	typ := reflect.TypeFor[T]()

	return ParseFunc[T](func(name, raw string) (T, error) {
		f, err := strconv.ParseFloat(raw, typ.Bits())
		if err != nil {
			return 0, WrapParseError(name, typ.String(), raw, err)
		}

		return T(f), nil
	})
}

// Duration 使用 [time.ParseDuration] 解析，例如 "30s"、"5m"。
func Duration() Parser[time.Duration] {
	return ParseFunc[time.Duration](func(name, raw string) (time.Duration, error) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, WrapParseError(name, "time.Duration", raw, err)
		}

		return d, nil
	})
}

// Optional 包装元素解析器：裁剪后为空时交给默认策略处理，否则返回指向解析结果的指针。
//
// 适合 "设置为空字符串等同于未设置" 的变量：
//
//	var Limit = envar.OnDemand("LIMIT", envar.Optional(envar.Int[int]()), envar.WithDefault[*int](nil))
func Optional[T any](p Parser[T]) Parser[*T] {
	return ParseFunc[*T](func(name, raw string) (*T, error) {
		value := strings.TrimSpace(raw)
		if value == "" {
			return nil, ErrTryDefault
		}
		v, err := p.Parse(name, value)
		if err != nil {
			return nil, err
		}

		return &v, nil
	})
}
