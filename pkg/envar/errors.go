package envar

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotSet 变量不存在且没有默认值。
	ErrNotSet = errors.New("environment variable is not set")
	// ErrParse 变量存在但无法转换为目标类型。
	ErrParse = errors.New("environment variable cannot be parsed")
	// ErrTryDefault 由解析器返回，表示值虽然存在但应按默认值处理（例如空字符串）。
	ErrTryDefault = errors.New("environment variable should fall back to default")
)

// NotSetError 变量缺失且默认策略为 [Unset]。
type NotSetError struct {
	Name string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Name)
}

// Is 使 errors.Is(err, ErrNotSet) 成立。
func (e *NotSetError) Is(target error) bool {
	return target == ErrNotSet
}

// ParseError 原始字符串转换失败。
//
// Reason 按需格式化：只判断错误类型的调用方不会付出格式化开销。
type ParseError struct {
	VarName  string
	TypeName string
	Value    string

	cause  error
	reason func() string
	once   sync.Once
	text   string
}

// NewParseError 构造解析错误，reason 在首次调用 [ParseError.Reason] 时才执行。
func NewParseError(varName, typeName, value string, reason func() string) *ParseError {
	return &ParseError{
		VarName:  varName,
		TypeName: typeName,
		Value:    value,
		reason:   reason,
	}
}

// WrapParseError 以底层错误作为原因构造解析错误。
func WrapParseError(varName, typeName, value string, cause error) *ParseError {
	e := NewParseError(varName, typeName, value, cause.Error)
	e.cause = cause

	return e
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse environment variable %s (value = %q) as %s", e.VarName, e.Value, e.TypeName)
}

// Reason 返回可读的失败原因，只格式化一次。
func (e *ParseError) Reason() string {
	e.once.Do(func() {
		if e.reason != nil {
			e.text = e.reason()
		}
	})

	return e.text
}

// Is 使 errors.Is(err, ErrParse) 成立。
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.cause
}
