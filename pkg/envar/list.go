package envar

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// ListPolicy 描述如何把原始字符串拆分为元素。
type ListPolicy struct {
	// Sep 分隔符，为空时使用 ","。
	Sep string
	// FilterEmpty 丢弃空元素（启用 FilterWhitespace 时按裁剪后的结果判断）。
	FilterEmpty bool
	// FilterWhitespace 裁剪每个元素的首尾空白，并丢弃仅含空白的元素。
	FilterWhitespace bool
}

// CommaList 逗号分隔，丢弃空元素与空白元素。
var CommaList = ListPolicy{Sep: ",", FilterEmpty: true, FilterWhitespace: true}

func (p ListPolicy) sep() string {
	if p.Sep == "" {
		return ","
	}

	return p.Sep
}

// Split 按策略拆分并过滤，保持原始顺序。
func (p ListPolicy) Split(raw string) []string {
	parts := strings.Split(raw, p.sep())
	out := parts[:0]
	for _, part := range parts {
		if p.FilterWhitespace {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" && part != "" {
				continue
			}
			part = trimmed
		}
		if p.FilterEmpty && part == "" {
			continue
		}
		out = append(out, part)
	}

	return out
}

// List 解析后的有序只读序列。
type List[T any] struct {
	items []T
	sep   string
}

// Len 返回元素个数。
func (l List[T]) Len() int {
	return len(l.items)
}

// At 返回第 i 个元素，越界时 panic。
func (l List[T]) At(i int) T {
	return l.items[i]
}

// All 按顺序遍历下标与元素。
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values 按顺序遍历元素。
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice 返回元素副本。
func (l List[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)

	return out
}

// String 以原分隔符拼接各元素。
func (l List[T]) String() string {
	var sb strings.Builder
	for i, v := range l.items {
		if i > 0 {
			sb.WriteString(l.sep)
		}
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}

// MarshalJSON 编码为 JSON 数组。
func (l List[T]) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(l.items)
}

// ListOf 返回列表解析器：按 policy 拆分后逐个交给 elem 解析，遇到首个失败即返回该元素的错误。
func ListOf[T any](policy ListPolicy, elem Parser[T]) Parser[List[T]] {
	return ParseFunc[List[T]](func(name, raw string) (List[T], error) {
		parts := policy.Split(raw)
		items := make([]T, 0, len(parts))
		for _, part := range parts {
			v, err := elem.Parse(name, part)
			if err != nil {
				return List[T]{}, err
			}
			items = append(items, v)
		}

		return List[T]{items: items, sep: policy.sep()}, nil
	})
}
