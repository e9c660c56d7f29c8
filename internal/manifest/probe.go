package manifest

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/lwmacct/251207-go-pkg-envar/pkg/envar"
)

// Probe 由清单条目生成的变量声明，屏蔽具体类型。
type Probe interface {
	Name() string
	Type() string
	Strategy() envar.Strategy
	Value() (any, error)
}

type probe[T any] struct {
	v   *envar.Var[T]
	typ string
}

func (p *probe[T]) Name() string             { return p.v.Name() }
func (p *probe[T]) Type() string             { return p.typ }
func (p *probe[T]) Strategy() envar.Strategy { return p.v.Strategy() }

func (p *probe[T]) Value() (any, error) {
	value, err := p.v.Value()
	if err != nil {
		return nil, err
	}

	return value, nil
}

type binder func(e Entry, opts []envar.Option) (Probe, error)

var binders = map[string]binder{
	"string":   bindWith(envar.String()),
	"bool":     bindWith(envar.Bool()),
	"int":      bindWith(envar.Int[int]()),
	"int32":    bindWith(envar.Int[int32]()),
	"int64":    bindWith(envar.Int[int64]()),
	"uint":     bindWith(envar.Uint[uint]()),
	"uint16":   bindWith(envar.Uint[uint16]()),
	"uint64":   bindWith(envar.Uint[uint64]()),
	"float":    bindWith(envar.Float[float64]()),
	"float32":  bindWith(envar.Float[float32]()),
	"float64":  bindWith(envar.Float[float64]()),
	"duration": bindWith(envar.Duration()),
}

// Types 返回支持的类型名称（已排序）。
func Types() []string {
	return slices.Sorted(maps.Keys(binders))
}

func typeKey(typ string) string {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		return "string"
	}

	return typ
}

// Bind 为单个条目创建声明。
func Bind(e Entry, opts ...envar.Option) (Probe, error) {
	bind, ok := binders[typeKey(e.Type)]
	if !ok {
		return nil, fmt.Errorf("%s: unknown type %q", e.Name, e.Type)
	}
	if e.Expand {
		opts = append(slices.Clip(opts), envar.WithExpansion())
	}

	return bind(e, opts)
}

// Build 为清单中的每个条目创建声明，顺序与清单一致。
func (m *Manifest) Build(opts ...envar.Option) ([]Probe, error) {
	probes := make([]Probe, 0, len(m.Variables))
	var errs []error
	for _, e := range m.Variables {
		p, err := Bind(e, opts...)
		if err != nil {
			errs = append(errs, err)

			continue
		}
		probes = append(probes, p)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return probes, nil
}

func bindWith[T any](elem envar.Parser[T]) binder {
	return func(e Entry, opts []envar.Option) (Probe, error) {
		if e.List != nil {
			return declare(e, envar.ListOf(e.List.Policy(), elem), opts)
		}

		return declare(e, elem, opts)
	}
}

// declare 创建声明；默认值字符串用同一解析器提前校验，工厂只返回校验后的结果。
func declare[T any](e Entry, parser envar.Parser[T], opts []envar.Option) (Probe, error) {
	strategy, err := ParseStrategy(e.Refresh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}

	def := envar.Required[T]()
	if e.Default != nil {
		fallback, err := parser.Parse(e.Name, *e.Default)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid default: %w", e.Name, err)
		}
		def = envar.WithDefault(fallback)
	}

	typ := typeKey(e.Type)
	if e.List != nil {
		typ = "[]" + typ
	}

	var v *envar.Var[T]
	if strategy == envar.RefreshOnStartup {
		v = envar.OnStartup(e.Name, parser, def, opts...)
	} else {
		v = envar.OnDemand(e.Name, parser, def, opts...)
	}

	return &probe[T]{v: v, typ: typ}, nil
}
