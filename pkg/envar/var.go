package envar

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Strategy 刷新策略。
type Strategy int

const (
	// RefreshOnDemand 每次访问都重新读取环境变量，原始值变化时重新解析。
	RefreshOnDemand Strategy = iota
	// RefreshOnStartup 首次成功访问后缓存结果，之后不再读取环境变量。
	RefreshOnStartup
)

func (s Strategy) String() string {
	switch s {
	case RefreshOnDemand:
		return "on-demand"
	case RefreshOnStartup:
		return "on-startup"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// entry 缓存内容。
//
// key 为值来源的原始字符串；absent 为 true 表示变量缺失、值来自默认策略。
// 只保存成功的结果，从不保存错误。
type entry[T any] struct {
	populated bool
	absent    bool
	key       string
	value     T
}

// Var 类型化的环境变量声明，通常作为包级变量声明一次，可被任意 goroutine 并发访问。
//
// 构造时不做任何工作：不读环境变量，不调用默认值工厂。
//
// 缓存以原始字符串是否相等判断是否过期，而不是时间或版本号：
// 变量从 A 改为 B 再改回 A 时，若缓存仍为 A，则第三次读取直接命中。
type Var[T any] struct {
	name     string
	parser   Parser[T]
	def      DefaultFunc[T]
	strategy Strategy
	opts     options

	mu    sync.RWMutex
	cache entry[T]
}

// OnDemand 声明每次访问都检查环境变量的变量。
//
// 示例：
//
//	var Port = envar.OnDemand("PORT", envar.Int[int](), envar.WithDefault(8080))
//
//	port, err := Port.Value()
func OnDemand[T any](name string, parser Parser[T], def DefaultFunc[T], opts ...Option) *Var[T] {
	return newVar(name, parser, def, RefreshOnDemand, opts)
}

// OnStartup 声明只解析一次的变量，首次成功访问后的外部修改不再可见。
func OnStartup[T any](name string, parser Parser[T], def DefaultFunc[T], opts ...Option) *Var[T] {
	return newVar(name, parser, def, RefreshOnStartup, opts)
}

func newVar[T any](name string, parser Parser[T], def DefaultFunc[T], strategy Strategy, opts []Option) *Var[T] {
	o := options{lookup: OSLookup}
	for _, opt := range opts {
		opt(&o)
	}

	return &Var[T]{
		name:     name,
		parser:   parser,
		def:      def,
		strategy: strategy,
		opts:     o,
	}
}

// Name 返回环境变量名。
func (v *Var[T]) Name() string {
	return v.name
}

// Strategy 返回刷新策略。
func (v *Var[T]) Strategy() Strategy {
	return v.strategy
}

// Value 返回解析后的值。
//
// 失败时返回 [*NotSetError] 或 [*ParseError]，且不会修改缓存：
// 之前的有效值保留给后续访问，本次访问仍报告失败。
func (v *Var[T]) Value() (T, error) {
	if v.strategy == RefreshOnStartup {
		if cached := v.snapshot(); cached.populated {
			return cached.value, nil
		}
	}

	raw, found := v.opts.lookup.Lookup(v.name)
	if found && v.opts.expand {
		raw = expand(raw, v.opts.lookup)
	}

	cached := v.snapshot()
	if cached.populated {
		switch {
		case v.strategy == RefreshOnStartup:
			return cached.value, nil
		case !found && cached.absent:
			return cached.value, nil
		case found && !cached.absent && cached.key == raw:
			return cached.value, nil
		}
	}

	next, err := v.resolve(raw, found)
	if err != nil {
		var zero T

		return zero, err
	}

	return v.store(next), nil
}

// MustValue 调用 [Var.Value] 并在失败时 panic，适合启动阶段。
func (v *Var[T]) MustValue() T {
	value, err := v.Value()
	if err != nil {
		panic(fmt.Sprintf("envar: %v", err))
	}

	return value
}

func (v *Var[T]) snapshot() entry[T] {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.cache
}

// resolve 在不持锁的情况下解析原始值或求默认值。
func (v *Var[T]) resolve(raw string, found bool) (entry[T], error) {
	if found {
		value, err := v.parser.Parse(v.name, raw)
		if err == nil {
			return entry[T]{populated: true, key: raw, value: value}, nil
		}
		if !errors.Is(err, ErrTryDefault) {
			return entry[T]{}, err
		}
	}

	var policy Default[T]
	if v.def != nil {
		policy = v.def()
	}
	value, ok := policy.Get()
	if !ok {
		return entry[T]{}, &NotSetError{Name: v.name}
	}
	v.logger().Debug("Resolved default for environment variable", "name", v.name, "strategy", v.strategy)

	return entry[T]{populated: true, absent: !found, key: raw, value: value}, nil
}

// store 写入缓存并返回最终生效的值。
//
// OnStartup 以首个写入者为准，竞争失败的 goroutine 返回已写入的值；
// OnDemand 以最后一个写入者为准。
func (v *Var[T]) store(next entry[T]) T {
	v.mu.Lock()
	if v.strategy == RefreshOnStartup && v.cache.populated {
		value := v.cache.value
		v.mu.Unlock()

		return value
	}
	v.cache = next
	v.mu.Unlock()

	v.logger().Debug("Cached environment variable", "name", v.name, "strategy", v.strategy, "absent", next.absent)

	return next.value
}

func (v *Var[T]) logger() *slog.Logger {
	if v.opts.logger != nil {
		return v.opts.logger
	}

	return slog.Default()
}
