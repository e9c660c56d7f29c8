package envar

import "log/slog"

// options 声明选项。
type options struct {
	lookup Lookup       // 环境变量查询源，默认 OSLookup
	logger *slog.Logger // 为 nil 时使用 slog.Default()
	expand bool         // 解析前是否执行 ${...} 展开
}

// Option 声明选项函数。
type Option func(*options)

// WithLookup 替换环境变量查询源，常用于测试或从其他键值存储读取。
func WithLookup(lookup Lookup) Option {
	return func(o *options) {
		if lookup != nil {
			o.lookup = lookup
		}
	}
}

// WithLogger 设置缓存刷新时输出调试日志的 logger。
//
// 日志只记录变量名与策略，不记录变量值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithExpansion 在解析前对原始值执行 Shell 参数展开。
//
// 被引用的变量从同一查询源读取；缓存以展开后的字符串作为过期判断依据，
// 因此被引用变量的变化同样会触发 OnDemand 变量重新解析。
//
// 示例：
//
//	// DSN="postgres://${DB_HOST:-localhost}:5432/app"
//	var DSN = envar.OnDemand("DSN", envar.String(), envar.Required[string](), envar.WithExpansion())
func WithExpansion() Option {
	return func(o *options) {
		o.expand = true
	}
}
