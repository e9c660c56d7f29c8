// Package envar 提供类型化、带缓存的环境变量访问。
//
// 每个变量只声明一次（名称、类型、默认策略、刷新策略），
// 之后统一通过 Value() 访问，返回解析后的值或结构化错误，从不返回原始字符串。
//
// # 快速开始
//
//	var (
//	    Port    = envar.OnDemand("PORT", envar.Int[int](), envar.WithDefault(8080))
//	    Debug   = envar.OnStartup("DEBUG", envar.Bool(), envar.WithDefault(false))
//	    Brokers = envar.OnDemand("BROKERS", envar.ListOf(envar.CommaList, envar.String()), envar.Required[envar.List[string]]())
//	)
//
//	port, err := Port.Value()
//
// # 刷新策略
//
//   - [RefreshOnDemand] - 每次访问读取环境变量；原始字符串未变化时直接返回缓存，变化时重新解析
//   - [RefreshOnStartup] - 首次成功访问后缓存结果，之后的外部修改不可见
//
// # 默认策略
//
//   - [WithDefault] - 变量缺失时调用工厂得到回退值，并以 "缺失" 为键缓存，重复缺失不会再次调用工厂
//   - [Required] - 变量缺失时返回 [*NotSetError]，不产生任何缓存
//
// # 错误
//
// 只有两类错误：[*NotSetError]（可用 errors.Is(err, ErrNotSet) 判断）
// 与 [*ParseError]（errors.Is(err, ErrParse)）。
// 失败不会修改缓存，一次错误读取不会污染之前的有效值。
// [ParseError.Reason] 按需格式化。
//
// # 自定义类型
//
// 实现 [Parser] 或使用 [ParseFunc]：
//
//	type Level int
//
//	var LevelParser = envar.ParseFunc[Level](func(name, raw string) (Level, error) {
//	    for _, c := range raw {
//	        if c != 'v' {
//	            return 0, envar.NewParseError(name, "Level", raw, func() string {
//	                return fmt.Sprintf("invalid character: %c", c)
//	            })
//	        }
//	    }
//	    return Level(len(raw)), nil
//	})
//
// # 列表
//
// [ListOf] 按 [ListPolicy] 拆分、过滤后逐个解析元素，保持原始顺序：
//
//	"a,,b, ,c" + CommaList               → [a b c]
//	"a,,b, ,c" + ListPolicy{Sep: ","}    → [a  b   c]（共 5 个元素）
//
// # 并发
//
// 声明可被任意 goroutine 并发访问，无需外部加锁。
// 内部锁只在读写缓存时持有，不跨越环境变量读取与解析；
// 竞争时可能出现重复解析，但缓存最终一致地收敛到某个计算结果。
package envar
