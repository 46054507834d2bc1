package engine

import "github.com/rushteam/shoprec/core"

// Options 是混合推荐的完整配置面，所有项显式枚举并带默认值，
// 在请求入口一次性校验/收敛，算法内部不再做隐式兜底。
type Options struct {
	// Alpha 是内容路径权重，[0,1]；协同路径权重为 1-Alpha。默认 0.5。
	Alpha float64

	// Beta 是类目偏置增量，[0,1]。默认 0（不偏置）。
	Beta float64

	// Limit 是返回条数，收敛到 [1,50]。默认 5。
	Limit int

	// BiasCategories 是偏置类目集合。默认空。
	BiasCategories []string

	// ExcludeSeen 剔除请求用户已交互过的商品。默认 true。
	ExcludeSeen bool

	// ExcludeSeed 剔除种子商品本身。默认 true。
	ExcludeSeed bool
}

// DefaultOptions 返回默认配置。调用方应在此基础上修改，
// 而不是从零值 Options 出发（零值的 Alpha/Limit 会被收敛规则改写）。
func DefaultOptions() *Options {
	return &Options{
		Alpha:       0.5,
		Beta:        0,
		Limit:       5,
		ExcludeSeen: true,
		ExcludeSeed: true,
	}
}

// normalized 返回收敛后的配置拷贝：Alpha/Beta 收敛到 [0,1]，
// Limit 收敛到 [1,50]（未设置时取默认 5）。
func (o *Options) normalized() Options {
	out := *o
	if out.Alpha < 0 {
		out.Alpha = 0
	} else if out.Alpha > 1 {
		out.Alpha = 1
	}
	if out.Beta < 0 {
		out.Beta = 0
	} else if out.Beta > 1 {
		out.Beta = 1
	}
	if out.Limit == 0 {
		out.Limit = 5
	}
	if out.Limit < 1 {
		out.Limit = 1
	} else if out.Limit > 50 {
		out.Limit = 50
	}
	return out
}

// Request 是一次混合推荐请求。三个信号全部可选：
// SeedID 驱动 similar_to 内容路径，Query 驱动 match_query 内容路径，
// UserID 驱动协同路径。Opts 为 nil 时使用 DefaultOptions。
type Request struct {
	SeedID string
	Query  string
	UserID string
	Opts   *Options
}

// Option 是引擎级功能开关。
type Option func(*Engine)

// WithNeighborK 设置协同路径的近邻数（默认 30）。
func WithNeighborK(k int) Option {
	return func(e *Engine) {
		if k > 0 {
			e.neighborK = k
		}
	}
}

// WithKeyValueStore 挂载 KV 存储与热门榜 key，
// SyncPopularity 会把全局热度导出到该有序集合供外部消费。
func WithKeyValueStore(kv core.KeyValueStore, key string) Option {
	return func(e *Engine) {
		e.kv = kv
		e.hotKey = key
	}
}

// WithRule 挂载 CEL 规则过滤表达式，命中的候选在混合链路中被剔除。
func WithRule(expr string) Option {
	return func(e *Engine) {
		e.ruleExpr = expr
	}
}

// WithDiversity 启用类目多样性重排：每个类目最多保留 maxPerCategory 个候选。
func WithDiversity(maxPerCategory int) Option {
	return func(e *Engine) {
		e.diversity = maxPerCategory
	}
}
