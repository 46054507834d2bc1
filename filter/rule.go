package filter

import (
	"context"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pkg/dsl"
)

// RuleFilter 按 CEL 表达式过滤候选：表达式求值为 true 的商品被剔除。
//
// 示例：
//   - `item.score < 0.05`                          剔除低分长尾
//   - `"popular" in item.reasons && item.score < 0.3` 限制热门兜底的渗透
//
// 表达式编译或求值失败时保留候选（过滤器失败不放大为请求失败）。
type RuleFilter struct {
	// Expr 是 CEL 表达式，空表达式不过滤任何候选。
	Expr string
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil || f.Expr == "" {
		return false, nil
	}
	matched, err := dsl.NewEval(item, rctx).Evaluate(f.Expr)
	if err != nil {
		return false, nil
	}
	return matched, nil
}
