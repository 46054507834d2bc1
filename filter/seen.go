package filter

import (
	"context"

	"github.com/rushteam/shoprec/core"
)

// SeenFilter 过滤掉请求用户已经交互过的商品。
// 已交互集合从 RecommendContext.Seen 读取（引擎在请求入口填充）。
type SeenFilter struct{}

func (f *SeenFilter) Name() string {
	return "filter.seen"
}

func (f *SeenFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil || rctx == nil || len(rctx.Seen) == 0 {
		return false, nil
	}
	_, seen := rctx.Seen[item.ID]
	return seen, nil
}

// ScoreFloorFilter 过滤掉分数不高于 Min 的候选。
// 混合层用它剔除最终得分 <= 0 的商品。
type ScoreFloorFilter struct {
	Min float64
}

func (f *ScoreFloorFilter) Name() string {
	return "filter.score_floor"
}

func (f *ScoreFloorFilter) ShouldFilter(
	_ context.Context,
	_ *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	return item.Score <= f.Min, nil
}
