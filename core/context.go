package core

import "github.com/rushteam/shoprec/pkg/utils"

// RecommendContext 承载一次推荐请求的用户/场景信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	UserID string // canonical 形式；为空表示匿名请求
	Scene  string

	// SeedID 是内容路径的锚点商品 ID（可为空）。
	SeedID string

	// Query 是自由文本查询（可为空）。
	Query string

	// Seen 是用户已交互商品集合，供过滤节点使用。
	Seen map[string]struct{}

	// Labels 是请求级标签，可驱动 Pipeline 行为。
	Labels map[string]utils.Label

	// Params 请求级上下文参数。
	Params map[string]any
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
