package recall

import (
	"context"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pkg/utils"
	"github.com/rushteam/shoprec/pkg/vector"
	"github.com/rushteam/shoprec/tfidf"
)

// SeedSimilar 是内容召回源：以锚点商品为种子，对目录内其余每个商品
// 计算 TF-IDF 向量余弦相似度，产出全量排序候选（不截断）。
// 种子本身永远不出现在结果里。
type SeedSimilar struct {
	Model   *tfidf.Model
	Catalog *core.Catalog
}

func (r *SeedSimilar) Name() string { return "recall.seed_similar" }

func (r *SeedSimilar) Recall(
	_ context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Model == nil || rctx == nil || rctx.SeedID == "" {
		return nil, nil
	}

	seedID := core.CanonicalID(rctx.SeedID)
	seedVec, ok := r.Model.Vector(seedID)
	if !ok {
		// 未知种子：内容路径无锚点，降级为空结果
		return nil, nil
	}

	reason := core.ReasonSimilarTo(seedID)
	out := make([]*core.Item, 0, r.Catalog.Len())
	for _, id := range r.Catalog.IDs() {
		if id == seedID {
			continue
		}
		vec, ok := r.Model.Vector(id)
		if !ok {
			continue
		}
		it := core.NewItem(id)
		it.Features["content"] = vector.Cosine(seedVec, vec)
		it.AddReason(reason)
		it.PutLabel("recall_source", utils.Label{Value: "seed_similar", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}

// QueryMatch 是内容召回源：把自由文本查询用既有词表/IDF 向量化，
// 对目录内每个商品计算余弦相似度。词表外词元静默丢弃；
// 全部未命中时查询向量为全零，与一切相似度为 0。
type QueryMatch struct {
	Model   *tfidf.Model
	Catalog *core.Catalog
}

func (r *QueryMatch) Name() string { return "recall.query_match" }

func (r *QueryMatch) Recall(
	_ context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Model == nil || rctx == nil || rctx.Query == "" {
		return nil, nil
	}

	queryVec := r.Model.QueryVector(rctx.Query)

	out := make([]*core.Item, 0, r.Catalog.Len())
	for _, id := range r.Catalog.IDs() {
		vec, ok := r.Model.Vector(id)
		if !ok {
			continue
		}
		it := core.NewItem(id)
		it.Features["content"] = vector.Cosine(queryVec, vec)
		it.AddReason(core.ReasonMatchQuery)
		it.PutLabel("recall_source", utils.Label{Value: "query_match", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
