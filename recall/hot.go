package recall

import (
	"context"
	"sort"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pkg/utils"
	"github.com/rushteam/shoprec/store"
)

// Hot 是热门召回源，按全局热度（行为权重之和）降序产出候选。
// - 如果配置了 KeyValueStore，优先从有序集合读取（引擎可定期 SyncPopularity 导出）
// - 否则直接扫描 InteractionStore 的热度向量
// Hot 产出的候选统一以 popular 标记来源。
type Hot struct {
	Store core.KeyValueStore // 可选
	Key   string             // 存储 key，例如 "hot:items"

	Interactions *store.InteractionStore

	// TopN 限制产出数量，<=0 表示不限。
	TopN int
}

func (r *Hot) Name() string { return "recall.hot" }

func (r *Hot) Recall(
	ctx context.Context,
	_ *core.RecommendContext,
) ([]*core.Item, error) {
	out := r.fromStore(ctx)
	if out == nil {
		out = r.fromInteractions()
	}
	if r.TopN > 0 && len(out) > r.TopN {
		out = out[:r.TopN]
	}
	for _, it := range out {
		it.AddReason(core.ReasonPopular)
		it.PutLabel("recall_source", utils.Label{Value: "hot", Source: "recall"})
	}
	return out, nil
}

func (r *Hot) fromStore(ctx context.Context) []*core.Item {
	if r.Store == nil || r.Key == "" {
		return nil
	}
	stop := int64(99)
	if r.TopN > 0 {
		stop = int64(r.TopN) - 1
	}
	members, err := r.Store.ZRange(ctx, r.Key, 0, stop)
	if err != nil || len(members) == 0 {
		return nil
	}
	out := make([]*core.Item, 0, len(members))
	for _, m := range members {
		it := core.NewItem(m)
		if score, err := r.Store.ZScore(ctx, r.Key, m); err == nil {
			it.Features["cf"] = score
			it.Score = score
		}
		out = append(out, it)
	}
	return out
}

func (r *Hot) fromInteractions() []*core.Item {
	if r.Interactions == nil {
		return nil
	}
	pop := r.Interactions.Popularity()
	out := make([]*core.Item, 0, len(pop))
	for pid, score := range pop {
		it := core.NewItem(pid)
		it.Features["cf"] = score
		it.Score = score
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}
