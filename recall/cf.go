package recall

import (
	"context"
	"sort"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pkg/utils"
	"github.com/rushteam/shoprec/pkg/vector"
	"github.com/rushteam/shoprec/store"
)

// Neighbor 是一个近邻用户及其与目标用户的相似度。
type Neighbor struct {
	UserID     string
	Similarity float64
}

// UserCF 是基于用户的协同过滤召回源（User-based CF, u2i）。
//
// 算法流程：
//  1. 用户 → 隐式行为稀疏向量（view/cart/purchase 加权累积）
//  2. 稀疏余弦计算用户相似度，只保留严格正相似度，排除自身
//  3. 取 TopK 近邻（默认 30）
//  4. 对近邻向量中、目标用户未交互过的商品，累加 相似度×近邻权重
//
// 冷启动：目标用户无向量、或聚合后候选为空时，回退到全局热度榜
// （商品全体用户权重之和降序），并以 popular 标记来源。
type UserCF struct {
	Interactions *store.InteractionStore

	// TopK 近邻数，<=0 时取默认值 30。
	TopK int
}

// DefaultTopKNeighbors 是近邻数默认值。
const DefaultTopKNeighbors = 30

func (r *UserCF) Name() string { return "recall.cf" }

// Neighbors 返回目标用户的 TopK 近邻：
// 只保留严格正相似度，按相似度降序；同分按用户 ID 字典序升序，
// 对固定的行为历史结果确定。自身永远被排除。
func (r *UserCF) Neighbors(userID string, k int) []Neighbor {
	userID = core.CanonicalID(userID)
	if k <= 0 {
		k = r.TopK
	}
	if k <= 0 {
		k = DefaultTopKNeighbors
	}

	all := r.Interactions.AllUserVectors()
	target, ok := all[userID]
	if !ok || len(target) == 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(all))
	for id, vec := range all {
		if id == userID {
			continue
		}
		sim := vector.CosineSparse(target, vec)
		if sim > 0 {
			neighbors = append(neighbors, Neighbor{UserID: id, Similarity: sim})
		}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].UserID < neighbors[j].UserID
	})
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// Scores 返回目标用户的候选分数表。
// personal=true 表示走了近邻聚合；false 表示回退到了全局热度榜。
// 近邻路径绝不返回用户已交互过的商品。
func (r *UserCF) Scores(userID string) (scores vector.Sparse, personal bool) {
	userID = core.CanonicalID(userID)

	target, ok := r.Interactions.UserVector(userID)
	if !ok {
		return r.Interactions.Popularity(), false
	}

	all := r.Interactions.AllUserVectors()
	candidates := make(vector.Sparse)
	for _, nb := range r.Neighbors(userID, r.TopK) {
		vec := all[nb.UserID]
		for pid, w := range vec {
			if _, seen := target[pid]; seen {
				continue
			}
			candidates.Add(pid, nb.Similarity*w)
		}
	}

	if len(candidates) == 0 {
		return r.Interactions.Popularity(), false
	}
	return candidates, true
}

// Recall 实现 Source 接口：把候选分数表封装为 Item 列表，
// 以 neighbors / popular 标记来源。
func (r *UserCF) Recall(
	_ context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Interactions == nil || rctx == nil || rctx.UserID == "" {
		return nil, nil
	}

	scores, personal := r.Scores(rctx.UserID)
	reason := core.ReasonNeighbors
	source := "neighbors"
	if !personal {
		reason = core.ReasonPopular
		source = "popular"
	}

	out := make([]*core.Item, 0, len(scores))
	for pid, score := range scores {
		it := core.NewItem(pid)
		it.Features["cf"] = score
		it.AddReason(reason)
		it.PutLabel("recall_source", utils.Label{Value: source, Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
