// Package rank 提供融合打分节点：把多路召回的归一化分数线性加权为最终分数。
package rank

import (
	"context"
	"sort"
	"strings"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pipeline"
	"github.com/rushteam/shoprec/pkg/utils"
)

// BlendNode 是双路融合排序节点。本质是一个两特征线性模型：
//
//	score = Alpha*features["content"] + (1-Alpha)*features["cf"]
//
// 缺失的特征按 0 处理。若 Beta > 0 且命中偏置类目（不区分大小写），
// 额外加 Beta，封顶 1，并打上 bias_category 解释标签。
// 输出按分数降序，同分按商品 ID 字典序升序，保证确定性。
type BlendNode struct {
	// Alpha 是内容路径权重，[0,1]；协同路径权重为 1-Alpha。
	Alpha float64

	// Beta 是类目偏置增量，[0,1]。
	Beta float64

	// BiasCategories 是偏置类目集合（原始大小写均可）。
	BiasCategories []string
}

func (n *BlendNode) Name() string        { return "rank.blend" }
func (n *BlendNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *BlendNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	bias := make(map[string]struct{}, len(n.BiasCategories))
	for _, c := range n.BiasCategories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			bias[c] = struct{}{}
		}
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		score := n.Alpha*it.Features["content"] + (1-n.Alpha)*it.Features["cf"]

		if n.Beta > 0 && len(bias) > 0 && it.Product.HasCategory(bias) {
			score += n.Beta
			if score > 1 {
				score = 1
			}
			it.AddReason(core.ReasonBiasCategory)
			it.PutLabel("bias", utils.Label{Value: "category", Source: "rank"})
		}

		it.Score = score
		it.PutLabel("rank_model", utils.Label{Value: "blend", Source: "rank"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i] == nil {
			return false
		}
		if items[j] == nil {
			return true
		}
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}
