package rerank

import (
	"context"
	"strings"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pipeline"
)

// Diversity 是一个简单的多样性重排节点：限制每个类目最多出现 MaxPerCategory 个
// 候选（按商品第一个类目归组，不区分大小写），其余剔除。
// 无类目的商品不受限制。可选节点，默认不进入混合链路。
type Diversity struct {
	// MaxPerCategory 每类目最多保留数，<=0 时取 1。
	MaxPerCategory int
}

func (n *Diversity) Name() string {
	return "rerank.diversity"
}

func (n *Diversity) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Diversity) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	max := n.MaxPerCategory
	if max <= 0 {
		max = 1
	}

	counts := make(map[string]int, 32)
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}

		cate := ""
		if it.Product != nil && len(it.Product.Categories) > 0 {
			cate = strings.ToLower(it.Product.Categories[0])
		}
		if cate == "" {
			out = append(out, it)
			continue
		}
		if counts[cate] >= max {
			continue
		}
		counts[cate]++
		out = append(out, it)
	}
	return out, nil
}
