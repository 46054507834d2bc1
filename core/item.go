package core

import "github.com/rushteam/shoprec/pkg/utils"

// Item 是推荐链路中的统一承载结构：分数、来源特征、解释信息。
// Features 承载各路原始/归一化分数（如 "content" / "cf"），供 Rank 节点融合；
// Reasons 是对外输出契约；Labels 用于链路观测与策略驱动。
type Item struct {
	ID       string
	Score    float64
	Product  *Product
	Features map[string]float64
	Reasons  []Reason
	Labels   map[string]utils.Label
}

func NewItem(id string) *Item {
	return &Item{
		ID:       id,
		Features: make(map[string]float64),
		Labels:   make(map[string]utils.Label),
	}
}

// AddReason 追加解释标签，自动去重，保留首次出现顺序。
func (it *Item) AddReason(r Reason) {
	for _, have := range it.Reasons {
		if have == r {
			return
		}
	}
	it.Reasons = append(it.Reasons, r)
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}
