package core

import "time"

// InteractionType 是隐式行为类型。
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionCart     InteractionType = "cart"
	InteractionPurchase InteractionType = "purchase"
)

// InteractionWeight 返回行为类型对应的偏好权重。
// view=1 / cart=3 / purchase=5，未知类型按 0 处理（上游应先校验）。
func InteractionWeight(t InteractionType) float64 {
	switch t {
	case InteractionView:
		return 1
	case InteractionCart:
		return 3
	case InteractionPurchase:
		return 5
	}
	return 0
}

// Interaction 是一条 user→product 的隐式行为事件，append-only，
// 注册后不会被修改或删除。
type Interaction struct {
	UserID    string
	ProductID string
	Type      InteractionType
	Timestamp time.Time
}

// EventResult 是事件注册结果。
// Ignored=true 表示 product_id 不在目录快照中，事件被丢弃（非错误）。
type EventResult struct {
	Accepted bool
	Ignored  bool
}
