package store

import (
	"sync"
	"time"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pkg/vector"
)

// InteractionStore 累积 user→product 隐式行为事件，并维护派生状态：
//   - 每用户稀疏偏好向量（product_id → 累积权重，只增不减）
//   - 全局热度向量（product_id → 全体用户权重之和）
//
// 事件 append-only，不去重：重复事件持续累积权重。
// 写操作与全量扫描读（近邻、热度）用同一把 RWMutex 隔离，
// 读方不会观察到半应用的变更。
type InteractionStore struct {
	mu      sync.RWMutex
	catalog *core.Catalog
	events  []core.Interaction
	users   map[string]vector.Sparse
	pop     vector.Sparse
}

func NewInteractionStore(catalog *core.Catalog) *InteractionStore {
	return &InteractionStore{
		catalog: catalog,
		users:   make(map[string]vector.Sparse),
		pop:     make(vector.Sparse),
	}
}

// RegisterEvent 注册一条行为事件。
// user_id / product_id 先做 canonical 处理；user_id 为空、行为类型未知
// 或 product_id 不在目录中时返回 {Accepted:false, Ignored:true}，
// 不产生任何状态变更。Timestamp 为零值时补当前时间。
func (s *InteractionStore) RegisterEvent(ev core.Interaction) core.EventResult {
	ev.UserID = core.CanonicalID(ev.UserID)
	ev.ProductID = core.CanonicalID(ev.ProductID)
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	w := core.InteractionWeight(ev.Type)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.UserID == "" || w <= 0 || !s.catalog.Has(ev.ProductID) {
		return core.EventResult{Accepted: false, Ignored: true}
	}

	s.events = append(s.events, ev)
	vec, ok := s.users[ev.UserID]
	if !ok {
		vec = make(vector.Sparse)
		s.users[ev.UserID] = vec
	}
	vec.Add(ev.ProductID, w)
	s.pop.Add(ev.ProductID, w)

	return core.EventResult{Accepted: true}
}

// SetCatalog 在目录重建后替换校验用的快照。
// 已累积的事件与向量保持不变（可能引用已下架商品，由读取侧跳过）。
func (s *InteractionStore) SetCatalog(catalog *core.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
}

// UserVector 返回用户偏好向量的拷贝；用户不存在时返回 (nil, false)。
func (s *InteractionStore) UserVector(userID string) (vector.Sparse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vec, ok := s.users[core.CanonicalID(userID)]
	if !ok || len(vec) == 0 {
		return nil, false
	}
	return vec.Clone(), true
}

// AllUserVectors 返回全体用户偏好向量的快照拷贝，供近邻扫描使用。
func (s *InteractionStore) AllUserVectors() map[string]vector.Sparse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]vector.Sparse, len(s.users))
	for id, vec := range s.users {
		out[id] = vec.Clone()
	}
	return out
}

// Popularity 返回全局热度向量的拷贝：每个商品的全体用户权重之和。
func (s *InteractionStore) Popularity() vector.Sparse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pop.Clone()
}

// Seen 返回用户已交互商品集合。
func (s *InteractionStore) Seen(userID string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vec, ok := s.users[core.CanonicalID(userID)]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(vec))
	for pid := range vec {
		seen[pid] = struct{}{}
	}
	return seen
}

// EventCount 返回累积事件数。
func (s *InteractionStore) EventCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
