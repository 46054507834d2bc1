// Package engine 是 shoprec 的组合根：持有目录快照、TF-IDF 模型与行为存储，
// 把内容路径、协同路径和混合链路封装为少量同步入口。
// 生命周期（构建、可选重建、关闭）由本包的 Engine 对象显式承载，
// 不依赖任何进程级全局状态。
package engine

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/filter"
	"github.com/rushteam/shoprec/pipeline"
	"github.com/rushteam/shoprec/pkg/vector"
	"github.com/rushteam/shoprec/rank"
	"github.com/rushteam/shoprec/recall"
	"github.com/rushteam/shoprec/rerank"
	"github.com/rushteam/shoprec/store"
	"github.com/rushteam/shoprec/tfidf"
)

// Engine 是长生命周期的推荐引擎实例。
// 目录与模型构建后只读；Rebuild 整体重建并原子替换，旧快照在替换完成前
// 继续服务读请求。行为存储是唯一的可变共享状态，内部自带锁。
type Engine struct {
	mu      sync.RWMutex // 保护 catalog/model 的原子替换
	catalog *core.Catalog
	model   *tfidf.Model

	interactions *store.InteractionStore

	neighborK int
	kv        core.KeyValueStore
	hotKey    string
	ruleExpr  string
	diversity int
}

// New 从商品快照构建引擎：目录索引、TF-IDF 模型、空的行为存储。
func New(products []*core.Product, opts ...Option) *Engine {
	catalog := core.NewCatalog(products)
	e := &Engine{
		catalog:      catalog,
		model:        tfidf.Build(catalog),
		interactions: store.NewInteractionStore(catalog),
		neighborK:    recall.DefaultTopKNeighbors,
		hotKey:       "hot:items",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rebuild 用新的商品快照全量重建目录与模型，并原子替换。
// 没有增量路径：目录变化必须整体重算。行为历史保持不变。
func (e *Engine) Rebuild(products []*core.Product) {
	catalog := core.NewCatalog(products)
	model := tfidf.Build(catalog)

	e.mu.Lock()
	e.catalog = catalog
	e.model = model
	e.mu.Unlock()

	e.interactions.SetCatalog(catalog)
}

// snapshot 返回当前目录与模型的一致视图。
func (e *Engine) snapshot() (*core.Catalog, *tfidf.Model) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog, e.model
}

// RegisterEvent 注册一条隐式行为事件，见 store.InteractionStore.RegisterEvent。
func (e *Engine) RegisterEvent(ev core.Interaction) core.EventResult {
	return e.interactions.RegisterEvent(ev)
}

// TopKNeighbors 返回目标用户的 TopK 近邻（相似度降序，同分按 ID 升序）。
func (e *Engine) TopKNeighbors(userID string, k int) []recall.Neighbor {
	cf := &recall.UserCF{Interactions: e.interactions, TopK: e.neighborK}
	return cf.Neighbors(userID, k)
}

// CFScoresForUser 返回协同路径的候选分数表（四位小数）。
// personal=false 表示用户无个人向量或近邻聚合为空，走了全局热度兜底。
func (e *Engine) CFScoresForUser(userID string) (scores vector.Sparse, personal bool) {
	cf := &recall.UserCF{Interactions: e.interactions, TopK: e.neighborK}
	raw, personal := cf.Scores(userID)
	out := make(vector.Sparse, len(raw))
	for pid, s := range raw {
		out[pid] = round4(s)
	}
	return out, personal
}

// RecommendByProduct 是纯内容入口：返回与种子商品最相似的 limit 个商品。
// 种子永远不在输出中；未知种子返回空结果。
func (e *Engine) RecommendByProduct(seedID string, limit int) []*core.Item {
	catalog, model := e.snapshot()
	rctx := &core.RecommendContext{SeedID: core.CanonicalID(seedID)}
	src := &recall.SeedSimilar{Model: model, Catalog: catalog}
	items, _ := src.Recall(context.Background(), rctx)
	return e.finishContent(catalog, items, limit)
}

// RecommendByQuery 是纯内容入口：返回与自由文本查询最相似的 limit 个商品。
// 词表外词元静默丢弃；全部未命中时所有相似度为 0，结果为空。
func (e *Engine) RecommendByQuery(query string, limit int) []*core.Item {
	catalog, model := e.snapshot()
	rctx := &core.RecommendContext{Query: query}
	src := &recall.QueryMatch{Model: model, Catalog: catalog}
	items, _ := src.Recall(context.Background(), rctx)
	return e.finishContent(catalog, items, limit)
}

// finishContent 完成纯内容入口的排序/截断/取整。
func (e *Engine) finishContent(catalog *core.Catalog, items []*core.Item, limit int) []*core.Item {
	out := make([]*core.Item, 0, len(items))
	for _, it := range items {
		score := it.Features["content"]
		if score <= 0 {
			continue
		}
		p, ok := catalog.Get(it.ID)
		if !ok {
			continue
		}
		it.Product = p
		it.Score = round4(score)
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	limit = clampLimit(limit)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Recommend 是混合入口：内容路径与协同路径并发召回，各自归一化后
// 按 Alpha 线性融合，经类目偏置、过滤、截断产出最终列表。
func (e *Engine) Recommend(ctx context.Context, req Request) ([]*core.Item, error) {
	opts := DefaultOptions().normalized()
	if req.Opts != nil {
		opts = req.Opts.normalized()
	}

	catalog, model := e.snapshot()
	userID := core.CanonicalID(req.UserID)

	rctx := &core.RecommendContext{
		UserID: userID,
		SeedID: core.CanonicalID(req.SeedID),
		Query:  strings.TrimSpace(req.Query),
	}
	if userID != "" {
		rctx.Seen = e.interactions.Seen(userID)
	}

	sources := make([]recall.Source, 0, 3)
	if rctx.SeedID != "" {
		sources = append(sources, &recall.SeedSimilar{Model: model, Catalog: catalog})
	}
	if rctx.Query != "" {
		sources = append(sources, &recall.QueryMatch{Model: model, Catalog: catalog})
	}
	if userID != "" {
		sources = append(sources, &recall.UserCF{Interactions: e.interactions, TopK: e.neighborK})
	}

	fan := &recall.Fanout{Sources: sources, Dedup: true}
	items, err := fan.Process(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}

	normalizeFeature(items, "content", core.ReasonMatchQuery)
	normalizeFeature(items, "cf", core.ReasonNeighbors, core.ReasonPopular)

	// 挂载商品记录；目录重建后可能残留的陈旧候选在此跳过
	kept := items[:0]
	for _, it := range items {
		if p, ok := catalog.Get(it.ID); ok {
			it.Product = p
			kept = append(kept, it)
		}
	}
	items = kept

	post, err := e.postPipeline(rctx, opts)
	if err != nil {
		return nil, err
	}
	items, err = post.Run(ctx, rctx, items)
	if err != nil {
		return nil, err
	}

	// 冷启动兜底：有用户但结果为空时退回全局热度榜。
	// ExcludeSeen 对兜底同样生效：已交互商品绝不因兜底重新出现
	if len(items) == 0 && userID != "" {
		var seen map[string]struct{}
		if opts.ExcludeSeen {
			seen = rctx.Seen
		}
		items = e.popularityFallback(catalog, seen, opts.Limit)
	}

	for _, it := range items {
		it.Score = round4(it.Score)
	}
	return items, nil
}

// postPipeline 组装混合链路的后处理管线：融合排序 → 过滤 → 重排截断。
func (e *Engine) postPipeline(rctx *core.RecommendContext, opts Options) (*pipeline.Pipeline, error) {
	filters := make([]filter.Filter, 0, 4)
	if opts.ExcludeSeed && rctx.SeedID != "" {
		filters = append(filters, &filter.BlacklistFilter{ItemIDs: []string{rctx.SeedID}})
	}
	if opts.ExcludeSeen {
		filters = append(filters, &filter.SeenFilter{})
	}
	filters = append(filters, &filter.ScoreFloorFilter{Min: 0})
	if e.ruleExpr != "" {
		filters = append(filters, &filter.RuleFilter{Expr: e.ruleExpr})
	}

	nodes := []pipeline.Node{
		&rank.BlendNode{
			Alpha:          opts.Alpha,
			Beta:           opts.Beta,
			BiasCategories: opts.BiasCategories,
		},
		&filter.FilterNode{Filters: filters},
	}
	if e.diversity > 0 {
		nodes = append(nodes, &rerank.Diversity{MaxPerCategory: e.diversity})
	}
	nodes = append(nodes, &rerank.TopNNode{N: opts.Limit})

	return &pipeline.Pipeline{Nodes: nodes}, nil
}

// popularityFallback 构造全局热度榜候选（原始权重，popular 标记），
// 跳过 seen 集合中的商品。
func (e *Engine) popularityFallback(catalog *core.Catalog, seen map[string]struct{}, limit int) []*core.Item {
	pop := e.interactions.Popularity()
	out := make([]*core.Item, 0, len(pop))
	for pid, score := range pop {
		if _, ok := seen[pid]; ok {
			continue
		}
		p, ok := catalog.Get(pid)
		if !ok {
			continue
		}
		it := core.NewItem(pid)
		it.Product = p
		it.Score = score
		it.AddReason(core.ReasonPopular)
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SyncPopularity 把全局热度榜导出到挂载的 KV 有序集合，
// 供外部消费方（或 recall.Hot）按分数读取。未挂载 KV 时为空操作。
func (e *Engine) SyncPopularity(ctx context.Context) error {
	if e.kv == nil {
		return nil
	}
	for pid, score := range e.interactions.Popularity() {
		if err := e.kv.ZAdd(ctx, e.hotKey, score, pid); err != nil {
			return err
		}
	}
	return nil
}

// normalizeFeature 把一路特征整体缩放到最大值为 1。
// 最大值 <= 0 时该路"清空"：特征移除、对应的解释标签一并剥离。
func normalizeFeature(items []*core.Item, key string, reasons ...core.Reason) {
	var max float64
	for _, it := range items {
		if v, ok := it.Features[key]; ok && v > max {
			max = v
		}
	}
	if max <= 0 {
		for _, it := range items {
			if _, ok := it.Features[key]; !ok {
				continue
			}
			delete(it.Features, key)
			stripReasons(it, key, reasons)
		}
		return
	}
	for _, it := range items {
		if v, ok := it.Features[key]; ok {
			it.Features[key] = v / max
		}
	}
}

// stripReasons 移除一路清空后遗留的解释标签。
func stripReasons(it *core.Item, key string, reasons []core.Reason) {
	kept := it.Reasons[:0]
	for _, r := range it.Reasons {
		drop := false
		for _, rm := range reasons {
			if r == rm {
				drop = true
				break
			}
		}
		if key == "content" && strings.HasPrefix(string(r), "similar_to:") {
			drop = true
		}
		if !drop {
			kept = append(kept, r)
		}
	}
	it.Reasons = kept
}

// round4 四舍五入到四位小数：所有出口分数统一取整，保证展示稳定。
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// clampLimit 把返回条数收敛到 [1,50]，未设置时取默认 5。
func clampLimit(limit int) int {
	if limit == 0 {
		return 5
	}
	if limit < 1 {
		return 1
	}
	if limit > 50 {
		return 50
	}
	return limit
}
