// Package shoprec 是一个电商商品混合推荐引擎（Shop Recommender）。
//
// 设计要点：
// - 内容路径：TF-IDF 词向量 + 余弦相似度（tfidf / pkg/vector）
// - 协同路径：用户隐式行为稀疏向量 + User-CF 近邻聚合（store / recall）
// - 混合层：双路归一化加权融合、类目加权、过滤与解释标签（engine / rank）
// - Pipeline-first: 排序与后处理通过 Node 串联（Rank → Filter → ReRank）
package shoprec

import "github.com/rushteam/shoprec/pipeline"

// 轻量 facade：便于用户直接 import "shoprec" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
