// Package tfidf 把商品目录快照构建成 TF-IDF 词向量模型。
// 模型构建后不可变；目录变化时整体重建并由上层原子替换。
package tfidf

import (
	"fmt"
	"math"
	"strings"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pkg/tokenize"
	"github.com/rushteam/shoprec/pkg/vector"
)

// Model 是不可变的 TF-IDF 模型：
//   - Vocab: 词元 → 稳定下标（首次出现顺序）
//   - IDF:   每个下标的逆文档频率权重
//   - Vectors: 商品 ID → 单位模长稠密向量（空文档为全零向量）
type Model struct {
	Vocab   map[string]int
	Terms   []string // 下标 → 词元，与 Vocab 互逆
	IDF     []float64
	Vectors map[string][]float64
}

// Document 合成商品文档：标题 + 空格连接的类目 + 两位小数价格。
// 价格进文档是刻意的：数字词元可以与查询里的数字匹配。
func Document(p *core.Product) string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteByte(' ')
	b.WriteString(strings.Join(p.Categories, " "))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%.2f", p.Price)
	return b.String()
}

// Build 对目录快照做一次全量构建。
// idf = ln((N+1)/(df+1)) + 1：平滑形式保证全量命中的词也有严格正权重；
// tf = 词元计数 / 文档词元总数；分量 = tf*idf，最后除以欧氏模长
// （模长为 0 时按 1 处理，空文档得到全零向量）。
func Build(catalog *core.Catalog) *Model {
	m := &Model{
		Vocab:   make(map[string]int),
		Vectors: make(map[string][]float64, catalog.Len()),
	}

	ids := catalog.IDs()
	docs := make([][]string, 0, len(ids))
	df := make(map[string]int)

	for _, id := range ids {
		p, _ := catalog.Get(id)
		tokens := tokenize.Tokenize(Document(p))
		docs = append(docs, tokens)

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if _, ok := m.Vocab[tok]; !ok {
				m.Vocab[tok] = len(m.Terms)
				m.Terms = append(m.Terms, tok)
			}
			if !seen[tok] {
				df[tok]++
				seen[tok] = true
			}
		}
	}

	n := float64(len(ids))
	m.IDF = make([]float64, len(m.Terms))
	for tok, idx := range m.Vocab {
		m.IDF[idx] = math.Log((n+1)/(float64(df[tok])+1)) + 1
	}

	for i, id := range ids {
		m.Vectors[id] = m.vectorize(docs[i])
	}
	return m
}

// vectorize 把词元序列转成单位模长稠密向量。
func (m *Model) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(m.Terms))
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	for tok, cnt := range counts {
		idx, ok := m.Vocab[tok]
		if !ok {
			continue // 词表外词元静默丢弃（查询路径）
		}
		vec[idx] = (cnt / total) * m.IDF[idx]
	}

	norm := vector.Norm(vec)
	if norm == 0 {
		norm = 1
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// QueryVector 用既有词表/IDF 把自由文本转成查询向量。
// 词表外词元静默丢弃；全部未命中时返回全零向量（与一切相似度为 0）。
func (m *Model) QueryVector(text string) []float64 {
	return m.vectorize(tokenize.Tokenize(text))
}

// Vector 返回商品的内容向量。
func (m *Model) Vector(productID string) ([]float64, bool) {
	v, ok := m.Vectors[core.CanonicalID(productID)]
	return v, ok
}

// VocabSize 返回词表大小。
func (m *Model) VocabSize() int { return len(m.Terms) }
