package recall

import (
	"context"
	"testing"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/tfidf"
)

func contentFixture() (*core.Catalog, *tfidf.Model) {
	catalog := core.NewCatalog([]*core.Product{
		{ID: "p1", Title: "Red Shoes", Categories: []string{"footwear"}, Price: 50},
		{ID: "p2", Title: "Blue Shoes", Categories: []string{"footwear"}, Price: 55},
		{ID: "p3", Title: "Laptop", Categories: []string{"electronics"}, Price: 1000},
	})
	return catalog, tfidf.Build(catalog)
}

func TestSeedSimilarExcludesSeedAndRanks(t *testing.T) {
	catalog, model := contentFixture()
	src := &SeedSimilar{Model: model, Catalog: catalog}

	items, err := src.Recall(context.Background(), &core.RecommendContext{SeedID: "p1"})
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 (full ranking minus seed)", len(items))
	}

	scores := make(map[string]float64)
	for _, it := range items {
		if it.ID == "p1" {
			t.Fatalf("seed must never appear in content candidates")
		}
		scores[it.ID] = it.Features["content"]
		if len(it.Reasons) != 1 || it.Reasons[0] != core.ReasonSimilarTo("p1") {
			t.Errorf("item %s reasons = %v", it.ID, it.Reasons)
		}
	}
	// 共享 "shoes"/"footwear" 的 p2 必须高于只共享价格小数位的 p3
	if scores["p2"] <= scores["p3"] {
		t.Errorf("p2 (%v) should outrank p3 (%v)", scores["p2"], scores["p3"])
	}
}

func TestSeedSimilarUnknownSeed(t *testing.T) {
	catalog, model := contentFixture()
	src := &SeedSimilar{Model: model, Catalog: catalog}

	items, err := src.Recall(context.Background(), &core.RecommendContext{SeedID: "ghost"})
	if err != nil || items != nil {
		t.Errorf("unknown seed: items=%v err=%v, want nil/nil", items, err)
	}
}

func TestQueryMatch(t *testing.T) {
	catalog, model := contentFixture()
	src := &QueryMatch{Model: model, Catalog: catalog}

	items, err := src.Recall(context.Background(), &core.RecommendContext{Query: "laptop"})
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	scores := make(map[string]float64)
	for _, it := range items {
		scores[it.ID] = it.Features["content"]
		if len(it.Reasons) != 1 || it.Reasons[0] != core.ReasonMatchQuery {
			t.Errorf("item %s reasons = %v", it.ID, it.Reasons)
		}
	}
	if scores["p3"] <= scores["p1"] || scores["p3"] <= scores["p2"] {
		t.Errorf("query 'laptop' should rank p3 first: %v", scores)
	}

	// 全词表外查询：相似度全为 0
	items, _ = src.Recall(context.Background(), &core.RecommendContext{Query: "xylophone"})
	for _, it := range items {
		if it.Features["content"] != 0 {
			t.Errorf("oov query: item %s score = %v, want 0", it.ID, it.Features["content"])
		}
	}
}
