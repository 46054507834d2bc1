package recall

import (
	"context"
	"testing"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/store"
)

type staticSource struct {
	name  string
	items func() []*core.Item
}

func (s *staticSource) Name() string { return s.name }
func (s *staticSource) Recall(_ context.Context, _ *core.RecommendContext) ([]*core.Item, error) {
	return s.items(), nil
}

func TestFanoutMergeFirstMaxFeatures(t *testing.T) {
	a := &staticSource{name: "a", items: func() []*core.Item {
		it := core.NewItem("p1")
		it.Features["content"] = 0.3
		it.AddReason(core.ReasonSimilarTo("seed"))
		return []*core.Item{it}
	}}
	b := &staticSource{name: "b", items: func() []*core.Item {
		it := core.NewItem("p1")
		it.Features["content"] = 0.8
		it.AddReason(core.ReasonMatchQuery)
		it2 := core.NewItem("p2")
		it2.Features["cf"] = 2
		return []*core.Item{it, it2}
	}}

	fan := &Fanout{Sources: []Source{a, b}, Dedup: true}
	items, err := fan.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	byID := make(map[string]*core.Item)
	for _, it := range items {
		byID[it.ID] = it
	}
	// 同名特征按最大值合并
	if byID["p1"].Features["content"] != 0.8 {
		t.Errorf("content merge = %v, want max 0.8", byID["p1"].Features["content"])
	}
	// 两路的解释标签都保留
	if len(byID["p1"].Reasons) != 2 {
		t.Errorf("reasons = %v, want both signals", byID["p1"].Reasons)
	}
}

func TestFanoutUnionKeepsDuplicates(t *testing.T) {
	mk := func(name string) *staticSource {
		return &staticSource{name: name, items: func() []*core.Item {
			return []*core.Item{core.NewItem("p1")}
		}}
	}
	fan := &Fanout{Sources: []Source{mk("a"), mk("b")}, MergeStrategy: "union"}
	items, _ := fan.Process(context.Background(), &core.RecommendContext{}, nil)
	if len(items) != 2 {
		t.Errorf("union items = %d, want 2", len(items))
	}
}

func TestFanoutNoSources(t *testing.T) {
	fan := &Fanout{}
	items, err := fan.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil || items != nil {
		t.Errorf("empty fanout: items=%v err=%v", items, err)
	}
}

func TestHotFallsBackToInteractions(t *testing.T) {
	s := store.NewInteractionStore(cfCatalog())
	register(t, s, "u1", "p3", core.InteractionPurchase)
	register(t, s, "u2", "p1", core.InteractionView)

	hot := &Hot{Interactions: s, TopN: 10}
	items, err := hot.Recall(context.Background(), nil)
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].ID != "p3" {
		t.Errorf("top hot item = %s, want p3", items[0].ID)
	}
	for _, it := range items {
		if len(it.Reasons) != 1 || it.Reasons[0] != core.ReasonPopular {
			t.Errorf("hot reasons = %v", it.Reasons)
		}
	}
}

func TestHotReadsKeyValueStore(t *testing.T) {
	kv := store.NewMemoryStore()
	defer kv.Close()
	ctx := context.Background()
	kv.ZAdd(ctx, "hot:items", 9, "p2")
	kv.ZAdd(ctx, "hot:items", 4, "p1")

	hot := &Hot{Store: kv, Key: "hot:items"}
	items, err := hot.Recall(ctx, nil)
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	if len(items) != 2 || items[0].ID != "p2" || items[0].Score != 9 {
		t.Errorf("items = %+v", items)
	}
}
