package rank

import (
	"context"
	"testing"

	"github.com/rushteam/shoprec/core"
)

func blendItem(id string, content, cf float64, cats ...string) *core.Item {
	it := core.NewItem(id)
	it.Features["content"] = content
	it.Features["cf"] = cf
	it.Product = &core.Product{ID: id, Title: id, Categories: cats}
	return it
}

func TestBlendNodeAlphaMix(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  []string // 期望排序
	}{
		{"pure content", 1, []string{"a", "b"}},  // a: content 0.9 / b: 0.1
		{"pure cf", 0, []string{"b", "a"}},       // b: cf 0.8 / a: 0.2
		{"balanced", 0.5, []string{"a", "b"}},    // a: 0.55 / b: 0.45
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []*core.Item{
				blendItem("a", 0.9, 0.2),
				blendItem("b", 0.1, 0.8),
			}
			node := &BlendNode{Alpha: tt.alpha}
			out, err := node.Process(context.Background(), nil, items)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			for i, id := range tt.want {
				if out[i].ID != id {
					t.Errorf("rank[%d] = %s, want %s", i, out[i].ID, id)
				}
			}
		})
	}
}

func TestBlendNodeMissingFeatureIsZero(t *testing.T) {
	it := core.NewItem("a")
	it.Features["cf"] = 1
	node := &BlendNode{Alpha: 0.5}
	out, _ := node.Process(context.Background(), nil, []*core.Item{it})
	if out[0].Score != 0.5 {
		t.Errorf("score = %v, want 0.5 (missing content treated as 0)", out[0].Score)
	}
}

func TestBlendNodeCategoryBias(t *testing.T) {
	tests := []struct {
		name      string
		beta      float64
		biasCats  []string
		cats      []string
		wantBias  bool
		wantScore float64
	}{
		{"bias applied", 0.2, []string{"Footwear"}, []string{"footwear"}, true, 0.7},
		{"beta zero no bias", 0, []string{"footwear"}, []string{"footwear"}, false, 0.5},
		{"empty bias set", 0.2, nil, []string{"footwear"}, false, 0.5},
		{"no category match", 0.2, []string{"electronics"}, []string{"footwear"}, false, 0.5},
		{"capped at one", 0.9, []string{"footwear"}, []string{"footwear"}, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := blendItem("a", 0.5, 0.5, tt.cats...)
			node := &BlendNode{Alpha: 0.5, Beta: tt.beta, BiasCategories: tt.biasCats}
			out, _ := node.Process(context.Background(), nil, []*core.Item{it})

			hasBias := false
			for _, r := range out[0].Reasons {
				if r == core.ReasonBiasCategory {
					hasBias = true
				}
			}
			if hasBias != tt.wantBias {
				t.Errorf("bias_category tag = %v, want %v", hasBias, tt.wantBias)
			}
			if diff := out[0].Score - tt.wantScore; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("score = %v, want %v", out[0].Score, tt.wantScore)
			}
		})
	}
}

func TestBlendNodeTieBreakByID(t *testing.T) {
	items := []*core.Item{
		blendItem("zz", 0.5, 0.5),
		blendItem("aa", 0.5, 0.5),
	}
	node := &BlendNode{Alpha: 0.5}
	out, _ := node.Process(context.Background(), nil, items)
	if out[0].ID != "aa" || out[1].ID != "zz" {
		t.Errorf("tie-break order = [%s %s], want [aa zz]", out[0].ID, out[1].ID)
	}
}
