package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pipeline"
)

const testYAML = `
pipeline:
  name: post
  nodes:
    - type: rank.blend
      config:
        alpha: 1.0
        beta: 0.2
        bias_categories: ["footwear"]
    - type: filter
      config:
        filters:
          - type: score_floor
            min: 0
    - type: rerank.topn
      config:
        n: 2
`

func TestBuildPipelineFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(testYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := pipeline.LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if cfg.Pipeline.Name != "post" || len(cfg.Pipeline.Nodes) != 3 {
		t.Fatalf("cfg = %+v", cfg.Pipeline)
	}

	p, err := cfg.BuildPipeline(DefaultFactory())
	if err != nil {
		t.Fatalf("BuildPipeline: %v", err)
	}

	mk := func(id string, content float64, cats ...string) *core.Item {
		it := core.NewItem(id)
		it.Features["content"] = content
		it.Product = &core.Product{ID: id, Categories: cats}
		return it
	}
	items := []*core.Item{
		mk("a", 0.2, "electronics"),
		mk("b", 0.5, "footwear"),
		mk("c", 0.4, "electronics"),
	}
	out, err := p.Run(context.Background(), &core.RecommendContext{}, items)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// alpha=1 纯内容分，b 命中偏置类目 +0.2 → b(0.7) c(0.4) a(0.2)，截断到 2
	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "c" {
		for _, it := range out {
			t.Logf("item %s score=%v", it.ID, it.Score)
		}
		t.Fatalf("pipeline output order wrong")
	}
}

func TestBuildPipelineUnknownNode(t *testing.T) {
	cfg := &pipeline.Config{}
	cfg.Pipeline.Nodes = []pipeline.NodeConfig{{Type: "rank.bogus"}}
	if _, err := cfg.BuildPipeline(DefaultFactory()); err == nil {
		t.Fatalf("unknown node type must fail")
	}
}

func TestBuildFilterNodeUnknownFilter(t *testing.T) {
	cfg := &pipeline.Config{}
	cfg.Pipeline.Nodes = []pipeline.NodeConfig{{
		Type: "filter",
		Config: map[string]any{
			"filters": []any{map[string]any{"type": "bogus"}},
		},
	}}
	if _, err := cfg.BuildPipeline(DefaultFactory()); err == nil {
		t.Fatalf("unknown filter type must fail")
	}
}
