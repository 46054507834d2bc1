package dsl

import (
	"testing"

	"github.com/rushteam/shoprec/core"
	"github.com/rushteam/shoprec/pkg/utils"
)

func TestEvaluate(t *testing.T) {
	it := core.NewItem("p1")
	it.Score = 0.8
	it.AddReason(core.ReasonPopular)
	it.PutLabel("recall_source", utils.Label{Value: "cf", Source: "recall"})
	rctx := &core.RecommendContext{UserID: "u1", Scene: "home"}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"empty expression", "", true},
		{"score compare", "item.score > 0.7", true},
		{"score compare false", "item.score > 0.9", false},
		{"reason membership", `"popular" in item.reasons`, true},
		{"label shorthand", `label.recall_source == "cf"`, true},
		{"rctx field", `rctx.scene == "home" && rctx.user_id == "u1"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEval(it, rctx).Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	it := core.NewItem("p1")

	if _, err := NewEval(it, nil).Evaluate("item.score +"); err == nil {
		t.Errorf("broken expression must fail to compile")
	}
	if _, err := NewEval(it, nil).Evaluate("item.score + 1.0"); err == nil {
		t.Errorf("non-boolean expression must be rejected")
	}
}
