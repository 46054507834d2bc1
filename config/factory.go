// Package config 提供内置 Node 的工厂注册，配合 pipeline.Config 从
// YAML/JSON 构建后处理管线。
package config

import (
	"fmt"

	"github.com/rushteam/shoprec/filter"
	"github.com/rushteam/shoprec/pipeline"
	"github.com/rushteam/shoprec/pkg/conv"
	"github.com/rushteam/shoprec/rank"
	"github.com/rushteam/shoprec/rerank"
)

// DefaultFactory 返回一个包含所有内置 Node 的默认工厂。
func DefaultFactory() *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	// 注册 Rank Nodes
	factory.Register("rank.blend", buildBlendNode)

	// 注册 Filter Nodes
	factory.Register("filter", buildFilterNode)

	// 注册 ReRank Nodes
	factory.Register("rerank.topn", buildTopNNode)
	factory.Register("rerank.diversity", buildDiversityNode)

	return factory
}

func buildBlendNode(config map[string]any) (pipeline.Node, error) {
	return &rank.BlendNode{
		Alpha:          conv.ConfigGetFloat64(config, "alpha", 0.5),
		Beta:           conv.ConfigGetFloat64(config, "beta", 0),
		BiasCategories: conv.SliceAnyToString(config["bias_categories"]),
	}, nil
}

func buildTopNNode(config map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{
		N: conv.ConfigGetInt(config, "n", 0),
	}, nil
}

func buildDiversityNode(config map[string]any) (pipeline.Node, error) {
	return &rerank.Diversity{
		MaxPerCategory: conv.ConfigGetInt(config, "max_per_category", 1),
	}, nil
}

func buildFilterNode(config map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := config["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		switch filterType := conv.ConfigGet[string](filterMap, "type", ""); filterType {
		case "blacklist":
			filters = append(filters, &filter.BlacklistFilter{
				ItemIDs: conv.SliceAnyToString(filterMap["item_ids"]),
				Key:     conv.ConfigGet[string](filterMap, "key", ""),
			})
		case "seen":
			filters = append(filters, &filter.SeenFilter{})
		case "score_floor":
			filters = append(filters, &filter.ScoreFloorFilter{
				Min: conv.ConfigGetFloat64(filterMap, "min", 0),
			})
		case "rule":
			filters = append(filters, &filter.RuleFilter{
				Expr: conv.ConfigGet[string](filterMap, "expr", ""),
			})
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}
