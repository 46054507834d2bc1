package filter

import (
	"context"
	"encoding/json"

	"github.com/rushteam/shoprec/core"
)

// BlacklistFilter 过滤掉黑名单中的商品。
// 种子排除就是一个单元素黑名单；运营侧下架列表可放在 Store 里共享。
type BlacklistFilter struct {
	// ItemIDs 是内存中的黑名单商品 ID 列表（canonical 形式）
	ItemIDs []string

	// Store 用于从存储中读取黑名单（可选）
	Store core.Store

	// Key 是 Store 中的黑名单 key（可选，JSON 字符串数组）
	Key string
}

func (f *BlacklistFilter) Name() string {
	return "filter.blacklist"
}

func (f *BlacklistFilter) ShouldFilter(
	ctx context.Context,
	_ *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}

	for _, id := range f.ItemIDs {
		if item.ID == core.CanonicalID(id) {
			return true, nil
		}
	}

	if f.Store != nil && f.Key != "" {
		data, err := f.Store.Get(ctx, f.Key)
		if err != nil {
			// 黑名单 key 未配置不是错误；其余存储故障交给上游处理
			if core.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		var ids []string
		if json.Unmarshal(data, &ids) == nil {
			for _, id := range ids {
				if item.ID == core.CanonicalID(id) {
					return true, nil
				}
			}
		}
	}
	return false, nil
}
