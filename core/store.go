package core

import "context"

// Store 是最小 KV 存储抽象，实现见 store 包（memory / redis）。
// 引擎用它导出热门榜、黑名单等外部可消费的数据。
type Store interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl ...int) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// KeyValueStore 在 Store 之上扩展有序集合操作，用于按分数排序的榜单。
type KeyValueStore interface {
	Store
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZScore(ctx context.Context, key string, member string) (float64, error)
}
