package store

import "github.com/rushteam/shoprec/core"

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.Store 和 core.KeyValueStore 接口。
//
// 示例：
//   var kv core.KeyValueStore = NewMemoryStore()

// ErrNotFound 是"键不存在"错误，等同于 core.ErrStoreNotFound。
var ErrNotFound = core.ErrStoreNotFound
