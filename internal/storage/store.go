// Package storage 定义键值存储能力。账本与日志只依赖这个接口，
// 生产环境由 repository.KVRepository（SQLite）实现，测试用 MemoryStore。
package storage

import "context"

// Store 字符串键值存储
type Store interface {
	// Get 读取 key 对应的值；不存在时 ok 为 false，不算错误
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set 写入（覆盖）key 对应的值
	Set(ctx context.Context, key, value string) error
	// Remove 删除 key；key 不存在时不算错误
	Remove(ctx context.Context, key string) error
	// Keys 枚举指定前缀下的所有 key
	Keys(ctx context.Context, prefix string) ([]string, error)
}
