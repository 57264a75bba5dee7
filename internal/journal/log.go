// Package journal 实现按特性隔离的有界日志：每个特性一个存储 key，
// 新条目插在最前，超出上限时从尾部淘汰最老的条目。
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yuqie6/lifemirror/internal/storage"
)

// Entry 日志条目：生成的 id/时间戳 + 特性自己的负载
type Entry[T any] struct {
	ID       string    `json:"id"`
	LoggedAt time.Time `json:"loggedAt"`
	Payload  T         `json:"payload"`
}

// Log 有界日志。业务校验在调用方（service 层）完成，
// Append 只负责生成 id 和时间戳。
type Log[T any] struct {
	store storage.Store
	key   string
	cap   int
	now   func() time.Time
}

// NewLog 创建有界日志；cap 为保留条数上限
func NewLog[T any](store storage.Store, key string, cap int) *Log[T] {
	if cap <= 0 {
		cap = 50
	}
	return &Log[T]{store: store, key: key, cap: cap, now: time.Now}
}

// Cap 返回保留条数上限
func (l *Log[T]) Cap() int { return l.cap }

// List 返回当前保留的全部条目，新的在前。
// 读取/反序列化失败按空日志处理，不向上传播。
func (l *Log[T]) List(ctx context.Context) []Entry[T] {
	raw, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		slog.Warn("读取日志失败，按空日志处理", "key", l.key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var entries []Entry[T]
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		slog.Warn("日志内容损坏，按空日志处理", "key", l.key, "error", err)
		return nil
	}
	return entries
}

// Append 生成 id 与时间戳、头插、按上限截断，并返回落盘后的条目
func (l *Log[T]) Append(ctx context.Context, payload T) (Entry[T], error) {
	entry := Entry[T]{
		ID:       newEntryID(),
		LoggedAt: l.now(),
		Payload:  payload,
	}

	entries := append([]Entry[T]{entry}, l.List(ctx)...)
	if len(entries) > l.cap {
		entries = entries[:l.cap]
	}

	if err := l.write(ctx, entries); err != nil {
		return Entry[T]{}, err
	}
	return entry, nil
}

// Remove 按 id 删除条目；id 不存在时返回 false，不算错误
func (l *Log[T]) Remove(ctx context.Context, id string) (bool, error) {
	entries := l.List(ctx)
	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}
	if err := l.write(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Clear 清空日志
func (l *Log[T]) Clear(ctx context.Context) error {
	if err := l.store.Remove(ctx, l.key); err != nil {
		return fmt.Errorf("清空日志失败: %w", err)
	}
	return nil
}

func (l *Log[T]) write(ctx context.Context, entries []Entry[T]) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("序列化日志失败: %w", err)
	}
	if err := l.store.Set(ctx, l.key, string(raw)); err != nil {
		return fmt.Errorf("写入日志失败: %w", err)
	}
	return nil
}

// newEntryID 生成日志内唯一的条目 id
func newEntryID() string {
	return uuid.NewString()
}
