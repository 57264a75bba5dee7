package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/yuqie6/lifemirror/internal/storage"
)

// Daily 按自然日滚动的单值存储：key 形如 <prefix>_<ISO 日期>，
// 换天后旧 key 在下一次 Load 时被清扫，当天状态从零开始。
type Daily[T any] struct {
	store  storage.Store
	prefix string
	now    func() time.Time
}

// NewDaily 创建按日滚动的存储
func NewDaily[T any](store storage.Store, prefix string) *Daily[T] {
	return &Daily[T]{store: store, prefix: prefix, now: time.Now}
}

// todayKey 当天的存储 key
func (d *Daily[T]) todayKey() string {
	return d.prefix + "_" + d.now().Format("2006-01-02")
}

// Load 清扫本前缀下非当天的 key，然后返回当天的值；
// 当天还没有值时返回零值和 false。
func (d *Daily[T]) Load(ctx context.Context) (T, bool) {
	d.sweep(ctx)

	var zero T
	raw, ok, err := d.store.Get(ctx, d.todayKey())
	if err != nil {
		slog.Warn("读取当日数据失败", "prefix", d.prefix, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		slog.Warn("当日数据损坏，按空处理", "prefix", d.prefix, "error", err)
		return zero, false
	}
	return value, true
}

// Save 写入当天的值
func (d *Daily[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化当日数据失败: %w", err)
	}
	if err := d.store.Set(ctx, d.todayKey(), string(raw)); err != nil {
		return fmt.Errorf("写入当日数据失败: %w", err)
	}
	return nil
}

// sweep 删除本前缀下所有非当天的 key。只清自己前缀，不碰别的特性。
func (d *Daily[T]) sweep(ctx context.Context) {
	keys, err := d.store.Keys(ctx, d.prefix+"_")
	if err != nil {
		slog.Warn("清扫过期数据失败", "prefix", d.prefix, "error", err)
		return
	}

	today := d.todayKey()
	for _, key := range keys {
		if key == today {
			continue
		}
		if err := d.store.Remove(ctx, key); err != nil {
			slog.Warn("删除过期 key 失败", "key", key, "error", err)
		}
	}
}
