package content

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch 监听目录变化并热加载。目录不存在时直接返回（只用内置目录）。
// 阻塞到 ctx 取消，调用方自行起 goroutine。
func (r *Registry) Watch(ctx context.Context) error {
	if r.dir == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(r.dir); err != nil {
		slog.Warn("内容目录不可监听，跳过热加载", "dir", r.dir, "error", err)
		return nil
	}

	// 编辑器保存往往触发连续多个事件，做个简单去抖
	var reload <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isYAML(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				reload = time.After(300 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("内容目录监听错误", "error", err)
		case <-reload:
			reload = nil
			if err := r.Load(); err != nil {
				slog.Warn("内容目录热加载失败，保留旧目录", "error", err)
			}
		}
	}
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
