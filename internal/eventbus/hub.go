// Package eventbus 进程内发布/订阅，用于把账本与日志的变化推到 SSE。
package eventbus

import (
	"context"
	"sync"
	"time"
)

// 事件类型
const (
	TypeActivity  = "activity"  // 账本计数变化
	TypeJournal   = "journal"   // 某个日志有增删
	TypeHydration = "hydration" // 当日饮水变化
)

type Event struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// ActivityEvent 账本事件：kind 为触发的操作，slug 可选
func ActivityEvent(kind, slug string) Event {
	data := map[string]any{"kind": kind}
	if slug != "" {
		data["slug"] = slug
	}
	return Event{Type: TypeActivity, Data: data}
}

// JournalEvent 日志事件：feature 为特性名，action 为 append/remove/clear
func JournalEvent(feature, action string) Event {
	return Event{Type: TypeJournal, Data: map[string]any{
		"feature": feature,
		"action":  action,
	}}
}

// HydrationEvent 饮水事件
func HydrationEvent(intake, goal int) Event {
	return Event{Type: TypeHydration, Data: map[string]any{
		"intake": intake,
		"goal":   goal,
	}}
}

type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

func (h *Hub) Publish(evt Event) {
	if h == nil {
		return
	}
	if evt.Timestamp == 0 {
		evt.Timestamp = time.Now().UnixMilli()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
			// 慢消费者直接丢弃，避免阻塞写入链路
		}
	}
}

func (h *Hub) Subscribe(ctx context.Context, buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
		close(ch)
	}()

	return ch
}
