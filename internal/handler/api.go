package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yuqie6/lifemirror/internal/bootstrap"
)

// API HTTP 处理器
type API struct {
	core      *bootstrap.Core
	startTime time.Time
}

// NewAPI 创建 API 处理器
func NewAPI(core *bootstrap.Core) *API {
	return &API{
		core:      core,
		startTime: time.Now(),
	}
}

// HandleHealth 健康检查接口
func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if a == nil || a.core == nil || a.core.Cfg == nil {
		WriteError(w, http.StatusServiceUnavailable, "core 未初始化")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"name":       a.core.Cfg.App.Name,
		"version":    a.core.Cfg.App.Version,
		"started_at": a.startTime.Format(time.RFC3339),
	})
}

// HandleSSE Server-Sent Events 接口
func (a *API) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, http.StatusInternalServerError, "stream not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if a == nil || a.core == nil || a.core.Hub == nil {
		WriteError(w, http.StatusServiceUnavailable, "hub 未初始化")
		return
	}

	ctx := r.Context()
	sub := a.core.Hub.Subscribe(ctx, 32)

	_, _ = io.WriteString(w, "event: ready\n")
	_, _ = io.WriteString(w, "data: {}\n\n")
	flusher.Flush()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, "event: ping\n")
			_, _ = io.WriteString(w, "data: {}\n\n")
			flusher.Flush()
		case evt, ok := <-sub:
			if !ok {
				return
			}
			b, _ := json.Marshal(evt)
			_, _ = io.WriteString(w, "event: "+sanitizeSSEName(evt.Type)+"\n")
			_, _ = io.WriteString(w, "data: ")
			_, _ = w.Write(b)
			_, _ = io.WriteString(w, "\n\n")
			flusher.Flush()
		}
	}
}

// sanitizeSSEName 清理 SSE 事件名称
func sanitizeSSEName(name string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		return "message"
	}
	n = strings.ReplaceAll(n, "\n", "")
	n = strings.ReplaceAll(n, "\r", "")
	return n
}
