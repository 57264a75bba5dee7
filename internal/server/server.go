// Package server 启动本地 HTTP 服务并注册所有 API 路由。
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yuqie6/lifemirror/internal/bootstrap"
	"github.com/yuqie6/lifemirror/internal/handler"
)

// LocalServer 本地 HTTP 服务器
type LocalServer struct {
	core    *bootstrap.Core
	ln      net.Listener
	srv     *http.Server
	baseURL string
}

// Options 服务器启动配置
type Options struct {
	ListenAddr string // e.g. "127.0.0.1:0"
}

// Start 启动本地 HTTP 服务器
func Start(ctx context.Context, core *bootstrap.Core, opts Options) (*LocalServer, error) {
	if core == nil {
		return nil, fmt.Errorf("core 不能为空")
	}
	if strings.TrimSpace(opts.ListenAddr) == "" {
		opts.ListenAddr = "127.0.0.1:0"
	}

	ln, err := net.Listen("tcp", opts.ListenAddr)
	if err != nil {
		return nil, err
	}

	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		_ = ln.Close()
		return nil, err
	}
	baseURL := "http://127.0.0.1:" + portStr

	api := handler.NewAPI(core)

	mux := http.NewServeMux()
	registerRoutes(mux, api)

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ls := &LocalServer{
		core:    core,
		ln:      ln,
		srv:     srv,
		baseURL: baseURL,
	}

	go func() {
		<-ctx.Done()
		_ = ls.Shutdown(context.Background())
	}()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server 异常退出", "error", err)
		}
	}()

	slog.Info("本地 HTTP 已启动", "base_url", baseURL)
	return ls, nil
}

// registerRoutes 注册所有 API 路由
func registerRoutes(mux *http.ServeMux, api *handler.API) {
	mux.HandleFunc("/health", api.HandleHealth)
	mux.HandleFunc("/api/events", api.HandleSSE)
	mux.HandleFunc("/api/status", requireMethod(http.MethodGet, api.HandleStatus))

	mux.HandleFunc("/api/calc/bmi", requireMethod(http.MethodPost, api.HandleCalcBMI))
	mux.HandleFunc("/api/calc/bmr", requireMethod(http.MethodPost, api.HandleCalcBMR))
	mux.HandleFunc("/api/calc/whr", requireMethod(http.MethodPost, api.HandleCalcWHR))

	mux.HandleFunc("/api/quiz/complete", requireMethod(http.MethodPost, api.HandleQuizComplete))
	mux.HandleFunc("/api/stats", requireMethod(http.MethodGet, api.HandleStats))
	mux.HandleFunc("/api/dashboard", requireMethod(http.MethodGet, api.HandleDashboard))

	mux.HandleFunc("/api/journal/", api.HandleJournal)

	mux.HandleFunc("/api/hydration", requireMethod(http.MethodGet, api.HandleHydration))
	mux.HandleFunc("/api/hydration/drink", requireMethod(http.MethodPost, api.HandleHydrationDrink))
	mux.HandleFunc("/api/hydration/goal", requireMethod(http.MethodPut, api.HandleHydrationGoal))
	mux.HandleFunc("/api/checklist", api.HandleChecklist)

	mux.HandleFunc("/api/ai/recommendations", requireMethod(http.MethodPost, api.HandleRecommendations))
	mux.HandleFunc("/api/ai/kosha-plan", requireMethod(http.MethodPost, api.HandleKoshaPlan))

	mux.HandleFunc("/api/content/pages", requireMethod(http.MethodGet, api.HandleContentPages))
	mux.HandleFunc("/api/content/calculators", requireMethod(http.MethodGet, api.HandleContentCalculators))

	mux.HandleFunc("/api/settings/ai", api.HandleAISettings)
}

// requireMethod 创建要求特定 HTTP 方法的中间件
func requireMethod(method string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			handler.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		fn(w, r)
	}
}

// BaseURL 返回服务器的基础 URL
func (s *LocalServer) BaseURL() string {
	if s == nil {
		return ""
	}
	return s.baseURL
}

// Shutdown 优雅关闭服务器
func (s *LocalServer) Shutdown(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
