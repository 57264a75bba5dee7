package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yuqie6/lifemirror/internal/bootstrap"
	"github.com/yuqie6/lifemirror/internal/pkg/buildinfo"
	"github.com/yuqie6/lifemirror/internal/pkg/config"
	"github.com/yuqie6/lifemirror/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 首次启动时生成默认配置，方便用户直接改文件
	cfgPath, cfgErr := config.DefaultConfigPath()
	if cfgErr == nil {
		if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
			_ = config.WriteFile(cfgPath, config.Default())
		}
	}

	core, err := bootstrap.NewCore(cfgPath)
	if err != nil {
		slog.Error("启动失败", "error", err)
		os.Exit(1)
	}
	defer core.Close()

	slog.Info("LifeMirror 启动中...",
		"name", core.Cfg.App.Name,
		"version", core.Cfg.App.Version,
		"commit", buildinfo.Commit,
	)

	if core.Cfg.Content.Watch && core.Cfg.Content.Dir != "" {
		go func() {
			if err := core.Registry.Watch(ctx); err != nil {
				slog.Warn("内容目录监听退出", "error", err)
			}
		}()
	}

	srv, err := server.Start(ctx, core, server.Options{ListenAddr: core.Cfg.Server.ListenAddr})
	if err != nil {
		slog.Error("启动本地 API 失败", "error", err)
		os.Exit(1)
	}
	slog.Info("LifeMirror 已启动", "base_url", srv.BaseURL())

	// 监听系统信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("收到系统退出信号")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	_ = srv.Shutdown(shutdownCtx)
	shutdownCancel()
	slog.Info("LifeMirror 已退出")
}
