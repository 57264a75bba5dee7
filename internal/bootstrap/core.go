package bootstrap

import (
	"fmt"

	"github.com/yuqie6/lifemirror/internal/ai"
	"github.com/yuqie6/lifemirror/internal/content"
	"github.com/yuqie6/lifemirror/internal/eventbus"
	"github.com/yuqie6/lifemirror/internal/ledger"
	"github.com/yuqie6/lifemirror/internal/pkg/config"
	"github.com/yuqie6/lifemirror/internal/repository"
	"github.com/yuqie6/lifemirror/internal/service"
	"github.com/yuqie6/lifemirror/internal/storage"
)

// Core 持有跨二进制共享的核心依赖
type Core struct {
	Cfg      *config.Config
	DB       *repository.Database
	Store    storage.Store
	Hub      *eventbus.Hub
	Registry *content.Registry

	Services struct {
		Tracker   *service.TrackerService
		Journals  *service.JournalService
		Dashboard *service.DashboardService
		Advisor   *service.AdvisorService
	}

	Clients struct {
		DeepSeek *ai.DeepSeekClient
	}
}

// NewCore 构建核心依赖（不启动 HTTP 服务）
func NewCore(cfgPath string) (*Core, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	config.SetupLogger(cfg.App.LogLevel)

	db, err := repository.NewDatabase(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}

	registry, err := content.NewRegistry(cfg.Content.Dir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Core{
		Cfg:      cfg,
		DB:       db,
		Store:    repository.NewKVRepository(db.DB),
		Hub:      eventbus.NewHub(),
		Registry: registry,
	}

	c.Clients.DeepSeek = ai.NewDeepSeekClient(&ai.DeepSeekConfig{
		APIKey:  cfg.AI.DeepSeek.APIKey,
		BaseURL: cfg.AI.DeepSeek.BaseURL,
		Model:   cfg.AI.DeepSeek.Model,
	})

	c.Services.Tracker = service.NewTrackerService(ledger.New(c.Store), registry, c.Hub)
	c.Services.Journals = service.NewJournalService(c.Store, cfg.Retention, c.Hub)
	c.Services.Dashboard = service.NewDashboardService(c.Services.Tracker, c.Services.Journals, registry)
	c.Services.Advisor = service.NewAdvisorService(ai.NewAdvisor(c.Clients.DeepSeek), c.Services.Tracker)

	return c, nil
}

// Close 关闭核心依赖资源
func (c *Core) Close() error {
	if c == nil {
		return nil
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// RequireAIConfigured 检查 AI 是否已配置
func (c *Core) RequireAIConfigured() error {
	if c.Clients.DeepSeek == nil || !c.Clients.DeepSeek.IsConfigured() {
		return fmt.Errorf("DeepSeek API 未配置")
	}
	return nil
}
