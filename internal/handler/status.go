package handler

import (
	"net/http"
	"time"

	"github.com/yuqie6/lifemirror/internal/dto"
)

func (a *API) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if a == nil || a.core == nil || a.core.Cfg == nil || a.core.DB == nil {
		WriteAPIError(w, http.StatusServiceUnavailable, APIError{
			Error: "core 未初始化",
			Code:  "core_not_ready",
			Hint:  "请稍后重试；若持续失败，请查看日志或重新启动服务",
		})
		return
	}

	cfg := a.core.Cfg
	st := dto.StatusDTO{
		App: dto.AppStatusDTO{
			Name:      cfg.App.Name,
			Version:   cfg.App.Version,
			StartedAt: a.startTime.Format(time.RFC3339),
			UptimeSec: int64(time.Since(a.startTime).Seconds()),
		},
		Storage: dto.StorageStatusDTO{
			DBPath:         cfg.Storage.DBPath,
			SchemaVersion:  a.core.DB.SchemaVersion,
			SafeMode:       a.core.DB.SafeMode,
			SafeModeReason: a.core.DB.MigrationError,
		},
	}

	if a.core.Registry != nil {
		st.Content = dto.ContentStatusDTO{
			Pages:       len(a.core.Registry.Pages()),
			Calculators: len(a.core.Registry.Calculators()),
			Watching:    cfg.Content.Watch,
		}
	}
	if a.core.Clients.DeepSeek != nil {
		st.AI = dto.AIStatusDTO{
			Configured: a.core.Clients.DeepSeek.IsConfigured(),
			Model:      cfg.AI.DeepSeek.Model,
		}
	}

	WriteJSON(w, http.StatusOK, st)
}
