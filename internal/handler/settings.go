package handler

import (
	"net/http"

	"github.com/yuqie6/lifemirror/internal/dto"
	"github.com/yuqie6/lifemirror/internal/eventbus"
	"github.com/yuqie6/lifemirror/internal/pkg/config"
)

func (a *API) HandleAISettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.getAISettings(w, r)
	case http.MethodPut:
		a.saveAISettings(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *API) getAISettings(w http.ResponseWriter, r *http.Request) {
	path, err := config.DefaultConfigPath()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	cfg, err := config.Load(path)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, &dto.AISettingsDTO{
		ConfigPath: path,

		DeepSeekAPIKeySet: cfg.AI.DeepSeek.APIKey != "",
		DeepSeekBaseURL:   cfg.AI.DeepSeek.BaseURL,
		DeepSeekModel:     cfg.AI.DeepSeek.Model,
	})
}

func (a *API) saveAISettings(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveAISettingsRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	path, err := config.DefaultConfigPath()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	cur, err := config.Load(path)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	next := *cur
	if req.DeepSeekAPIKey != nil {
		next.AI.DeepSeek.APIKey = *req.DeepSeekAPIKey
	}
	if req.DeepSeekBaseURL != nil {
		next.AI.DeepSeek.BaseURL = *req.DeepSeekBaseURL
	}
	if req.DeepSeekModel != nil {
		next.AI.DeepSeek.Model = *req.DeepSeekModel
	}

	if err := config.WriteFile(path, &next); err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if a.core != nil && a.core.Hub != nil {
		a.core.Hub.Publish(eventbus.Event{Type: "settings_updated"})
	}
	WriteJSON(w, http.StatusOK, &dto.SaveSettingsResponseDTO{RestartRequired: true})
}
