package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/yuqie6/lifemirror/internal/ai"
	"github.com/yuqie6/lifemirror/internal/dto"
)

// AI 接口统一 30 秒超时，上游慢时尽快把错误还给前端。

func (a *API) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if err := a.core.RequireAIConfigured(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, APIError{
			Error: err.Error(),
			Code:  "ai_not_configured",
			Hint:  "请在设置中填写 DeepSeek API Key",
		})
		return
	}

	var req dto.RecommendationsRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		WriteError(w, http.StatusBadRequest, "症状描述不能为空")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	rec, err := a.core.Services.Advisor.RecommendForSymptoms(ctx, req.Symptoms)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, &dto.RecommendationsDTO{Recommendations: rec.Recommendations})
}

func (a *API) HandleKoshaPlan(w http.ResponseWriter, r *http.Request) {
	if err := a.core.RequireAIConfigured(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, APIError{
			Error: err.Error(),
			Code:  "ai_not_configured",
			Hint:  "请在设置中填写 DeepSeek API Key",
		})
		return
	}

	var req dto.KoshaPlanRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ai.ValidPrakriti(req.Prakriti) {
		WriteError(w, http.StatusBadRequest, "未知的体质标签: "+req.Prakriti)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	plan, err := a.core.Services.Advisor.GenerateKoshaPlan(ctx, req.Prakriti, req.Concerns)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, &dto.KoshaPlanDTO{
		Diet:       plan.Diet,
		Lifestyle:  plan.Lifestyle,
		Yoga:       plan.Yoga,
		Meditation: plan.Meditation,
		Disclaimer: plan.Disclaimer,
	})
}
