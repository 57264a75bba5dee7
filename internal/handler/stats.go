package handler

import (
	"net/http"

	"github.com/yuqie6/lifemirror/internal/dto"
)

func (a *API) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := a.core.Services.Tracker.Stats(r.Context())
	WriteJSON(w, http.StatusOK, &dto.StatsDTO{
		TotalCalculatorUses:     stats.TotalCalculatorUses,
		UniqueCalculatorsUsed:   stats.UniqueCalculatorsUsed,
		PrakritiQuizCompletions: stats.PrakritiQuizCompletions,
		WellnessPlanGenerations: stats.WellnessPlanGenerations,
		KoshaAdvisorUsages:      stats.KoshaAdvisorUsages,
		TotalQuizAttempts:       stats.TotalQuizAttempts,
		LastActivityDate:        stats.LastActivityDate,
	})
}

func (a *API) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	cards := a.core.Services.Dashboard.Cards(r.Context())
	WriteJSON(w, http.StatusOK, cards)
}
