package handler

import (
	"net/http"

	"github.com/yuqie6/lifemirror/internal/dto"
)

func (a *API) HandleQuizComplete(w http.ResponseWriter, r *http.Request) {
	var req dto.QuizCompleteRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := a.core.Services.Tracker.CompleteQuiz(r.Context(), req.Name, req.CorrectCount, req.TotalCount, req.Kind)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, &dto.QuizResultDTO{
		Score:    outcome.Score,
		MaxScore: outcome.MaxScore,
	})
}
