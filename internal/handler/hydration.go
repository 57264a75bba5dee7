package handler

import (
	"net/http"

	"github.com/yuqie6/lifemirror/internal/dto"
	"github.com/yuqie6/lifemirror/internal/model"
)

func (a *API) HandleHydration(w http.ResponseWriter, r *http.Request) {
	status := a.core.Services.Journals.TodayHydration(r.Context())
	WriteJSON(w, http.StatusOK, &dto.HydrationDTO{Intake: status.Intake, Goal: status.Goal})
}

func (a *API) HandleHydrationDrink(w http.ResponseWriter, r *http.Request) {
	status, err := a.core.Services.Journals.Drink(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, &dto.HydrationDTO{Intake: status.Intake, Goal: status.Goal})
}

func (a *API) HandleHydrationGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.HydrationGoalRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := a.core.Services.Journals.SetHydrationGoal(r.Context(), req.Goal)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, &dto.HydrationDTO{Intake: status.Intake, Goal: status.Goal})
}

func (a *API) HandleChecklist(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list := a.core.Services.Journals.TodayChecklist(r.Context())
		WriteJSON(w, http.StatusOK, &dto.ChecklistDTO{Done: list.Done})
	case http.MethodPut:
		var req dto.ChecklistDTO
		if err := readJSON(r, &req); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := a.core.Services.Journals.SaveChecklist(r.Context(), model.DinacharyaChecklist{Done: req.Done}); err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		list := a.core.Services.Journals.TodayChecklist(r.Context())
		WriteJSON(w, http.StatusOK, &dto.ChecklistDTO{Done: list.Done})
	default:
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
