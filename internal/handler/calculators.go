package handler

import (
	"log/slog"
	"net/http"

	"github.com/yuqie6/lifemirror/internal/dto"
	"github.com/yuqie6/lifemirror/internal/wellness"
)

// 计算接口：先算后记账。计算失败不计使用次数，
// 记账失败只打日志，不影响给用户的计算结果。

func (a *API) HandleCalcBMI(w http.ResponseWriter, r *http.Request) {
	var req dto.BMIRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := wellness.CalcBMI(req.HeightCm, req.WeightKg)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	a.recordCalculatorUse(r, "bmi")

	WriteJSON(w, http.StatusOK, &dto.BMIResultDTO{
		BMI:      result.BMI,
		Category: result.Category,
	})
}

func (a *API) HandleCalcBMR(w http.ResponseWriter, r *http.Request) {
	var req dto.BMRRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := wellness.CalcBMR(req.Gender, req.Age, req.HeightCm, req.WeightKg, req.ActivityLevel)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	a.recordCalculatorUse(r, "bmr")

	WriteJSON(w, http.StatusOK, &dto.BMRResultDTO{
		BMR:  result.BMR,
		TDEE: result.TDEE,
	})
}

func (a *API) HandleCalcWHR(w http.ResponseWriter, r *http.Request) {
	var req dto.WHRRequestDTO
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := wellness.CalcWHR(req.Gender, req.WaistCm, req.HipCm)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	a.recordCalculatorUse(r, "whr")

	WriteJSON(w, http.StatusOK, &dto.WHRResultDTO{
		WHR:  result.WHR,
		Risk: result.Category,
	})
}

func (a *API) recordCalculatorUse(r *http.Request, slug string) {
	if err := a.core.Services.Tracker.RecordCalculatorUse(r.Context(), slug); err != nil {
		slog.Warn("记录工具使用失败", "slug", slug, "error", err)
	}
}
