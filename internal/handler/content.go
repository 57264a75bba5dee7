package handler

import "net/http"

func (a *API) HandleContentPages(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, a.core.Registry.Pages())
}

func (a *API) HandleContentCalculators(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, a.core.Registry.Calculators())
}
