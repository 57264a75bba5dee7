package handler

import (
	"net/http"
	"strings"
)

// HandleJournal 分发 /api/journal/{feature} 与 /api/journal/{feature}/clear。
// 特性名由 service 层校验，这里只拆路径。
func (a *API) HandleJournal(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/journal/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		a.handleJournalFeature(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "clear":
		if r.Method != http.MethodPost {
			WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		a.clearJournal(w, r, parts[0])
	default:
		http.NotFound(w, r)
	}
}

func (a *API) handleJournalFeature(w http.ResponseWriter, r *http.Request, feature string) {
	switch r.Method {
	case http.MethodGet:
		a.listJournal(w, r, feature)
	case http.MethodPost:
		a.appendJournal(w, r, feature)
	case http.MethodDelete:
		a.removeJournalEntry(w, r, feature)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *API) listJournal(w http.ResponseWriter, r *http.Request, feature string) {
	entries, err := a.core.Services.Journals.List(r.Context(), feature)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

func (a *API) appendJournal(w http.ResponseWriter, r *http.Request, feature string) {
	payload, err := readRawJSON(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := a.core.Services.Journals.Append(r.Context(), feature, payload)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusCreated, entry)
}

func (a *API) removeJournalEntry(w http.ResponseWriter, r *http.Request, feature string) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		WriteError(w, http.StatusBadRequest, "缺少 id 参数")
		return
	}

	removed, err := a.core.Services.Journals.Remove(r.Context(), feature, id)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"removed": removed})
}

func (a *API) clearJournal(w http.ResponseWriter, r *http.Request, feature string) {
	if err := a.core.Services.Journals.Clear(r.Context(), feature); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"cleared": true})
}
