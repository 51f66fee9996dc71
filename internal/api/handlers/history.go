package handlers

import (
	"net/http"
	"strconv"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/store"
)

type HistoryHandler struct {
	history *store.History
}

func NewHistoryHandler(h *store.History) *HistoryHandler {
	return &HistoryHandler{history: h}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	items, err := h.history.List(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"extractions": items, "count": len(items)})
}
