package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/skylogistic00-crypto/skydev-sub002/internal/pipeline"
)

// Runner is the pipeline dependency; it never returns an error.
type Runner interface {
	Run(ctx context.Context, req pipeline.Request) pipeline.Response
}

type ExtractHandler struct {
	pipeline Runner
}

func NewExtractHandler(p Runner) *ExtractHandler {
	return &ExtractHandler{pipeline: p}
}

// Extract is the one endpoint the uploading UI calls. Missing image_url is
// the only hard failure (400); everything else, including total OCR
// failure, comes back as 200 so the UI can render a graceful message
// instead of tripping generic error handling.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("extraction pipeline panicked", "panic", rec)
			writeJSON(w, http.StatusOK, pipeline.Failure(fmt.Sprintf("internal error: %v", rec)))
		}
	}()

	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.ImageURL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image_url is required"})
		return
	}

	resp := h.pipeline.Run(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}
