package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mdmind/internal/contextutil"
	"mdmind/internal/converter"
)

// RestructureHandler handles HTTP requests for the heading
// restructuring transform.
type RestructureHandler struct {
	service converter.Service
	logger  *slog.Logger
}

// NewRestructureHandler creates a new RestructureHandler.
func NewRestructureHandler(service converter.Service) *RestructureHandler {
	return &RestructureHandler{
		service: service,
		logger:  slog.Default(),
	}
}

// RestructureRequest represents the HTTP request payload.
type RestructureRequest struct {
	Markdown string `json:"markdown"`
}

// RestructureResponse carries the transformed document along with its
// heading statistics.
type RestructureResponse struct {
	Markdown string                  `json:"markdown"`
	Stats    converter.DocumentStats `json:"stats"`
}

// ServeHTTP handles HTTP requests for restructuring markdown.
func (h *RestructureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RestructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid restructure request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := h.service.Restructure(ctx, req.Markdown)
	if err != nil {
		var validationErr *converter.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		logger.ErrorContext(ctx, "restructure failed", "error", err)
		writeError(w, http.StatusInternalServerError, "restructure failed")
		return
	}

	writeJSON(w, http.StatusOK, RestructureResponse{
		Markdown: out,
		Stats:    converter.Stats(req.Markdown),
	})
}
