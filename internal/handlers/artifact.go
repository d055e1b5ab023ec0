package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mdmind/internal/contextutil"
	"mdmind/internal/storage"
)

// LatestArtifactID resolves to the most recently converted artifact,
// so a conversion can be followed by a download without tracking ids.
const LatestArtifactID = "latest"

// ArtifactHandler serves stored conversion results.
type ArtifactHandler struct {
	artifacts storage.ArtifactStore
	logger    *slog.Logger
}

// NewArtifactHandler creates a new ArtifactHandler.
func NewArtifactHandler(artifacts storage.ArtifactStore) *ArtifactHandler {
	return &ArtifactHandler{
		artifacts: artifacts,
		logger:    slog.Default(),
	}
}

// ArtifactMetadata describes a stored artifact.
type ArtifactMetadata struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Size        int    `json:"size"`
	CreatedAt   string `json:"created_at"`
	DownloadURL string `json:"download_url"`
}

// Metadata answers with the artifact's metadata.
func (h *ArtifactHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	record, ok := h.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ArtifactMetadata{
		ID:          record.ID,
		Name:        record.Name,
		Kind:        record.Kind,
		Size:        len(record.Content),
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
		DownloadURL: "/api/artifacts/" + record.ID + "/download",
	})
}

// Download streams the artifact bytes as a file attachment.
func (h *ArtifactHandler) Download(w http.ResponseWriter, r *http.Request) {
	record, ok := h.lookup(w, r)
	if !ok {
		return
	}

	contentType := "application/octet-stream"
	if record.Kind == storage.KindMarkdown {
		contentType = "text/markdown; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+record.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(record.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(record.Content)
}

// lookup resolves the id URL parameter (or "latest") to a record. On
// failure it writes the error response and returns ok=false.
func (h *ArtifactHandler) lookup(w http.ResponseWriter, r *http.Request) (*storage.ArtifactRecord, bool) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "artifact id is required")
		return nil, false
	}

	var (
		record *storage.ArtifactRecord
		err    error
	)
	if id == LatestArtifactID {
		record, err = h.artifacts.Latest(ctx)
	} else {
		record, err = h.artifacts.Get(ctx, id)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "artifact not found")
			return nil, false
		}
		logger.ErrorContext(ctx, "failed to load artifact", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load artifact")
		return nil, false
	}
	return record, true
}
