package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"mdmind/internal/contextutil"
	"mdmind/internal/converter"
	"mdmind/internal/markdown"
	"mdmind/internal/storage"
	"mdmind/internal/xmind"
)

// ConvertHandler handles the multipart conversion endpoints. Converted
// output is stored as an artifact and served by the download endpoint;
// conversion responses only carry the artifact metadata.
type ConvertHandler struct {
	service        converter.Service
	artifacts      storage.ArtifactStore
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(service converter.Service, artifacts storage.ArtifactStore, maxUploadBytes int64) *ConvertHandler {
	return &ConvertHandler{
		service:        service,
		artifacts:      artifacts,
		maxUploadBytes: maxUploadBytes,
		logger:         slog.Default(),
	}
}

// ArtifactResponse describes a stored conversion result.
type ArtifactResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Size        int    `json:"size"`
	DownloadURL string `json:"download_url"`
}

// MarkdownToPackage converts an uploaded markdown document into a
// mind-map package artifact.
func (h *ConvertHandler) MarkdownToPackage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	name, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	pkg, err := h.service.MarkdownToPackage(ctx, string(data))
	if err != nil {
		h.writeConversionError(w, r, err, false)
		return
	}

	h.storeAndRespond(w, r, &storage.ArtifactRecord{
		Name:    replaceExt(name, ".xmind"),
		Kind:    storage.KindPackage,
		Content: pkg,
	})
	logger.InfoContext(ctx, "markdown upload converted", "name", name, "package_bytes", len(pkg))
}

// PackageToMarkdown converts an uploaded mind-map package into a
// markdown artifact. The rendering mode comes from the "mode" query or
// form value (header by default).
func (h *ConvertHandler) PackageToMarkdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	name, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	modeValue := r.URL.Query().Get("mode")
	if modeValue == "" {
		modeValue = r.FormValue("mode")
	}
	mode := markdown.ParseMode(modeValue)

	text, err := h.service.PackageToMarkdown(ctx, data, mode)
	if err != nil {
		h.writeConversionError(w, r, err, true)
		return
	}

	ext := ".md"
	if mode == markdown.ModeList {
		ext = "_list.md"
	}
	h.storeAndRespond(w, r, &storage.ArtifactRecord{
		Name:    replaceExt(name, ext),
		Kind:    storage.KindMarkdown,
		Content: []byte(text),
	})
	logger.InfoContext(ctx, "package upload converted", "name", name, "mode", string(mode), "markdown_bytes", len(text))
}

// Optimize round-trips an uploaded package through the restructuring
// transform and stores the optimized package artifact.
func (h *ConvertHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	name, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	pkg, err := h.service.Optimize(ctx, data)
	if err != nil {
		h.writeConversionError(w, r, err, true)
		return
	}

	h.storeAndRespond(w, r, &storage.ArtifactRecord{
		Name:    replaceExt(name, ".xmind"),
		Kind:    storage.KindPackage,
		Content: pkg,
	})
	logger.InfoContext(ctx, "package optimized", "name", name, "package_bytes", len(pkg))
}

// readUpload extracts the uploaded file from the multipart form,
// enforcing the configured size limit. On failure it writes the error
// response and returns ok=false.
func (h *ConvertHandler) readUpload(w http.ResponseWriter, r *http.Request) (name string, data []byte, ok bool) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			logger.WarnContext(ctx, "upload exceeds size limit", "limit", h.maxUploadBytes)
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", h.maxUploadBytes))
			return "", nil, false
		}
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing file field in upload", "error", err)
		writeError(w, http.StatusBadRequest, "file field is required")
		return "", nil, false
	}
	defer func() {
		_ = file.Close()
	}()

	data, err = io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return "", nil, false
	}

	return sanitizeFilename(header.Filename), data, true
}

// storeAndRespond saves the artifact and answers with its metadata.
func (h *ConvertHandler) storeAndRespond(w http.ResponseWriter, r *http.Request, record *storage.ArtifactRecord) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := h.artifacts.Save(ctx, record); err != nil {
		logger.ErrorContext(ctx, "failed to store artifact", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store conversion result")
		return
	}

	writeJSON(w, http.StatusCreated, ArtifactResponse{
		ID:          record.ID,
		Name:        record.Name,
		Kind:        record.Kind,
		Size:        len(record.Content),
		DownloadURL: "/api/artifacts/" + record.ID + "/download",
	})
}

// writeConversionError maps service errors onto HTTP statuses. When the
// input was a package upload, archive errors indicate a bad upload
// rather than a server fault.
func (h *ConvertHandler) writeConversionError(w http.ResponseWriter, r *http.Request, err error, packageInput bool) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *converter.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.WarnContext(ctx, "conversion request validation failed", "error", err)
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, xmind.ErrUnsupportedFormat):
		logger.WarnContext(ctx, "unsupported package upload", "error", err)
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, xmind.ErrMalformedContent):
		logger.WarnContext(ctx, "malformed package upload", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, xmind.ErrArchive) && packageInput:
		logger.WarnContext(ctx, "unreadable package upload", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorContext(ctx, "conversion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "conversion failed")
	}
}

// sanitizeFilename strips any path components from an uploaded
// filename, falling back to a generic name.
func sanitizeFilename(raw string) string {
	name := filepath.Base(filepath.FromSlash(strings.TrimSpace(raw)))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "document"
	}
	return name
}

// replaceExt swaps the filename extension.
func replaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
