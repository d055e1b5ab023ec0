package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"mdmind/internal/contextutil"
	"mdmind/internal/storage"
)

// PreviewHandler renders markdown artifacts as HTML pages.
type PreviewHandler struct {
	artifacts storage.ArtifactStore
	parser    goldmark.Markdown
	template  *template.Template
	logger    *slog.Logger
}

// previewPageData holds template data for rendered preview pages.
type previewPageData struct {
	Title   string
	Content template.HTML
}

// NewPreviewHandler creates a new handler for previewing markdown artifacts.
func NewPreviewHandler(artifacts storage.ArtifactStore) *PreviewHandler {
	tmpl := template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      color: #1f2933;
    }
    h1, h2, h3, h4 { color: #102a43; }
    blockquote {
      border-left: 4px solid #829ab1;
      padding-left: 1rem;
      margin-left: 0;
      color: #486581;
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
      background: #f0f4f8;
      padding: 2px 5px;
      border-radius: 4px;
    }
  </style>
</head>
<body>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &PreviewHandler{
		artifacts: artifacts,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Strikethrough,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithUnsafe(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
		logger:   slog.Default(),
	}
}

// ServeHTTP renders the requested markdown artifact as HTML.
func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	lookup := &ArtifactHandler{artifacts: h.artifacts, logger: h.logger}
	record, ok := lookup.lookup(w, r)
	if !ok {
		return
	}

	if record.Kind != storage.KindMarkdown {
		writeError(w, http.StatusBadRequest, "preview is only available for markdown artifacts")
		return
	}

	htmlContent, err := h.renderMarkdown(record.Content)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown preview", "id", record.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, previewPageData{
		Title:   record.Name,
		Content: template.HTML(htmlContent),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to execute preview template", "id", record.ID, "error", err)
	}
}

func (h *PreviewHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
