package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mdmind/internal/converter"
	"mdmind/internal/handlers"
	"mdmind/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Converter      converter.Service
	Artifacts      storage.ArtifactStore
	DB             *sql.DB
	MaxUploadBytes int64
	IndexHTML      string // Embedded HTML content
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(LoggerMiddleware)
	r.Use(CORS)

	convertHandler := handlers.NewConvertHandler(deps.Converter, deps.Artifacts, deps.MaxUploadBytes)
	restructureHandler := handlers.NewRestructureHandler(deps.Converter)
	artifactHandler := handlers.NewArtifactHandler(deps.Artifacts)
	previewHandler := handlers.NewPreviewHandler(deps.Artifacts)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/convert/package", convertHandler.MarkdownToPackage)
		r.Post("/convert/markdown", convertHandler.PackageToMarkdown)
		r.Post("/optimize", convertHandler.Optimize)
		r.Method(http.MethodPost, "/restructure", restructureHandler)
		r.Get("/artifacts/{id}", artifactHandler.Metadata)
		r.Get("/artifacts/{id}/download", artifactHandler.Download)
		r.Method(http.MethodGet, "/artifacts/{id}/preview", previewHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
