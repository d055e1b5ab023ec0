package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"mdmind/internal/artifact"
	"mdmind/internal/config"
	"mdmind/internal/converter"
	"mdmind/internal/http"
	"mdmind/internal/storage"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>mdmind</title>
</head>
<body>
  <h1>mdmind</h1>
  <p>Markdown ⇄ mind-map package conversion service.</p>
  <ul>
    <li>POST /api/convert/package — markdown upload → mind-map package</li>
    <li>POST /api/convert/markdown — package upload → markdown (?mode=header|list)</li>
    <li>POST /api/optimize — package upload → restructured package</li>
    <li>POST /api/restructure — JSON {"markdown": ...} → restructured markdown</li>
    <li>GET /api/artifacts/latest/download — download the last conversion</li>
  </ul>
</body>
</html>`

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Artifact store with an LRU in front for the download-after-convert path
	artifactRepo := storage.NewArtifactRepo(db)
	artifacts, err := artifact.NewCache(artifactRepo, cfg.ArtifactCacheSize)
	if err != nil {
		log.Fatalf("Failed to create artifact cache: %v", err)
	}
	slog.Info("Artifact store ready", "cache_size", cfg.ArtifactCacheSize)

	// Conversion service (pure; all state lives in the artifact store)
	converterService := converter.NewService()

	// Create router with dependencies
	deps := &http.Deps{
		Converter:      converterService,
		Artifacts:      artifacts,
		DB:             db,
		MaxUploadBytes: cfg.MaxUploadBytes,
		IndexHTML:      indexHTML,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
