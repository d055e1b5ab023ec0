// Package converter composes the markdown and xmind codecs into the
// conversion pipelines invoked by the HTTP layer and the CLI.
package converter

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks -mock_names=Service=MockService mdmind/internal/converter Service

import (
	"context"
	"log/slog"

	"mdmind/internal/contextutil"
	"mdmind/internal/markdown"
	"mdmind/internal/xmind"
)

// Service exposes the conversion pipelines. Every call is a pure
// transform from input to output or error; calls share no state and
// may run concurrently.
type Service interface {
	// PackageToMarkdown renders a mind-map package as markdown text.
	PackageToMarkdown(ctx context.Context, data []byte, mode markdown.Mode) (string, error)
	// MarkdownToPackage parses markdown text and serializes it as a
	// mind-map package.
	MarkdownToPackage(ctx context.Context, text string) ([]byte, error)
	// Restructure promotes level-3 headings to level-2 sections.
	Restructure(ctx context.Context, text string) (string, error)
	// Optimize round-trips a package through markdown rendering, the
	// restructuring transform and re-parsing, yielding a new package.
	Optimize(ctx context.Context, data []byte) ([]byte, error)
}

// service implements Service.
type service struct {
	logger *slog.Logger
}

// NewService creates a new conversion Service.
func NewService() Service {
	return &service{logger: slog.Default()}
}

// PackageToMarkdown reads a package and renders every sheet in the
// requested mode.
func (s *service) PackageToMarkdown(ctx context.Context, data []byte, mode markdown.Mode) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(data) == 0 {
		logger.WarnContext(ctx, "empty package buffer in conversion request")
		return "", &ValidationError{Field: "package", Message: "cannot be empty"}
	}

	trees, err := xmind.Read(data)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read package", "error", err)
		return "", WrapError(err, "failed to read package")
	}

	text := markdown.RenderSheets(trees, mode)
	logger.InfoContext(ctx, "package converted to markdown", "sheets", len(trees), "mode", string(mode), "output_bytes", len(text))
	return text, nil
}

// MarkdownToPackage parses markdown into a tree and packages it.
// Parsing never fails; only archive generation can.
func (s *service) MarkdownToPackage(ctx context.Context, text string) ([]byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	root := markdown.Parse(text)
	data, err := xmind.Write(root)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate package", "error", err)
		return nil, WrapError(err, "failed to generate package")
	}

	logger.InfoContext(ctx, "markdown converted to package", "topics", root.Count(), "package_bytes", len(data))
	return data, nil
}

// Restructure applies the heading promotion transform. It cannot fail.
func (s *service) Restructure(ctx context.Context, text string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	out := markdown.Restructure(text)
	logger.InfoContext(ctx, "markdown restructured", "input_bytes", len(text), "output_bytes", len(out))
	return out, nil
}

// Optimize chains reader, header-mode renderer, restructurer, parser
// and writer into one round trip.
func (s *service) Optimize(ctx context.Context, data []byte) ([]byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(data) == 0 {
		logger.WarnContext(ctx, "empty package buffer in optimize request")
		return nil, &ValidationError{Field: "package", Message: "cannot be empty"}
	}

	trees, err := xmind.Read(data)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read package for optimization", "error", err)
		return nil, WrapError(err, "failed to read package")
	}

	text := markdown.Restructure(markdown.RenderSheets(trees, markdown.ModeHeader))
	root := markdown.Parse(text)

	out, err := xmind.Write(root)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate optimized package", "error", err)
		return nil, WrapError(err, "failed to generate package")
	}

	logger.InfoContext(ctx, "package optimized", "sheets", len(trees), "topics", root.Count(), "package_bytes", len(out))
	return out, nil
}
