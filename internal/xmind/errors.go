package xmind

import "errors"

var (
	// ErrUnsupportedFormat is returned when a package archive holds
	// neither a JSON nor an XML content entry.
	ErrUnsupportedFormat = errors.New("unsupported package format")
	// ErrMalformedContent is returned when a content entry exists but
	// cannot be parsed or yields no root topic.
	ErrMalformedContent = errors.New("malformed package content")
	// ErrArchive is returned when the zip container cannot be opened
	// or generated.
	ErrArchive = errors.New("package archive error")
)
