package storage

import "time"

// Artifact kinds stored by the conversion endpoints.
const (
	KindMarkdown = "markdown"
	KindPackage  = "package"
)

// ArtifactRecord represents a converted output kept for a subsequent
// download.
type ArtifactRecord struct {
	ID        string // UUID
	Name      string // Suggested download filename
	Kind      string // KindMarkdown or KindPackage
	Content   []byte // Converted bytes
	CreatedAt time.Time
}
