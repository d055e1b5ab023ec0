package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// ArtifactStore defines the interface for artifact storage operations.
type ArtifactStore interface {
	// Save inserts an artifact, generating an ID when the record has none.
	Save(ctx context.Context, artifact *ArtifactRecord) error
	// Get gets an artifact by ID. Returns nil and ErrNotFound if not found.
	Get(ctx context.Context, id string) (*ArtifactRecord, error)
	// Latest returns the most recently saved artifact.
	// Returns nil and ErrNotFound when the store is empty.
	Latest(ctx context.Context) (*ArtifactRecord, error)
}

// ArtifactRepo provides methods for artifact operations.
// It implements the ArtifactStore interface.
type ArtifactRepo struct {
	db *sql.DB
}

// NewArtifactRepo creates a new ArtifactRepo.
func NewArtifactRepo(db *sql.DB) *ArtifactRepo {
	return &ArtifactRepo{db: db}
}

// Save inserts an artifact. A missing ID is generated; CreatedAt is set
// by the database.
func (r *ArtifactRepo) Save(ctx context.Context, artifact *ArtifactRecord) error {
	if artifact.ID == "" {
		artifact.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO artifacts (id, name, kind, content, created_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		artifact.ID, artifact.Name, artifact.Kind, artifact.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to insert artifact: %w", err)
	}
	return nil
}

// Get gets an artifact by ID. Returns nil and ErrNotFound if not found.
func (r *ArtifactRepo) Get(ctx context.Context, id string) (*ArtifactRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, kind, content, created_at FROM artifacts WHERE id = ?", id)
	return scanArtifact(row)
}

// Latest returns the most recently saved artifact.
func (r *ArtifactRepo) Latest(ctx context.Context) (*ArtifactRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, kind, content, created_at FROM artifacts ORDER BY created_at DESC, id DESC LIMIT 1")
	return scanArtifact(row)
}

func scanArtifact(row *sql.Row) (*ArtifactRecord, error) {
	var artifact ArtifactRecord
	var createdAtStr string

	err := row.Scan(&artifact.ID, &artifact.Name, &artifact.Kind, &artifact.Content, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query artifact: %w", err)
	}

	// Parse created_at DATETIME string
	artifact.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAtStr)
	if err != nil {
		// Try alternative format (SQLite might use different format)
		artifact.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
	}

	return &artifact, nil
}
