package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promptforge/internal/domain"
)

// PromptRepositoryPG implements domain.PromptRepository on PostgreSQL.
type PromptRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPromptRepository creates a new prompt history repository backed by
// PostgreSQL.
func NewPromptRepository(pool *pgxpool.Pool) *PromptRepositoryPG {
	return &PromptRepositoryPG{pool: pool}
}

// EnsureSchema creates the history table when it does not exist yet.
func (r *PromptRepositoryPG) EnsureSchema(ctx context.Context) error {
	query := `
CREATE TABLE IF NOT EXISTS prompt_history (
    id UUID PRIMARY KEY,
    prompt TEXT NOT NULL,
    metadata JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
	_, err := r.pool.Exec(ctx, query)
	return err
}

// Save inserts a generated prompt record.
func (r *PromptRepositoryPG) Save(ctx context.Context, rec *domain.PromptRecord) error {
	meta, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	query := `
INSERT INTO prompt_history (id, prompt, metadata, created_at)
VALUES ($1, $2, $3, $4);
`
	_, err = r.pool.Exec(ctx, query, rec.ID, rec.Prompt, meta, rec.CreatedAt)
	return err
}

// List returns the most recent records first.
func (r *PromptRepositoryPG) List(ctx context.Context, limit int) ([]domain.PromptRecord, error) {
	query := `
SELECT id, prompt, metadata, created_at
FROM prompt_history
ORDER BY created_at DESC
LIMIT $1;
`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.PromptRecord
	for rows.Next() {
		var rec domain.PromptRecord
		var meta []byte
		if err := rows.Scan(&rec.ID, &rec.Prompt, &meta, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(meta, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByID fetches a single record by its identifier.
func (r *PromptRepositoryPG) GetByID(ctx context.Context, id string) (*domain.PromptRecord, error) {
	query := `
SELECT id, prompt, metadata, created_at
FROM prompt_history
WHERE id = $1;
`
	row := r.pool.QueryRow(ctx, query, id)
	var rec domain.PromptRecord
	var meta []byte
	if err := row.Scan(&rec.ID, &rec.Prompt, &meta, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(meta, &rec.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return &rec, nil
}

var _ domain.PromptRepository = (*PromptRepositoryPG)(nil)
