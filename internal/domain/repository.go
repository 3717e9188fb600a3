package domain

import "context"

// PromptRepository stores generated prompts. The assembler never owns
// history; callers decide whether a store is wired in at all.
type PromptRepository interface {
	Save(ctx context.Context, rec *PromptRecord) error
	List(ctx context.Context, limit int) ([]PromptRecord, error)
	GetByID(ctx context.Context, id string) (*PromptRecord, error)
}
