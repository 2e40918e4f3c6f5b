package student

import (
	"context"

	"placecell/internal/common"
)

type Repository interface {
	// Upsert creates or replaces the profile keyed by the owning user's id.
	// Re-uploading a resume overwrites the stored reference.
	Upsert(ctx context.Context, record Student) (*Student, error)
	GetByID(ctx context.Context, id common.UUID) (*Student, error)
	List(ctx context.Context) ([]Student, error)
}
