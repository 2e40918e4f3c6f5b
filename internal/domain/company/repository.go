package company

import (
	"context"

	"placecell/internal/common"
)

type Repository interface {
	Create(ctx context.Context, record Company) (*Company, error)
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, record Company) (*Company, error)
	// Delete is unconditional: rows referencing the company are left dangling.
	Delete(ctx context.Context, id common.UUID) error
}
