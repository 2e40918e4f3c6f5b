package user

import (
	"context"

	"placecell/internal/common"
)

type Repository interface {
	Create(ctx context.Context, account User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
