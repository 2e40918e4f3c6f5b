package application

import (
	"context"
	"time"

	"placecell/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	// ListAll returns every application joined with student and company,
	// newest applied first, ties broken by id.
	ListAll(ctx context.Context) ([]Detail, error)
	// ListByStudent returns one student's applications joined with company,
	// same ordering as ListAll.
	ListByStudent(ctx context.Context, studentID common.UUID) ([]Detail, error)
	// Review overwrites status, reviewed_at, reviewed_by and comments in one
	// statement. Concurrent reviews race last-write-wins; there is no version
	// check. Unknown id yields CodeNotFound.
	Review(ctx context.Context, id common.UUID, status Status, reviewedBy, comments string, reviewedAt time.Time) (*Application, error)
	NotifyTarget(ctx context.Context, id common.UUID) (*NotifyTarget, error)
}
