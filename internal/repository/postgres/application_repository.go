package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.AppliedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, student_id, company_id, role, type, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.StudentID, app.CompanyID, app.Role, app.Type, app.Status, app.AppliedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, student_id, company_id, role, type, status, applied_at, reviewed_at, reviewed_by, comments
		FROM applications WHERE id = $1`, id)
	var app application.Application
	if err := row.Scan(&app.ID, &app.StudentID, &app.CompanyID, &app.Role, &app.Type, &app.Status, &app.AppliedAt, &app.ReviewedAt, &app.ReviewedBy, &app.Comments); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.student_id, a.company_id, a.role, a.type, a.status, a.applied_at, a.reviewed_at, a.reviewed_by, a.comments,
			s.roll_number, s.first_name, s.last_name, c.name
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN companies c ON c.id = a.company_id
		ORDER BY a.applied_at DESC, a.id`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	items := []application.Detail{}
	for rows.Next() {
		var item application.Detail
		if err := rows.Scan(&item.ID, &item.StudentID, &item.CompanyID, &item.Role, &item.Type, &item.Status, &item.AppliedAt, &item.ReviewedAt, &item.ReviewedBy, &item.Comments,
			&item.RollNumber, &item.FirstName, &item.LastName, &item.CompanyName); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.student_id, a.company_id, a.role, a.type, a.status, a.applied_at, a.reviewed_at, a.reviewed_by, a.comments, c.name
		FROM applications a
		JOIN companies c ON c.id = a.company_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC, a.id`, studentID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list student applications", err)
	}
	defer rows.Close()
	items := []application.Detail{}
	for rows.Next() {
		var item application.Detail
		if err := rows.Scan(&item.ID, &item.StudentID, &item.CompanyID, &item.Role, &item.Type, &item.Status, &item.AppliedAt, &item.ReviewedAt, &item.ReviewedBy, &item.Comments, &item.CompanyName); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) Review(ctx context.Context, id common.UUID, status application.Status, reviewedBy, comments string, reviewedAt time.Time) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, reviewed_at = $2, reviewed_by = $3, comments = $4 WHERE id = $5`,
		status, reviewedAt, reviewedBy, comments, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to review application", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to review application", err)
	}
	if affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) NotifyTarget(ctx context.Context, id common.UUID) (*application.NotifyTarget, error) {
	row := r.db.QueryRowContext(ctx, `SELECT s.email, s.first_name, s.last_name, a.role, a.type, a.status, COALESCE(a.comments, ''), c.name
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN companies c ON c.id = a.company_id
		WHERE a.id = $1`, id)
	var target application.NotifyTarget
	if err := row.Scan(&target.Email, &target.FirstName, &target.LastName, &target.Role, &target.Type, &target.Status, &target.Comments, &target.CompanyName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load notification target", err)
	}
	return &target, nil
}
