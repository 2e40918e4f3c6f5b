package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/company"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, record company.Company) (*company.Company, error) {
	record.ID = common.NewUUID()
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO companies (id, name, industry, location, website, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.Name, record.Industry, record.Location, record.Website, record.Description, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return &record, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, industry, location, website, description, created_at, updated_at FROM companies WHERE id = $1`, id)
	var record company.Company
	if err := row.Scan(&record.ID, &record.Name, &record.Industry, &record.Location, &record.Website, &record.Description, &record.CreatedAt, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	return &record, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, industry, location, website, description, created_at, updated_at FROM companies ORDER BY name, id`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list companies", err)
	}
	defer rows.Close()
	var items []company.Company
	for rows.Next() {
		var record company.Company
		if err := rows.Scan(&record.ID, &record.Name, &record.Industry, &record.Location, &record.Website, &record.Description, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan company", err)
		}
		items = append(items, record)
	}
	return items, nil
}

func (r *CompanyRepository) Update(ctx context.Context, record company.Company) (*company.Company, error) {
	record.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET name = $1, industry = $2, location = $3, website = $4, description = $5, updated_at = $6 WHERE id = $7`,
		record.Name, record.Industry, record.Location, record.Website, record.Description, record.UpdatedAt, record.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update company", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update company", err)
	}
	if affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	return r.GetByID(ctx, record.ID)
}

func (r *CompanyRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete company", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete company", err)
	}
	if affected == 0 {
		return common.NewError(common.CodeNotFound, "company not found", nil)
	}
	return nil
}
