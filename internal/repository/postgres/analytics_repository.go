package postgres

import (
	"context"
	"database/sql"

	"placecell/internal/common"
	"placecell/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) PlacementSummary(ctx context.Context) (*analytics.PlacementSummary, error) {
	var summary analytics.PlacementSummary
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT student_id) FROM applications WHERE type = 'Placement' AND status = 'Approved'`)
	if err := row.Scan(&summary.Placed); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count placed students", err)
	}
	row = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`)
	if err := row.Scan(&summary.Total); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count students", err)
	}
	return &summary, nil
}

func (r *AnalyticsRepository) InternshipStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*)
		FROM applications
		WHERE type = 'Internship' AND status IN ('Approved', 'Completed', 'Dropped', 'Ongoing')
		GROUP BY status
		ORDER BY status`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count internship statuses", err)
	}
	defer rows.Close()
	items := []analytics.StatusCount{}
	for rows.Next() {
		var item analytics.StatusCount
		if err := rows.Scan(&item.Status, &item.Count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan status count", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *AnalyticsRepository) CompanyPlacementCounts(ctx context.Context) ([]analytics.CompanyCount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT c.name, COUNT(*)
		FROM applications a
		JOIN companies c ON c.id = a.company_id
		WHERE a.type = 'Placement' AND a.status = 'Approved'
		GROUP BY c.name
		ORDER BY c.name`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count company placements", err)
	}
	defer rows.Close()
	items := []analytics.CompanyCount{}
	for rows.Next() {
		var item analytics.CompanyCount
		if err := rows.Scan(&item.Company, &item.Count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan company count", err)
		}
		items = append(items, item)
	}
	return items, nil
}
