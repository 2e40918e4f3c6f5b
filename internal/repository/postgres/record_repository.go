package postgres

import (
	"context"
	"database/sql"

	"placecell/internal/common"
	"placecell/internal/domain/record"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) CreateInternship(ctx context.Context, row record.Internship) (*record.Internship, error) {
	row.ID = common.NewUUID()
	_, err := r.db.ExecContext(ctx, `INSERT INTO internships (id, student_id, company, role, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		row.ID, row.StudentID, row.Company, row.Role, row.StartDate, row.EndDate)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create internship", err)
	}
	return &row, nil
}

func (r *RecordRepository) ListInternships(ctx context.Context) ([]record.InternshipDetail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT i.id, i.student_id, i.company, i.role, i.start_date, i.end_date,
			s.roll_number, s.first_name, s.last_name
		FROM internships i
		JOIN students s ON s.id = i.student_id
		ORDER BY i.start_date DESC, i.id`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list internships", err)
	}
	defer rows.Close()
	var items []record.InternshipDetail
	for rows.Next() {
		var item record.InternshipDetail
		if err := rows.Scan(&item.ID, &item.StudentID, &item.Company, &item.Role, &item.StartDate, &item.EndDate,
			&item.RollNumber, &item.FirstName, &item.LastName); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan internship", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *RecordRepository) CreatePlacement(ctx context.Context, row record.Placement) (*record.Placement, error) {
	row.ID = common.NewUUID()
	_, err := r.db.ExecContext(ctx, `INSERT INTO placements (id, student_id, company, package, status)
		VALUES ($1, $2, $3, $4, $5)`,
		row.ID, row.StudentID, row.Company, row.Package, row.Status)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create placement", err)
	}
	return &row, nil
}

func (r *RecordRepository) ListPlacements(ctx context.Context) ([]record.PlacementDetail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT p.id, p.student_id, p.company, p.package, p.status,
			s.roll_number, s.first_name, s.last_name
		FROM placements p
		JOIN students s ON s.id = p.student_id
		ORDER BY p.id`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list placements", err)
	}
	defer rows.Close()
	var items []record.PlacementDetail
	for rows.Next() {
		var item record.PlacementDetail
		if err := rows.Scan(&item.ID, &item.StudentID, &item.Company, &item.Package, &item.Status,
			&item.RollNumber, &item.FirstName, &item.LastName); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan placement", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *RecordRepository) CreateFaculty(ctx context.Context, row record.Faculty) (*record.Faculty, error) {
	row.ID = common.NewUUID()
	_, err := r.db.ExecContext(ctx, `INSERT INTO faculty (id, name, email, department) VALUES ($1, $2, $3, $4)`,
		row.ID, row.Name, row.Email, row.Department)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create faculty", err)
	}
	return &row, nil
}

func (r *RecordRepository) ListFaculty(ctx context.Context) ([]record.Faculty, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, department FROM faculty ORDER BY name, id`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list faculty", err)
	}
	defer rows.Close()
	var items []record.Faculty
	for rows.Next() {
		var item record.Faculty
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Department); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan faculty", err)
		}
		items = append(items, item)
	}
	return items, nil
}
