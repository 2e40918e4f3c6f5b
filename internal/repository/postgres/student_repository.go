package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/student"
)

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Upsert(ctx context.Context, record student.Student) (*student.Student, error) {
	record.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO students (id, roll_number, first_name, last_name, email, resume_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET roll_number = EXCLUDED.roll_number, first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name, email = EXCLUDED.email, resume_url = EXCLUDED.resume_url`,
		record.ID, record.RollNumber, record.FirstName, record.LastName, record.Email, record.ResumeURL, record.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert student", err)
	}
	return r.GetByID(ctx, record.ID)
}

func (r *StudentRepository) GetByID(ctx context.Context, id common.UUID) (*student.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, roll_number, first_name, last_name, email, resume_url, created_at FROM students WHERE id = $1`, id)
	var record student.Student
	if err := row.Scan(&record.ID, &record.RollNumber, &record.FirstName, &record.LastName, &record.Email, &record.ResumeURL, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "student not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load student", err)
	}
	return &record, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]student.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, roll_number, first_name, last_name, email, resume_url, created_at FROM students ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list students", err)
	}
	defer rows.Close()
	var items []student.Student
	for rows.Next() {
		var record student.Student
		if err := rows.Scan(&record.ID, &record.RollNumber, &record.FirstName, &record.LastName, &record.Email, &record.ResumeURL, &record.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan student", err)
		}
		items = append(items, record)
	}
	return items, nil
}
