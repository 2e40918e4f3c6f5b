package app

import (
	"context"
	"strings"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/record"
)

// RecordService manages faculty-entered internship and placement facts.
// These rows are independent of the application lifecycle: an approved
// application never creates one automatically.
type RecordService struct {
	repo record.Repository
}

func NewRecordService(repo record.Repository) *RecordService {
	return &RecordService{repo: repo}
}

func (s *RecordService) AddInternship(ctx context.Context, studentID common.UUID, companyName, role string, startDate, endDate time.Time) (*record.Internship, error) {
	fields := map[string]string{}
	if strings.TrimSpace(companyName) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(role) == "" {
		fields["role"] = "role is required"
	}
	if !endDate.IsZero() && !startDate.IsZero() && endDate.Before(startDate) {
		fields["endDate"] = "endDate must not be before startDate"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("missing fields", fields)
	}
	return s.repo.CreateInternship(ctx, record.Internship{
		StudentID: studentID,
		Company:   strings.TrimSpace(companyName),
		Role:      strings.TrimSpace(role),
		StartDate: startDate,
		EndDate:   endDate,
	})
}

func (s *RecordService) ListInternships(ctx context.Context) ([]record.InternshipDetail, error) {
	return s.repo.ListInternships(ctx)
}

func (s *RecordService) AddPlacement(ctx context.Context, studentID common.UUID, companyName string, pkg float64, status string) (*record.Placement, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, common.NewValidationError("missing fields", map[string]string{"company": "company is required"})
	}
	return s.repo.CreatePlacement(ctx, record.Placement{
		StudentID: studentID,
		Company:   strings.TrimSpace(companyName),
		Package:   pkg,
		Status:    strings.TrimSpace(status),
	})
}

func (s *RecordService) ListPlacements(ctx context.Context) ([]record.PlacementDetail, error) {
	return s.repo.ListPlacements(ctx)
}

func (s *RecordService) AddFaculty(ctx context.Context, name, email, department string) (*record.Faculty, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.NewValidationError("missing fields", map[string]string{"name": "name is required"})
	}
	return s.repo.CreateFaculty(ctx, record.Faculty{
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Department: strings.TrimSpace(department),
	})
}

func (s *RecordService) ListFaculty(ctx context.Context) ([]record.Faculty, error) {
	return s.repo.ListFaculty(ctx)
}
