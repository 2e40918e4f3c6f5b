package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/record"
)

type fakeRecordRepo struct {
	mu          sync.Mutex
	internships []record.Internship
	placements  []record.Placement
	faculty     []record.Faculty
}

func (r *fakeRecordRepo) CreateInternship(ctx context.Context, row record.Internship) (*record.Internship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.ID = common.NewUUID()
	r.internships = append(r.internships, row)
	copy := row
	return &copy, nil
}

func (r *fakeRecordRepo) ListInternships(ctx context.Context) ([]record.InternshipDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []record.InternshipDetail
	for _, row := range r.internships {
		items = append(items, record.InternshipDetail{Internship: row})
	}
	return items, nil
}

func (r *fakeRecordRepo) CreatePlacement(ctx context.Context, row record.Placement) (*record.Placement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.ID = common.NewUUID()
	r.placements = append(r.placements, row)
	copy := row
	return &copy, nil
}

func (r *fakeRecordRepo) ListPlacements(ctx context.Context) ([]record.PlacementDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []record.PlacementDetail
	for _, row := range r.placements {
		items = append(items, record.PlacementDetail{Placement: row})
	}
	return items, nil
}

func (r *fakeRecordRepo) CreateFaculty(ctx context.Context, row record.Faculty) (*record.Faculty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.ID = common.NewUUID()
	r.faculty = append(r.faculty, row)
	copy := row
	return &copy, nil
}

func (r *fakeRecordRepo) ListFaculty(ctx context.Context) ([]record.Faculty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]record.Faculty(nil), r.faculty...), nil
}

func TestRecordServiceAddInternship_RejectsReversedDates(t *testing.T) {
	service := NewRecordService(&fakeRecordRepo{})

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -2, 0)
	_, err := service.AddInternship(context.Background(), common.NewUUID(), "Acme Corp", "SDE Intern", start, end)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRecordServiceAddInternship_AllowsOpenEnded(t *testing.T) {
	repo := &fakeRecordRepo{}
	service := NewRecordService(repo)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := service.AddInternship(context.Background(), common.NewUUID(), "Acme Corp", "SDE Intern", start, time.Time{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Company != "Acme Corp" {
		t.Fatalf("expected company preserved, got %s", created.Company)
	}
}

func TestRecordServiceAddPlacement_RequiresCompany(t *testing.T) {
	service := NewRecordService(&fakeRecordRepo{})

	_, err := service.AddPlacement(context.Background(), common.NewUUID(), "  ", 12.5, "Offered")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRecordServiceAddFaculty(t *testing.T) {
	repo := &fakeRecordRepo{}
	service := NewRecordService(repo)

	created, err := service.AddFaculty(context.Background(), " Dr. Rao ", "rao@example.edu", "CSE")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Name != "Dr. Rao" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if _, err := service.AddFaculty(context.Background(), "", "", ""); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
}
