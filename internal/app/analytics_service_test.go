package app

import (
	"context"
	"testing"

	"placecell/internal/domain/analytics"
)

type fakeAnalyticsRepo struct {
	summary   analytics.PlacementSummary
	statuses  []analytics.StatusCount
	companies []analytics.CompanyCount
}

func (r *fakeAnalyticsRepo) PlacementSummary(ctx context.Context) (*analytics.PlacementSummary, error) {
	copy := r.summary
	return &copy, nil
}

func (r *fakeAnalyticsRepo) InternshipStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return r.statuses, nil
}

func (r *fakeAnalyticsRepo) CompanyPlacementCounts(ctx context.Context) ([]analytics.CompanyCount, error) {
	return r.companies, nil
}

func TestAnalyticsServiceZeroRows(t *testing.T) {
	service := NewAnalyticsService(&fakeAnalyticsRepo{statuses: []analytics.StatusCount{}, companies: []analytics.CompanyCount{}})

	summary, err := service.PlacementSummary(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if summary.Placed != 0 || summary.Total != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
	statuses, err := service.InternshipStatusCounts(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if statuses == nil || len(statuses) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", statuses)
	}
	companies, err := service.CompanyPlacementCounts(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if companies == nil || len(companies) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", companies)
	}
}

func TestAnalyticsServiceReflectsCurrentCounts(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		summary:  analytics.PlacementSummary{Placed: 2, Total: 10},
		statuses: []analytics.StatusCount{{Status: "Ongoing", Count: 3}},
		companies: []analytics.CompanyCount{
			{Company: "Acme Corp", Count: 2},
		},
	}
	service := NewAnalyticsService(repo)

	summary, err := service.PlacementSummary(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if summary.Placed != 2 || summary.Total != 10 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	// a new approval shows up on the next read, nothing is cached
	repo.summary.Placed = 3
	summary, err = service.PlacementSummary(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if summary.Placed != 3 {
		t.Fatalf("expected recomputed count 3, got %d", summary.Placed)
	}
}
