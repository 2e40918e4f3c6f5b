package app

import (
	"context"

	"placecell/internal/domain/analytics"
)

type AnalyticsService struct {
	repo analytics.Repository
}

func NewAnalyticsService(repo analytics.Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) PlacementSummary(ctx context.Context) (*analytics.PlacementSummary, error) {
	return s.repo.PlacementSummary(ctx)
}

func (s *AnalyticsService) InternshipStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return s.repo.InternshipStatusCounts(ctx)
}

func (s *AnalyticsService) CompanyPlacementCounts(ctx context.Context) ([]analytics.CompanyCount, error) {
	return s.repo.CompanyPlacementCounts(ctx)
}
