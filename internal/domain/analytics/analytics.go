package analytics

import "context"

type PlacementSummary struct {
	Placed int `json:"placed"`
	Total  int `json:"total"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// Repository is read-only aggregation over applications and students.
// Every query must tolerate zero rows.
type Repository interface {
	PlacementSummary(ctx context.Context) (*PlacementSummary, error)
	InternshipStatusCounts(ctx context.Context) ([]StatusCount, error)
	CompanyPlacementCounts(ctx context.Context) ([]CompanyCount, error)
}
