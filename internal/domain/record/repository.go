package record

import "context"

type Repository interface {
	CreateInternship(ctx context.Context, row Internship) (*Internship, error)
	ListInternships(ctx context.Context) ([]InternshipDetail, error)
	CreatePlacement(ctx context.Context, row Placement) (*Placement, error)
	ListPlacements(ctx context.Context) ([]PlacementDetail, error)
	CreateFaculty(ctx context.Context, row Faculty) (*Faculty, error)
	ListFaculty(ctx context.Context) ([]Faculty, error)
}
