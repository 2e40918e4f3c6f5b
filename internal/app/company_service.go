package app

import (
	"context"
	"strings"

	"placecell/internal/common"
	"placecell/internal/domain/company"
)

type CompanyService struct {
	repo company.Repository
}

func NewCompanyService(repo company.Repository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) Create(ctx context.Context, record company.Company) (*company.Company, error) {
	if strings.TrimSpace(record.Name) == "" {
		return nil, common.NewValidationError("missing fields", map[string]string{"name": "name is required"})
	}
	return s.repo.Create(ctx, record)
}

func (s *CompanyService) List(ctx context.Context) ([]company.Company, error) {
	return s.repo.List(ctx)
}

func (s *CompanyService) Update(ctx context.Context, record company.Company) (*company.Company, error) {
	if strings.TrimSpace(record.Name) == "" {
		return nil, common.NewValidationError("missing fields", map[string]string{"name": "name is required"})
	}
	return s.repo.Update(ctx, record)
}

// Delete does not check for applications or records referencing the
// company; they keep a dangling company id afterwards.
func (s *CompanyService) Delete(ctx context.Context, id common.UUID) error {
	return s.repo.Delete(ctx, id)
}
