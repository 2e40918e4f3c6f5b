package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"placecell/internal/app"
	"placecell/internal/common"
	"placecell/internal/domain/analytics"
	"placecell/internal/http/handlers"
	httpmw "placecell/internal/http/middleware"
	"placecell/internal/security"
)

type staticAnalyticsRepo struct{}

func (staticAnalyticsRepo) PlacementSummary(ctx context.Context) (*analytics.PlacementSummary, error) {
	return &analytics.PlacementSummary{}, nil
}

func (staticAnalyticsRepo) InternshipStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return []analytics.StatusCount{}, nil
}

func (staticAnalyticsRepo) CompanyPlacementCounts(ctx context.Context) ([]analytics.CompanyCount, error) {
	return []analytics.CompanyCount{}, nil
}

func TestRouterHealthPaths(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	router := NewRouter(RouterDependencies{AuthMiddleware: httpmw.NewAuthMiddleware(provider)})

	for _, path := range []string{"/health", "/healthz", "/api/health"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestRouterAnalyticsPaths(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	token, _, err := provider.Generate(common.NewUUID(), "faculty", "rao", "Dr. Rao")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	router := NewRouter(RouterDependencies{
		AnalyticsHandler: handlers.NewAnalyticsHandler(app.NewAnalyticsService(staticAnalyticsRepo{})),
		AuthMiddleware:   httpmw.NewAuthMiddleware(provider),
	})

	for _, path := range []string{
		"/api/analytics/placement",
		"/api/analytics/internship",
		"/api/analytics/company-placements",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestRouterUnknownAPIPathIs404NotPanic(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	token, _, err := provider.Generate(common.NewUUID(), "faculty", "rao", "Dr. Rao")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	router := NewRouter(RouterDependencies{AuthMiddleware: httpmw.NewAuthMiddleware(provider)})

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/nonsense", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
