package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/user"
	"placecell/internal/security"
)

func newTestChain(t *testing.T, provider *security.JWTProvider, roles ...user.Role) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	var handler http.Handler = inner
	if len(roles) > 0 {
		handler = RequireRole(roles...)(handler)
	}
	return NewAuthMiddleware(provider).Authenticate(handler)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	handler := newTestChain(t, provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/applications", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	handler := newTestChain(t, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	expired := security.NewJWTProvider("secret", -time.Minute)
	valid := security.NewJWTProvider("secret", time.Hour)
	token, _, err := expired.Generate(common.NewUUID(), "student", "priya", "Priya Sharma")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	handler := newTestChain(t, valid)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	token, _, err := provider.Generate(common.NewUUID(), "student", "priya", "Priya Sharma")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	handler := newTestChain(t, provider, user.RoleFaculty, user.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student on reviewer route, got %d", rec.Code)
	}
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	token, _, err := provider.Generate(common.NewUUID(), "faculty", "rao", "Dr. Rao")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	handler := newTestChain(t, provider, user.RoleFaculty, user.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for faculty, got %d", rec.Code)
	}
}

func TestAuthenticate_PopulatesContext(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	userID := common.NewUUID()
	token, _, err := provider.Generate(userID, "admin", "admin", "Admin User")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var gotID common.UUID
	var gotRole user.Role
	var gotName string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		gotName = FullNameFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := NewAuthMiddleware(provider).Authenticate(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotID != userID {
		t.Fatalf("expected user id %s in context, got %s", userID, gotID)
	}
	if gotRole != user.RoleAdmin {
		t.Fatalf("expected admin role in context, got %s", gotRole)
	}
	if gotName != "Admin User" {
		t.Fatalf("expected full name in context, got %s", gotName)
	}
}
