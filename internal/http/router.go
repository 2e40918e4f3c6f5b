package http

import (
	"net/http"
	"strings"
	"time"

	"placecell/internal/domain/user"
	"placecell/internal/http/handlers"
	"placecell/internal/http/metrics"
	httpmw "placecell/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	StudentHandler     *handlers.StudentHandler
	CompanyHandler     *handlers.CompanyHandler
	ApplicationHandler *handlers.ApplicationHandler
	RecordHandler      *handlers.RecordHandler
	AnalyticsHandler   *handlers.AnalyticsHandler
	AIHandler          *handlers.AIHandler
	MetricsHandler     *handlers.MetricsHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 10 << 20 // resumes arrive base64-encoded in the body

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && (path == "/health" || path == "/healthz" || path == "/api/health"):
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/recommendations":
			r.deps.AIHandler.Recommendations(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/keyphrases":
			r.deps.AIHandler.KeyPhrases(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/qna":
			r.deps.AIHandler.Answer(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	reviewer := httpmw.RequireRole(user.RoleFaculty, user.RoleAdmin)

	switch {
	case req.Method == http.MethodGet && path == "/api/me":
		r.deps.AuthHandler.Me(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/students":
		reviewer(http.HandlerFunc(r.deps.StudentHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/students":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.StudentHandler.Add)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/upload":
		r.deps.StudentHandler.Upload(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/companies":
		r.deps.CompanyHandler.List(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/companies":
		reviewer(http.HandlerFunc(r.deps.CompanyHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/companies/"):
		reviewer(http.HandlerFunc(r.deps.CompanyHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/companies/"):
		reviewer(http.HandlerFunc(r.deps.CompanyHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/applications":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Submit)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/applications":
		reviewer(http.HandlerFunc(r.deps.ApplicationHandler.ListAll)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/applications/"):
		r.deps.ApplicationHandler.ListForStudent(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/applications/"):
		reviewer(http.HandlerFunc(r.deps.ApplicationHandler.Review)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/internships":
		r.deps.RecordHandler.ListInternships(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/internships":
		reviewer(http.HandlerFunc(r.deps.RecordHandler.AddInternship)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/placements":
		r.deps.RecordHandler.ListPlacements(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/placements":
		reviewer(http.HandlerFunc(r.deps.RecordHandler.AddPlacement)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/faculty":
		reviewer(http.HandlerFunc(r.deps.RecordHandler.ListFaculty)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/faculty":
		reviewer(http.HandlerFunc(r.deps.RecordHandler.AddFaculty)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/analytics/placement":
		reviewer(http.HandlerFunc(r.deps.AnalyticsHandler.PlacementSummary)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/analytics/internship":
		reviewer(http.HandlerFunc(r.deps.AnalyticsHandler.InternshipStatusCounts)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/analytics/company-placements":
		reviewer(http.HandlerFunc(r.deps.AnalyticsHandler.CompanyPlacementCounts)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
