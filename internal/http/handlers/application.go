package handlers

import (
	"net/http"
	"strings"
	"time"

	"placecell/internal/app"
	"placecell/internal/common"
	"placecell/internal/http/middleware"
	"placecell/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type submitRequest struct {
	StudentID string `json:"studentId"`
	CompanyID string `json:"companyId"`
	Role      string `json:"role"`
	Type      string `json:"type"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	studentID := callerID
	if strings.TrimSpace(req.StudentID) != "" {
		parsed, err := common.ParseUUID(req.StudentID)
		if err != nil {
			response.Error(w, common.NewValidationError("invalid request", map[string]string{"studentId": "invalid uuid"}))
			return
		}
		if parsed != callerID {
			response.Error(w, common.NewError(common.CodeForbidden, "cannot submit for another student", nil))
			return
		}
		studentID = parsed
	}
	if strings.TrimSpace(req.CompanyID) == "" {
		response.Error(w, common.NewValidationError("missing fields", map[string]string{"companyId": "companyId is required"}))
		return
	}
	companyID, err := common.ParseUUID(req.CompanyID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"companyId": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		key := "apply:" + studentID.String()
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Submit(r.Context(), studentID, companyID, req.Role, req.Type)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Application submitted successfully",
		"application": created,
	})
}

func (h *ApplicationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.applications.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) ListForStudent(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	callerRole, _ := middleware.RoleFromContext(r.Context())
	studentID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListForStudent(r.Context(), callerID, callerRole, studentID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type reviewRequest struct {
	Status     string `json:"status"`
	ReviewedBy string `json:"reviewedBy"`
	Comments   string `json:"comments"`
}

func (h *ApplicationHandler) Review(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	reviewedBy := strings.TrimSpace(req.ReviewedBy)
	if reviewedBy == "" {
		reviewedBy = middleware.FullNameFromContext(r.Context())
	}
	updated, err := h.applications.Review(r.Context(), applicationID, req.Status, reviewedBy, req.Comments)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Application reviewed successfully",
		"application": updated,
	})
}
