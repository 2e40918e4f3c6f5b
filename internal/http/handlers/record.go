package handlers

import (
	"net/http"
	"strings"
	"time"

	"placecell/internal/app"
	"placecell/internal/common"
	"placecell/internal/http/response"
)

type RecordHandler struct {
	records *app.RecordService
}

func NewRecordHandler(records *app.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

const dateLayout = "2006-01-02"

func parseDate(value, field string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, common.NewValidationError("invalid request", map[string]string{field: "must be YYYY-MM-DD"})
	}
	return parsed, nil
}

type internshipRequest struct {
	StudentID string `json:"studentId"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *RecordHandler) AddInternship(w http.ResponseWriter, r *http.Request) {
	var req internshipRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	studentID, err := common.ParseUUID(req.StudentID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"studentId": "invalid uuid"}))
		return
	}
	startDate, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		response.Error(w, err)
		return
	}
	endDate, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.records.AddInternship(r.Context(), studentID, req.Company, req.Role, startDate, endDate)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Internship added successfully",
		"internship": created,
	})
}

func (h *RecordHandler) ListInternships(w http.ResponseWriter, r *http.Request) {
	items, err := h.records.ListInternships(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type placementRequest struct {
	StudentID string  `json:"studentId"`
	Company   string  `json:"company"`
	Package   float64 `json:"package"`
	Status    string  `json:"status"`
}

func (h *RecordHandler) AddPlacement(w http.ResponseWriter, r *http.Request) {
	var req placementRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	studentID, err := common.ParseUUID(req.StudentID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"studentId": "invalid uuid"}))
		return
	}
	created, err := h.records.AddPlacement(r.Context(), studentID, req.Company, req.Package, req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Placement added successfully",
		"placement": created,
	})
}

func (h *RecordHandler) ListPlacements(w http.ResponseWriter, r *http.Request) {
	items, err := h.records.ListPlacements(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type facultyRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (h *RecordHandler) AddFaculty(w http.ResponseWriter, r *http.Request) {
	var req facultyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.records.AddFaculty(r.Context(), req.Name, req.Email, req.Department)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Faculty added successfully",
		"faculty": created,
	})
}

func (h *RecordHandler) ListFaculty(w http.ResponseWriter, r *http.Request) {
	items, err := h.records.ListFaculty(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
