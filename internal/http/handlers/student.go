package handlers

import (
	"net/http"

	"placecell/internal/app"
	"placecell/internal/http/middleware"
	"placecell/internal/http/response"
)

type StudentHandler struct {
	students *app.StudentService
}

func NewStudentHandler(students *app.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

type addStudentRequest struct {
	RollNumber     string `json:"rollNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	ResumeFileName string `json:"resumeFileName"`
	ResumeContent  string `json:"resumeContent"`
}

func (h *StudentHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req addStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.students.Add(r.Context(), app.AddStudentInput{
		UserID:        userID,
		RollNumber:    req.RollNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ResumeFile:    req.ResumeFileName,
		ResumeContent: req.ResumeContent,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Student added successfully",
		"resumeUrl": created.ResumeURL,
	})
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.students.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type uploadRequest struct {
	FileName    string `json:"fileName"`
	FileContent string `json:"fileContent"`
}

func (h *StudentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	url, err := h.students.Upload(r.Context(), req.FileName, req.FileContent)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"url": url})
}
