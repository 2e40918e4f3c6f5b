package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"placecell/internal/common"
	"placecell/internal/domain/student"
)

// ResumeStore is the blob boundary used for resume files.
type ResumeStore interface {
	Upload(ctx context.Context, name string, data []byte) error
	PresignedURL(ctx context.Context, name string) (string, error)
	Remove(ctx context.Context, name string) error
}

type StudentService struct {
	students student.Repository
	blobs    ResumeStore
	logger   Logger
}

func NewStudentService(students student.Repository, blobs ResumeStore, logger Logger) *StudentService {
	return &StudentService{students: students, blobs: blobs, logger: logger}
}

type AddStudentInput struct {
	UserID        common.UUID
	RollNumber    string
	FirstName     string
	LastName      string
	Email         string
	ResumeFile    string
	ResumeContent string // base64
}

// Add uploads the resume, signs a read URL and stores the profile. Blob
// upload and DB write are not one transaction: when the write fails after a
// successful upload, the blob is removed best-effort so it does not leak.
func (s *StudentService) Add(ctx context.Context, input AddStudentInput) (*student.Student, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.RollNumber) == "" {
		fields["rollNumber"] = "rollNumber is required"
	}
	if strings.TrimSpace(input.FirstName) == "" {
		fields["firstName"] = "firstName is required"
	}
	if strings.TrimSpace(input.ResumeFile) == "" {
		fields["resumeFileName"] = "resumeFileName is required"
	}
	if input.ResumeContent == "" {
		fields["resumeContent"] = "resumeContent is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("missing fields", fields)
	}
	resumeURL, err := s.Upload(ctx, input.ResumeFile, input.ResumeContent)
	if err != nil {
		return nil, err
	}
	created, err := s.students.Upsert(ctx, student.Student{
		ID:         input.UserID,
		RollNumber: strings.TrimSpace(input.RollNumber),
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Email:      strings.TrimSpace(input.Email),
		ResumeURL:  resumeURL,
	})
	if err != nil {
		if removeErr := s.blobs.Remove(ctx, input.ResumeFile); removeErr != nil {
			s.logError(fmt.Sprintf("failed to remove orphaned resume blob name=%s: %v", input.ResumeFile, removeErr))
		}
		return nil, err
	}
	return created, nil
}

// Upload stores one file and returns a time-limited read URL.
func (s *StudentService) Upload(ctx context.Context, fileName, content string) (string, error) {
	if s.blobs == nil {
		return "", common.NewError(common.CodeInternal, "resume storage is not configured", nil)
	}
	if strings.TrimSpace(fileName) == "" {
		return "", common.NewValidationError("invalid request", map[string]string{"fileName": "fileName is required"})
	}
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return "", common.NewValidationError("invalid request", map[string]string{"fileContent": "content must be base64"})
	}
	if err := s.blobs.Upload(ctx, fileName, data); err != nil {
		return "", err
	}
	return s.blobs.PresignedURL(ctx, fileName)
}

func (s *StudentService) List(ctx context.Context) ([]student.Student, error) {
	return s.students.List(ctx)
}

func (s *StudentService) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
