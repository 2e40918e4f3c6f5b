package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"placecell/internal/common"
	"placecell/internal/domain/application"
	"placecell/internal/domain/user"
	"placecell/internal/notify"
)

// NotificationQueue is the fire-and-forget boundary: Enqueue must not block
// and its outcome never reaches the caller.
type NotificationQueue interface {
	Enqueue(msg notify.Message)
}

// ApplicationService owns the application lifecycle: submission, the review
// state machine, and the authorization rules around listing.
type ApplicationService struct {
	repo          application.Repository
	notifications NotificationQueue
	logger        Logger
}

func NewApplicationService(repo application.Repository, notifications NotificationQueue, logger Logger) *ApplicationService {
	return &ApplicationService{repo: repo, notifications: notifications, logger: logger}
}

// Submit creates an application in Pending with no review fields set. The
// target company is deliberately not checked for existence, and duplicate
// applications for the same (student, company, role, type) are allowed.
func (s *ApplicationService) Submit(ctx context.Context, studentID, companyID common.UUID, roleText, typeValue string) (*application.Application, error) {
	fields := map[string]string{}
	roleText = strings.TrimSpace(roleText)
	if roleText == "" {
		fields["role"] = "role is required"
	}
	if strings.TrimSpace(typeValue) == "" {
		fields["type"] = "type is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("missing fields", fields)
	}
	appType, err := application.ParseType(typeValue)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, application.Application{
		StudentID: studentID,
		CompanyID: companyID,
		Role:      roleText,
		Type:      appType,
		Status:    application.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("application submitted id=%s student_id=%s type=%s", created.ID, studentID, appType))
	return created, nil
}

// Review overwrites status, reviewed_at, reviewed_by and comments. Reviewing
// an already-reviewed application overwrites again: last write wins, with no
// version check, matching the storage-level race semantics. On success a
// status email is queued; its outcome never affects the returned result.
func (s *ApplicationService) Review(ctx context.Context, id common.UUID, statusValue, reviewedBy, comments string) (*application.Application, error) {
	if strings.TrimSpace(statusValue) == "" {
		return nil, common.NewValidationError("missing fields", map[string]string{"status": "status is required"})
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status := application.NormalizeStatus(statusValue)
	if !application.IsReviewable(current.Type, status) {
		allowed := application.ReviewStatuses(current.Type)
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		return nil, common.NewValidationError("invalid status", map[string]string{
			"status": fmt.Sprintf("status for %s must be one of %s", current.Type, strings.Join(names, ", ")),
		})
	}
	updated, err := s.repo.Review(ctx, id, status, strings.TrimSpace(reviewedBy), comments, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.notifyStudent(ctx, id)
	s.logInfo(fmt.Sprintf("application reviewed id=%s status=%s reviewed_by=%s", id, status, reviewedBy))
	return updated, nil
}

func (s *ApplicationService) notifyStudent(ctx context.Context, id common.UUID) {
	if s.notifications == nil {
		return
	}
	target, err := s.repo.NotifyTarget(ctx, id)
	if err != nil {
		s.logError(fmt.Sprintf("notification target lookup failed application_id=%s: %v", id, err))
		return
	}
	if target.Email == "" {
		return
	}
	comments := target.Comments
	if comments == "" {
		comments = "None"
	}
	s.notifications.Enqueue(notify.Message{
		To:      target.Email,
		Subject: fmt.Sprintf("Your application status for %s (%s)", target.CompanyName, target.Type),
		Body: fmt.Sprintf("Hello %s %s,\n\nYour application for the role of %s at %s (%s) has been updated to: %s.\n\nComments: %s\n\nRegards,\nPlacement Cell",
			target.FirstName, target.LastName, target.Role, target.CompanyName, target.Type, target.Status, comments),
	})
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]application.Detail, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []application.Detail{}
	}
	return items, nil
}

// ListForStudent lets a student read only their own applications; faculty
// and admin may read anyone's.
func (s *ApplicationService) ListForStudent(ctx context.Context, callerID common.UUID, callerRole user.Role, studentID common.UUID) ([]application.Detail, error) {
	if callerRole != user.RoleFaculty && callerRole != user.RoleAdmin && callerID != studentID {
		return nil, common.NewError(common.CodeForbidden, "cannot view another student's applications", nil)
	}
	items, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []application.Detail{}
	}
	return items, nil
}

func (s *ApplicationService) logInfo(msg string) {
	if s.logger != nil {
		s.logger.Info(msg)
	}
}

func (s *ApplicationService) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
