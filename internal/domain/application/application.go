package application

import (
	"strings"
	"time"

	"placecell/internal/common"
)

type Type string

const (
	TypeInternship Type = "Internship"
	TypePlacement  Type = "Placement"
)

func ParseType(value string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "internship":
		return TypeInternship, nil
	case "placement":
		return TypePlacement, nil
	default:
		return "", common.NewValidationError("invalid type", map[string]string{"type": "type must be Internship or Placement"})
	}
}

// Status is an open string-backed enum. Pending is the sole initial state;
// the statuses a review may assign depend on the application type.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
	StatusDropped   Status = "Dropped"
)

var canonicalStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusOngoing, StatusCompleted, StatusDropped}

// NormalizeStatus maps case-insensitive input onto the canonical spelling.
// Unknown values pass through trimmed, keeping the enum open.
func NormalizeStatus(value string) Status {
	trimmed := strings.TrimSpace(value)
	for _, status := range canonicalStatuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status
		}
	}
	return Status(trimmed)
}

// ReviewStatuses returns the statuses a reviewer may assign for the type.
func ReviewStatuses(t Type) []Status {
	if t == TypeInternship {
		return []Status{StatusApproved, StatusRejected, StatusOngoing, StatusCompleted, StatusDropped}
	}
	return []Status{StatusApproved, StatusRejected}
}

func IsReviewable(t Type, status Status) bool {
	for _, allowed := range ReviewStatuses(t) {
		if status == allowed {
			return true
		}
	}
	return false
}

type Application struct {
	ID         common.UUID `json:"id"`
	StudentID  common.UUID `json:"student_id"`
	CompanyID  common.UUID `json:"company_id"`
	Role       string      `json:"role"`
	Type       Type        `json:"type"`
	Status     Status      `json:"status"`
	AppliedAt  time.Time   `json:"applied_at"`
	ReviewedAt *time.Time  `json:"reviewed_at,omitempty"`
	ReviewedBy *string     `json:"reviewed_by,omitempty"`
	Comments   *string     `json:"comments,omitempty"`
}

// Detail is an application row joined with student and company identity,
// the shape the list endpoints return.
type Detail struct {
	Application
	RollNumber  string `json:"roll_number,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CompanyName string `json:"company_name"`
}

// NotifyTarget carries what the status email needs about a reviewed
// application.
type NotifyTarget struct {
	Email       string
	FirstName   string
	LastName    string
	Role        string
	Type        Type
	Status      Status
	Comments    string
	CompanyName string
}
