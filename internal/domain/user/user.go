package user

import (
	"strings"
	"time"

	"placecell/internal/common"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// ParseRole validates against the closed role set. Registration rejects
// anything outside it.
func ParseRole(value string) (Role, error) {
	normalized := Role(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid role", map[string]string{"role": "role must be student, faculty, or admin"})
	}
}

type User struct {
	ID           common.UUID `json:"user_id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	FullName     string      `json:"full_name"`
	Role         Role        `json:"role"`
	Email        string      `json:"email"`
	CreatedAt    time.Time   `json:"created_at"`
}
