package student

import (
	"time"

	"placecell/internal/common"
)

// Student is the placement profile for a user. Its id is the owning user's
// id, which is what the application-ownership checks compare against.
type Student struct {
	ID         common.UUID `json:"id"`
	RollNumber string      `json:"roll_number"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	Email      string      `json:"email"`
	ResumeURL  string      `json:"resume_url,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
