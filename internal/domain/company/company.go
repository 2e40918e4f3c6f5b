package company

import (
	"time"

	"placecell/internal/common"
)

type Company struct {
	ID          common.UUID `json:"id"`
	Name        string      `json:"name"`
	Industry    string      `json:"industry"`
	Location    string      `json:"location"`
	Website     string      `json:"website"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
