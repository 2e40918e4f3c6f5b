package record

import (
	"time"

	"placecell/internal/common"
)

// Internship and Placement rows are faculty-entered facts. They are not
// derived from approved applications; the two concepts coexist without
// linkage, and company is free text rather than a directory reference.

type Internship struct {
	ID        common.UUID `json:"id"`
	StudentID common.UUID `json:"student_id"`
	Company   string      `json:"company"`
	Role      string      `json:"role"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
}

type InternshipDetail struct {
	Internship
	RollNumber string `json:"roll_number"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type Placement struct {
	ID        common.UUID `json:"id"`
	StudentID common.UUID `json:"student_id"`
	Company   string      `json:"company"`
	Package   float64     `json:"package"`
	Status    string      `json:"status"`
}

type PlacementDetail struct {
	Placement
	RollNumber string `json:"roll_number"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type Faculty struct {
	ID         common.UUID `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Department string      `json:"department"`
}
