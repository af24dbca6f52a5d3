package entity

import (
	"time"
)

// Patient is the aggregate root for the patient domain.
// DateOfBirth and RegisteredDate are calendar dates; only the date part is
// significant. RegisteredDate is set once at creation and never mutated.
type Patient struct {
	ID             string
	Name           string
	Address        string
	Email          string
	DateOfBirth    time.Time
	RegisteredDate time.Time
	PhotoURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
