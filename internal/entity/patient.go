package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient master record for data transfer between layers.
type Patient struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DNI       *string   `json:"dni,omitempty"`
	BirthDate *string   `json:"birth_date,omitempty"`
	Insurer   *string   `json:"insurer,omitempty"`
	MemberID  *string   `json:"member_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
