package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// History represents an imported clinical history for data transfer between
// layers. Draft holds the machine-extracted record; Validated holds the
// clinician-reviewed payload once the history has been signed off.
type History struct {
	ID          uuid.UUID       `json:"id"`
	PatientID   *uuid.UUID      `json:"patient_id,omitempty"`
	FileName    string          `json:"file_name"`
	Format      string          `json:"format"`
	Status      string          `json:"status"`
	Fingerprint string          `json:"fingerprint"`
	SourceHash  string          `json:"source_hash"`
	Draft       json.RawMessage `json:"draft,omitempty"`
	Validated   json.RawMessage `json:"validated,omitempty"`
	ImportedAt  time.Time       `json:"imported_at"`
	ValidatedAt *time.Time      `json:"validated_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
