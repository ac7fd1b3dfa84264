package utils

import (
	"encoding/json"
	"time"

	"github.com/ulieet/NeuroSoft/gen/ent"
	neurosoftpb "github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1"
	"github.com/ulieet/NeuroSoft/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBPatient(p *ent.Patient) *neurosoftpb.Patient {
	return &neurosoftpb.Patient{
		Id:        p.ID.String(),
		Name:      p.Name,
		Dni:       strOrEmpty(p.DNI),
		BirthDate: strOrEmpty(p.BirthDate),
		Insurer:   strOrEmpty(p.Insurer),
		MemberId:  strOrEmpty(p.MemberID),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBHistory(h *ent.History) *neurosoftpb.History {
	out := &neurosoftpb.History{
		Id:          h.ID.String(),
		FileName:    h.FileName,
		Format:      h.Format,
		Status:      h.Status,
		Fingerprint: h.Fingerprint,
		ImportedAt:  h.ImportedAt.UTC().Format(time.RFC3339),
	}
	if h.PatientID != nil {
		out.PatientId = h.PatientID.String()
	}
	if h.ValidatedAt != nil {
		out.ValidatedAt = h.ValidatedAt.UTC().Format(time.RFC3339)
	}
	out.DraftJson = marshalPayload(h.Draft)
	out.ValidatedJson = marshalPayload(h.Validated)
	return out
}

// marshalPayload renders a stored jsonb map back to JSON text for the wire.
func marshalPayload(m map[string]interface{}) string {
	if len(m) == 0 {
		return ""
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(raw)
}

func ToPatient(e *ent.Patient) *entity.Patient {
	return &entity.Patient{
		ID:        e.ID,
		Name:      e.Name,
		DNI:       e.DNI,
		BirthDate: e.BirthDate,
		Insurer:   e.Insurer,
		MemberID:  e.MemberID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToHistory(e *ent.History) *entity.History {
	out := &entity.History{
		ID:          e.ID,
		PatientID:   e.PatientID,
		FileName:    e.FileName,
		Format:      e.Format,
		Status:      e.Status,
		Fingerprint: e.Fingerprint,
		SourceHash:  e.SourceHash,
		ImportedAt:  e.ImportedAt,
		ValidatedAt: e.ValidatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if s := marshalPayload(e.Draft); s != "" {
		out.Draft = json.RawMessage(s)
	}
	if s := marshalPayload(e.Validated); s != "" {
		out.Validated = json.RawMessage(s)
	}
	return out
}

func ToSourceFile(e *ent.SourceFile) *entity.SourceFile {
	return &entity.SourceFile{
		ID:          e.ID,
		HistoryID:   e.HistoryID,
		StoredPath:  e.StoredPath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		Pages:       e.Pages,
		UploadedAt:  e.UploadedAt,
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
