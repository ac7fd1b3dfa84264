package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/gen/ent"
	"github.com/ulieet/NeuroSoft/gen/ent/history"
)

// CreateHistoryRequest wraps parameters for storing a freshly imported
// history with its machine-extracted draft.
type CreateHistoryRequest struct {
	PatientID   *uuid.UUID
	FileName    string
	Format      string
	Fingerprint string
	SourceHash  string
	Draft       map[string]interface{}
}

// HistoryFilter narrows ListHistories. Zero values mean "no constraint".
type HistoryFilter struct {
	PatientID *uuid.UUID
	Status    string
	FromDate  *time.Time
	ToDate    *time.Time
}

type HistoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.History, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*ent.History, error)
	CreateHistory(ctx context.Context, req *CreateHistoryRequest) (*ent.History, error)
	ListHistories(ctx context.Context, filter *HistoryFilter) ([]*ent.History, error)
	SetValidated(ctx context.Context, id uuid.UUID, payload map[string]interface{}) (*ent.History, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.HistoryStatus) error
	LinkPatient(ctx context.Context, id, patientID uuid.UUID) error
	DeleteHistory(ctx context.Context, id uuid.UUID) error
}

type historyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewHistoryRepository(client *ent.Client, logger *slog.Logger) HistoryRepository {
	return &historyRepository{
		client: client,
		logger: logger,
	}
}

func (r *historyRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.History, error) {
	return r.client.History.
		Query().
		Where(history.ID(id)).
		Only(ctx)
}

func (r *historyRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*ent.History, error) {
	return r.client.History.
		Query().
		Where(history.Fingerprint(fingerprint)).
		Only(ctx)
}

func (r *historyRepository) CreateHistory(ctx context.Context, req *CreateHistoryRequest) (*ent.History, error) {
	// a fresh import always awaits clinician review
	builder := r.client.History.Create().
		SetFileName(req.FileName).
		SetFormat(req.Format).
		SetStatus(string(constants.HistoryStatusPending)).
		SetFingerprint(req.Fingerprint).
		SetSourceHash(req.SourceHash).
		SetDraft(req.Draft)
	if req.PatientID != nil {
		builder = builder.SetPatientID(*req.PatientID)
	}
	h, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create history", "file_name", req.FileName, "error", err)
		return nil, err
	}
	return h, nil
}

func (r *historyRepository) ListHistories(ctx context.Context, filter *HistoryFilter) ([]*ent.History, error) {
	q := r.client.History.Query()
	if filter != nil {
		if filter.PatientID != nil {
			q = q.Where(history.PatientID(*filter.PatientID))
		}
		if filter.Status != "" {
			q = q.Where(history.Status(filter.Status))
		}
		if filter.FromDate != nil {
			q = q.Where(history.ImportedAtGTE(*filter.FromDate))
		}
		if filter.ToDate != nil {
			q = q.Where(history.ImportedAtLTE(*filter.ToDate))
		}
	}
	hs, err := q.Order(history.ByImportedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list histories", "error", err)
		return nil, err
	}
	return hs, nil
}

func (r *historyRepository) SetValidated(ctx context.Context, id uuid.UUID, payload map[string]interface{}) (*ent.History, error) {
	h, err := r.client.History.UpdateOneID(id).
		SetValidated(payload).
		SetStatus(string(constants.HistoryStatusValidated)).
		SetValidatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to store validated history", "history_id", id, "error", err)
		return nil, err
	}
	return h, nil
}

func (r *historyRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.HistoryStatus) error {
	if err := r.client.History.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to set history status", "history_id", id, "status", status, "error", err)
		return err
	}
	return nil
}

func (r *historyRepository) LinkPatient(ctx context.Context, id, patientID uuid.UUID) error {
	if err := r.client.History.UpdateOneID(id).
		SetPatientID(patientID).
		Exec(ctx); err != nil {
		r.logger.Error("failed to link history to patient", "history_id", id, "patient_id", patientID, "error", err)
		return err
	}
	return nil
}

func (r *historyRepository) DeleteHistory(ctx context.Context, id uuid.UUID) error {
	if err := r.client.History.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete history", "history_id", id, "error", err)
		return err
	}
	return nil
}
