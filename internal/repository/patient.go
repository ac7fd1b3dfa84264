package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ulieet/NeuroSoft/gen/ent"
	"github.com/ulieet/NeuroSoft/gen/ent/patient"
)

// PatientFields carries the master-record fields the import workflow and the
// API can set. Nil pointers mean "leave whatever is stored".
type PatientFields struct {
	Name      string
	DNI       *string
	BirthDate *string
	Insurer   *string
	MemberID  *string
}

type PatientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Patient, error)
	GetByDNI(ctx context.Context, dni string) (*ent.Patient, error)
	CreatePatient(ctx context.Context, fields *PatientFields) (*ent.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, fields *PatientFields) (*ent.Patient, error)
	ListPatients(ctx context.Context) ([]*ent.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	// UpsertByDNI merges draft-extracted fields into the master record keyed
	// by national ID: newly extracted values win, stored values survive where
	// the new document says nothing.
	UpsertByDNI(ctx context.Context, fields *PatientFields) (*ent.Patient, bool, error)
}

type patientRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPatientRepository(client *ent.Client, logger *slog.Logger) PatientRepository {
	return &patientRepository{
		client: client,
		logger: logger,
	}
}

func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Patient, error) {
	return r.client.Patient.
		Query().
		Where(patient.ID(id)).
		Only(ctx)
}

func (r *patientRepository) GetByDNI(ctx context.Context, dni string) (*ent.Patient, error) {
	return r.client.Patient.
		Query().
		Where(patient.DNI(dni)).
		Only(ctx)
}

func (r *patientRepository) CreatePatient(ctx context.Context, fields *PatientFields) (*ent.Patient, error) {
	p, err := r.client.Patient.Create().
		SetName(fields.Name).
		SetNillableDNI(fields.DNI).
		SetNillableBirthDate(fields.BirthDate).
		SetNillableInsurer(fields.Insurer).
		SetNillableMemberID(fields.MemberID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create patient", "name", fields.Name, "error", err)
		return nil, err
	}
	return p, nil
}

func (r *patientRepository) UpdatePatient(ctx context.Context, id uuid.UUID, fields *PatientFields) (*ent.Patient, error) {
	builder := r.client.Patient.UpdateOneID(id)
	if fields.Name != "" {
		builder = builder.SetName(fields.Name)
	}
	builder = builder.
		SetNillableDNI(fields.DNI).
		SetNillableBirthDate(fields.BirthDate).
		SetNillableInsurer(fields.Insurer).
		SetNillableMemberID(fields.MemberID)
	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update patient", "patient_id", id, "error", err)
		return nil, err
	}
	return p, nil
}

func (r *patientRepository) ListPatients(ctx context.Context) ([]*ent.Patient, error) {
	plist, err := r.client.Patient.Query().Order(patient.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list patients", "error", err)
		return nil, err
	}
	return plist, nil
}

func (r *patientRepository) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Patient.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete patient", "patient_id", id, "error", err)
		return err
	}
	return nil
}

func (r *patientRepository) UpsertByDNI(ctx context.Context, fields *PatientFields) (*ent.Patient, bool, error) {
	if fields.DNI == nil || *fields.DNI == "" {
		p, err := r.CreatePatient(ctx, fields)
		return p, false, err
	}

	existing, err := r.GetByDNI(ctx, *fields.DNI)
	if ent.IsNotFound(err) {
		p, err := r.CreatePatient(ctx, fields)
		return p, false, err
	}
	if err != nil {
		r.logger.Error("failed to look up patient by dni", "error", err)
		return nil, false, err
	}

	merged := &PatientFields{
		Name:      fields.Name,
		BirthDate: firstNonNil(fields.BirthDate, existing.BirthDate),
		Insurer:   firstNonNil(fields.Insurer, existing.Insurer),
		MemberID:  firstNonNil(fields.MemberID, existing.MemberID),
	}
	p, err := r.UpdatePatient(ctx, existing.ID, merged)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func firstNonNil(a, b *string) *string {
	if a != nil && *a != "" {
		return a
	}
	return b
}
