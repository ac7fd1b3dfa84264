package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	neurosoftpb "github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1"
	"github.com/ulieet/NeuroSoft/gen/ent"
	"github.com/ulieet/NeuroSoft/internal/common"
	"github.com/ulieet/NeuroSoft/internal/repository"
	"github.com/ulieet/NeuroSoft/internal/utils"
)

type PatientServer struct {
	neurosoftpb.UnimplementedPatientsServiceServer
	repo   repository.PatientRepository
	logger *slog.Logger
}

func NewPatientServer(repo repository.PatientRepository, logger *slog.Logger) *PatientServer {
	return &PatientServer{
		repo:   repo,
		logger: logger,
	}
}

// CreatePatient creates a new patient master record.
func (s *PatientServer) CreatePatient(ctx context.Context, req *neurosoftpb.CreatePatientRequest) (*neurosoftpb.CreatePatientResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required).
		Field("dni", req.GetDni(), common.DNI).
		Field("birth_date", req.GetBirthDate(), common.ISODate)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	p, err := s.repo.CreatePatient(ctx, fieldsFromRequest(req.GetName(), req.GetDni(), req.GetBirthDate(), req.GetInsurer(), req.GetMemberId()))
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.AlreadyExistsError("a patient with that dni already exists")
		}
		return nil, common.InternalErrorf("create patient: %v", err)
	}
	return &neurosoftpb.CreatePatientResponse{Patient: utils.ToPBPatient(p)}, nil
}

// GetPatient fetches one patient by id.
func (s *PatientServer) GetPatient(ctx context.Context, req *neurosoftpb.GetPatientRequest) (*neurosoftpb.GetPatientResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NotFoundError("patient not found")
	}
	if err != nil {
		return nil, common.InternalErrorf("get patient: %v", err)
	}
	return &neurosoftpb.GetPatientResponse{Patient: utils.ToPBPatient(p)}, nil
}

// ListPatients lists every patient.
func (s *PatientServer) ListPatients(ctx context.Context, _ *neurosoftpb.ListPatientsRequest) (*neurosoftpb.ListPatientsResponse, error) {
	plist, err := s.repo.ListPatients(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list patients: %v", err)
	}
	out := make([]*neurosoftpb.Patient, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBPatient(p))
	}
	return &neurosoftpb.ListPatientsResponse{Patients: out}, nil
}

// UpdatePatient overwrites the supplied fields of one patient.
func (s *PatientServer) UpdatePatient(ctx context.Context, req *neurosoftpb.UpdatePatientRequest) (*neurosoftpb.UpdatePatientResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	v := common.NewValidator().
		Field("dni", req.GetDni(), common.DNI).
		Field("birth_date", req.GetBirthDate(), common.ISODate)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	p, err := s.repo.UpdatePatient(ctx, id, fieldsFromRequest(req.GetName(), req.GetDni(), req.GetBirthDate(), req.GetInsurer(), req.GetMemberId()))
	if ent.IsNotFound(err) {
		return nil, common.NotFoundError("patient not found")
	}
	if err != nil {
		return nil, common.InternalErrorf("update patient: %v", err)
	}
	return &neurosoftpb.UpdatePatientResponse{Patient: utils.ToPBPatient(p)}, nil
}

// DeletePatient removes one patient.
func (s *PatientServer) DeletePatient(ctx context.Context, req *neurosoftpb.DeletePatientRequest) (*neurosoftpb.DeletePatientResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeletePatient(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("patient not found")
		}
		return nil, common.InternalErrorf("delete patient: %v", err)
	}
	return &neurosoftpb.DeletePatientResponse{}, nil
}

func fieldsFromRequest(name, dni, birthDate, insurer, memberID string) *repository.PatientFields {
	f := &repository.PatientFields{Name: strings.TrimSpace(name)}
	if v := strings.TrimSpace(dni); v != "" {
		f.DNI = &v
	}
	if v := strings.TrimSpace(birthDate); v != "" {
		f.BirthDate = &v
	}
	if v := strings.TrimSpace(insurer); v != "" {
		f.Insurer = &v
	}
	if v := strings.TrimSpace(memberID); v != "" {
		f.MemberID = &v
	}
	return f
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	return id, nil
}
