package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/gen/ent"
	neurosoftpb "github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1"
	"github.com/ulieet/NeuroSoft/internal/common"
	"github.com/ulieet/NeuroSoft/internal/repository"
	"github.com/ulieet/NeuroSoft/internal/utils"
	"github.com/ulieet/NeuroSoft/internal/validate"
)

type HistoryServer struct {
	neurosoftpb.UnimplementedHistoriesServiceServer
	repo   repository.HistoryRepository
	logger *slog.Logger
}

func NewHistoryServer(repo repository.HistoryRepository, logger *slog.Logger) *HistoryServer {
	return &HistoryServer{
		repo:   repo,
		logger: logger,
	}
}

// ListHistories lists histories matching the optional filters.
func (s *HistoryServer) ListHistories(ctx context.Context, req *neurosoftpb.ListHistoriesRequest) (*neurosoftpb.ListHistoriesResponse, error) {
	filter, err := filterFromRequest(req)
	if err != nil {
		return nil, err
	}

	hs, err := s.repo.ListHistories(ctx, filter)
	if err != nil {
		return nil, common.InternalErrorf("list histories: %v", err)
	}
	out := make([]*neurosoftpb.History, 0, len(hs))
	for _, h := range hs {
		out = append(out, utils.ToPBHistory(h))
	}
	return &neurosoftpb.ListHistoriesResponse{Histories: out}, nil
}

// GetHistory fetches one history with its draft and validated payloads.
func (s *HistoryServer) GetHistory(ctx context.Context, req *neurosoftpb.GetHistoryRequest) (*neurosoftpb.GetHistoryResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	h, err := s.repo.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NotFoundError("history not found")
	}
	if err != nil {
		return nil, common.InternalErrorf("get history: %v", err)
	}
	return &neurosoftpb.GetHistoryResponse{History: utils.ToPBHistory(h)}, nil
}

// ValidateHistory stores the clinician-corrected record after checking it
// against the canonical record schema.
func (s *HistoryServer) ValidateHistory(ctx context.Context, req *neurosoftpb.ValidateHistoryRequest) (*neurosoftpb.ValidateHistoryResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	payload := strings.TrimSpace(req.GetValidatedJson())
	if payload == "" {
		return nil, status.Error(codes.InvalidArgument, "validated_json is required")
	}
	if err := validate.HistoryPayload([]byte(payload)); err != nil {
		s.logger.Warn("validate.rejected", "history_id", id, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "validated record: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validated_json: %v", err)
	}

	if _, err := s.repo.GetByID(ctx, id); ent.IsNotFound(err) {
		return nil, common.NotFoundError("history not found")
	} else if err != nil {
		return nil, common.InternalErrorf("get history: %v", err)
	}

	h, err := s.repo.SetValidated(ctx, id, m)
	if err != nil {
		return nil, common.InternalErrorf("store validated history: %v", err)
	}
	s.logger.Info("validate.ok", "history_id", id)
	return &neurosoftpb.ValidateHistoryResponse{History: utils.ToPBHistory(h)}, nil
}

// DeleteHistory removes one history.
func (s *HistoryServer) DeleteHistory(ctx context.Context, req *neurosoftpb.DeleteHistoryRequest) (*neurosoftpb.DeleteHistoryResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteHistory(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("history not found")
		}
		return nil, common.InternalErrorf("delete history: %v", err)
	}
	return &neurosoftpb.DeleteHistoryResponse{}, nil
}

func filterFromRequest(req *neurosoftpb.ListHistoriesRequest) (*repository.HistoryFilter, error) {
	filter := &repository.HistoryFilter{}

	if pid := strings.TrimSpace(req.GetPatientId()); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "patient_id must be a UUID")
		}
		filter.PatientID = &id
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		valid := false
		for _, v := range constants.HistoryStatusValues() {
			if st == v {
				valid = true
				break
			}
		}
		if !valid {
			return nil, status.Errorf(codes.InvalidArgument, "status must be one of %v", constants.HistoryStatusValues())
		}
		filter.Status = st
	}
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.FromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		// inclusive upper bound over the whole day
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.ToDate = &end
	}
	return filter, nil
}
