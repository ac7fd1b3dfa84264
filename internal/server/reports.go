package server

import (
	"context"
	"encoding/json"
	"log/slog"

	neurosoftpb "github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1"
	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/gen/ent"
	"github.com/ulieet/NeuroSoft/internal/common"
	"github.com/ulieet/NeuroSoft/internal/extract"
	"github.com/ulieet/NeuroSoft/internal/report"
	"github.com/ulieet/NeuroSoft/internal/repository"
)

type ReportServer struct {
	neurosoftpb.UnimplementedReportsServiceServer
	histories repository.HistoryRepository
	logger    *slog.Logger
}

func NewReportServer(histories repository.HistoryRepository, logger *slog.Logger) *ReportServer {
	return &ReportServer{
		histories: histories,
		logger:    logger,
	}
}

// GeneralReport aggregates cohort indicators over the stored histories.
func (s *ReportServer) GeneralReport(ctx context.Context, req *neurosoftpb.GeneralReportRequest) (*neurosoftpb.GeneralReportResponse, error) {
	filter, err := filterFromRequest(&neurosoftpb.ListHistoriesRequest{
		FromDate: req.GetFromDate(),
		ToDate:   req.GetToDate(),
	})
	if err != nil {
		return nil, err
	}

	hs, err := s.histories.ListHistories(ctx, filter)
	if err != nil {
		return nil, common.InternalErrorf("list histories: %v", err)
	}

	records := make([]report.HistoryRecord, 0, len(hs))
	for _, h := range hs {
		records = append(records, recordFromHistory(h, s.logger))
	}

	summary := report.Build(records)
	s.logger.Info("report.ok", "histories", summary.TotalHistories, "patients", summary.TotalPatients)

	return &neurosoftpb.GeneralReportResponse{
		TotalPatients:      int64(summary.TotalPatients),
		TotalHistories:     int64(summary.TotalHistories),
		ValidatedHistories: int64(summary.ValidatedHistories),
		TotalRelapses:      int64(summary.TotalRelapses),
		MeanEdss:           summary.MeanEDSS,
		NedaPatients:       int64(summary.NEDAPatients),
		ByForm:             toPBCounts(report.SortedCounts(summary.ByForm)),
		ByInsurer:          toPBCounts(report.SortedCounts(summary.ByInsurer)),
		ByTherapyPotency:   toPBCounts(report.SortedCounts(summary.ByTherapyPotency)),
	}, nil
}

// recordFromHistory rebuilds the draft record out of the stored jsonb
// payload. The validated payload wins once the history is signed off.
func recordFromHistory(h *ent.History, logger *slog.Logger) report.HistoryRecord {
	rec := report.HistoryRecord{
		PatientKey: h.ID.String(),
		Validated:  h.Status == string(constants.HistoryStatusValidated),
	}
	if h.PatientID != nil {
		rec.PatientKey = h.PatientID.String()
	}

	payload := h.Draft
	if rec.Validated && len(h.Validated) > 0 {
		payload = h.Validated
	}
	if len(payload) == 0 {
		return rec
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("report.payload_marshal_failed", "history_id", h.ID, "error", err)
		return rec
	}
	var draft extract.DraftRecord
	if err := json.Unmarshal(raw, &draft); err != nil {
		logger.Warn("report.payload_decode_failed", "history_id", h.ID, "error", err)
		return rec
	}
	rec.Draft = &draft
	return rec
}

func toPBCounts(counts []report.CountByKey) []*neurosoftpb.CountByKey {
	out := make([]*neurosoftpb.CountByKey, 0, len(counts))
	for _, c := range counts {
		out = append(out, &neurosoftpb.CountByKey{Key: c.Key, Count: int64(c.Count)})
	}
	return out
}
