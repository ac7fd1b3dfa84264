package server

import (
	"context"
	"log/slog"

	neurosoftpb "github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1"
	"github.com/ulieet/NeuroSoft/internal/common"
	"github.com/ulieet/NeuroSoft/internal/export"
)

type ExportServer struct {
	neurosoftpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportHistories renders the filtered histories as an XLSX workbook.
func (s *ExportServer) ExportHistories(ctx context.Context, req *neurosoftpb.ExportHistoriesRequest) (*neurosoftpb.ExportHistoriesResponse, error) {
	filter, err := filterFromRequest(&neurosoftpb.ListHistoriesRequest{
		PatientId: req.GetPatientId(),
		Status:    req.GetStatus(),
		FromDate:  req.GetFromDate(),
		ToDate:    req.GetToDate(),
	})
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportHistoriesXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &neurosoftpb.ExportHistoriesResponse{Xlsx: xlsx}, nil
}
