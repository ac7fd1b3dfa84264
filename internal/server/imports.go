package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	neurosoftpb "github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1"
	"github.com/ulieet/NeuroSoft/internal/importer"
)

type ImportServer struct {
	neurosoftpb.UnimplementedImportServiceServer
	importer importer.Importer
	logger   *slog.Logger
}

func NewImportServer(imp importer.Importer, logger *slog.Logger) *ImportServer {
	return &ImportServer{
		importer: imp,
		logger:   logger,
	}
}

// ImportHistory runs the intake workflow for one document.
func (s *ImportServer) ImportHistory(ctx context.Context, req *neurosoftpb.ImportHistoryRequest) (*neurosoftpb.ImportHistoryResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("import request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting history import", "path", path)
	r, err := s.importer.ImportPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "import: %v", err)
	}
	s.logger.Info("history import finished", "path", path, "history_id", r.HistoryID, "deduplicated", r.Deduplicated)

	return toPBImportResult(r), nil
}

// ImportDirectory walks a directory and imports every matching document.
func (s *ImportServer) ImportDirectory(ctx context.Context, req *neurosoftpb.ImportDirectoryRequest) (*neurosoftpb.ImportDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("import directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory import", "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.importer.ImportDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "import directory: %v", err)
	}
	s.logger.Info("directory import completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &neurosoftpb.ImportDirectoryResponse{
		Scanned:      int64(stats.Scanned),
		Matched:      int64(stats.Matched),
		Succeeded:    int64(stats.Succeeded),
		Deduplicated: int64(stats.Deduplicated),
		Failed:       int64(stats.Failed),
		Results:      make([]*neurosoftpb.ImportHistoryResponse, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, toPBImportResult(r))
	}
	return out, nil
}

func toPBImportResult(r importer.Result) *neurosoftpb.ImportHistoryResponse {
	out := &neurosoftpb.ImportHistoryResponse{
		HistoryId:    r.HistoryID,
		PatientId:    r.PatientID,
		Deduplicated: r.Deduplicated,
		Fingerprint:  r.Fingerprint,
		Format:       r.Format,
		Status:       r.Status,
		Error:        r.Err,
	}
	if !r.ImportedAt.IsZero() {
		out.ImportedAt = r.ImportedAt.UTC().Format(time.RFC3339)
	}
	return out
}
