package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ulieet/NeuroSoft/gen/ent"
	entfile "github.com/ulieet/NeuroSoft/gen/ent/sourcefile"
)

type SourceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.SourceFile, error)
	Create(ctx context.Context, historyID uuid.UUID, storedPath, filename, ext string, size, pages int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, error)
}

type sourceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSourceFileRepository(entc *ent.Client, logger *slog.Logger) SourceFileRepository {
	return &sourceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *sourceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error) {
	return r.ent.SourceFile.Get(ctx, id)
}

func (r *sourceFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *sourceFileRepo) Create(ctx context.Context, historyID uuid.UUID, storedPath, filename, ext string, size, pages int, hash []byte, uploadedAt time.Time) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Create().
		SetHistoryID(historyID).
		SetStoredPath(storedPath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetPages(pages).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to store source file", "history_id", historyID, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}
