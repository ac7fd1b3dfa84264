package importer

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/gen/ent"
	"github.com/ulieet/NeuroSoft/internal/doctext"
	"github.com/ulieet/NeuroSoft/internal/extract"
	"github.com/ulieet/NeuroSoft/internal/repository"
)

// FSImporter reads documents from the local filesystem.
type FSImporter struct {
	Histories repository.HistoryRepository
	Patients  repository.PatientRepository
	Files     repository.SourceFileRepository
	Text      *doctext.Extractor
	Engine    *extract.Engine

	// UploadDir is where accepted documents are copied before extraction.
	UploadDir string

	logger *slog.Logger
}

func NewFSImporter(
	histories repository.HistoryRepository,
	patients repository.PatientRepository,
	files repository.SourceFileRepository,
	text *doctext.Extractor,
	engine *extract.Engine,
	uploadDir string,
	logger *slog.Logger,
) *FSImporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSImporter{
		Histories: histories,
		Patients:  patients,
		Files:     files,
		Text:      text,
		Engine:    engine,
		UploadDir: uploadDir,
		logger:    logger,
	}
}

func (i *FSImporter) ImportPath(ctx context.Context, path string) (Result, error) {
	var out Result

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}
	out.SourcePath = abs

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension %q", ext)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return out, err
	}
	sum := sha256.Sum256(data)

	// byte-level dedup: the exact same file was imported before
	if existing, err := i.Files.GetByHash(ctx, sum[:]); err == nil {
		h, err := i.Histories.GetByID(ctx, existing.HistoryID)
		if err != nil {
			return out, err
		}
		i.logger.Info("import.dedup_bytes", "path", abs, "history_id", h.ID)
		return i.resultFromHistory(h, abs, true), nil
	} else if !ent.IsNotFound(err) {
		return out, err
	}

	storedPath, err := i.saveUpload(ext, data)
	if err != nil {
		return out, err
	}

	text, err := i.Text.Extract(storedPath)
	if err != nil {
		return out, fmt.Errorf("text extraction: %w", err)
	}

	draft := i.Engine.Process(text.Text, text.Format, filepath.Base(abs))
	draft.Source.Pages = text.Pages
	fingerprint := extract.Fingerprint(draft)

	// content-level dedup: a different file carrying the same document
	if existing, err := i.Histories.GetByFingerprint(ctx, fingerprint); err == nil {
		i.logger.Info("import.dedup_fingerprint", "path", abs, "history_id", existing.ID)
		if rmErr := os.Remove(storedPath); rmErr != nil {
			i.logger.Warn("import.cleanup_failed", "path", storedPath, "error", rmErr)
		}
		return i.resultFromHistory(existing, abs, true), nil
	} else if !ent.IsNotFound(err) {
		return out, err
	}

	patientID, err := i.upsertPatient(ctx, draft)
	if err != nil {
		return out, err
	}

	draftMap, err := DraftToMap(draft)
	if err != nil {
		return out, err
	}

	h, err := i.Histories.CreateHistory(ctx, &repository.CreateHistoryRequest{
		PatientID:   patientID,
		FileName:    filepath.Base(abs),
		Format:      text.Format,
		Fingerprint: fingerprint,
		SourceHash:  draft.SourceHash,
		Draft:       draftMap,
	})
	if err != nil {
		return out, err
	}

	if _, err := i.Files.Create(ctx, h.ID, storedPath, filepath.Base(abs), ext, len(data), text.Pages, sum[:], time.Now().UTC()); err != nil {
		return out, err
	}

	i.logger.Info("import.ok", "path", abs, "history_id", h.ID, "format", text.Format, "pages", text.Pages)
	return i.resultFromHistory(h, abs, false), nil
}

// ImportDirectory walks root, skips hidden entries if requested, and calls
// ImportPath for each matching file. Returns per-file results + aggregate stats.
func (i *FSImporter) ImportDirectory(ctx context.Context, root string, skipHidden bool) ([]Result, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []Result
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, Result{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		stats.Matched++

		r, err := i.ImportPath(ctx, path)
		if err != nil {
			results = append(results, Result{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

// saveUpload copies the accepted document into the upload directory under a
// fresh name so later re-imports of a renamed source stay traceable.
func (i *FSImporter) saveUpload(ext string, data []byte) (string, error) {
	if err := os.MkdirAll(i.UploadDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(i.UploadDir, uuid.NewString()+"."+ext)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", err
	}
	return dst, nil
}

// upsertPatient merges the draft's identity fields into the patient master
// table. A draft with no name creates no patient; the history stays unlinked
// until a clinician resolves it.
func (i *FSImporter) upsertPatient(ctx context.Context, draft *extract.DraftRecord) (*uuid.UUID, error) {
	if draft.Patient.Name == nil || *draft.Patient.Name == "" {
		return nil, nil
	}
	fields := &repository.PatientFields{
		Name:      *draft.Patient.Name,
		DNI:       draft.Patient.DNI,
		BirthDate: draft.Patient.BirthDate,
		Insurer:   draft.Patient.Insurer,
		MemberID:  draft.Patient.MemberNumber,
	}
	p, merged, err := i.Patients.UpsertByDNI(ctx, fields)
	if err != nil {
		return nil, err
	}
	if merged {
		i.logger.Info("import.patient_merged", "patient_id", p.ID)
	}
	id := p.ID
	return &id, nil
}

func (i *FSImporter) resultFromHistory(h *ent.History, sourcePath string, dedup bool) Result {
	r := Result{
		SourcePath:   sourcePath,
		HistoryID:    h.ID.String(),
		Deduplicated: dedup,
		Fingerprint:  h.Fingerprint,
		Format:       h.Format,
		Status:       h.Status,
		ImportedAt:   h.ImportedAt,
	}
	if h.PatientID != nil {
		r.PatientID = h.PatientID.String()
	}
	return r
}
