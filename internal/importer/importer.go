// Package importer runs the intake workflow: store the upload, extract its
// text, run the drafting engine, deduplicate, and persist the history with
// its patient master record.
package importer

import (
	"context"
	"time"
)

// Result is the per-file import outcome.
type Result struct {
	SourcePath   string
	HistoryID    string
	PatientID    string
	Deduplicated bool
	Fingerprint  string
	Format       string
	Status       string
	ImportedAt   time.Time
	Err          string
}

// DirStats summarizes a directory import.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Importer is the behavior the gRPC layer depends on.
type Importer interface {
	// ImportPath imports a single document.
	ImportPath(ctx context.Context, path string) (Result, error)
	// ImportDirectory imports all matching files under root.
	ImportDirectory(ctx context.Context, root string, skipHidden bool) ([]Result, DirStats, error)
}
