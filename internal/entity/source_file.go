package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceFile represents a stored upload for data transfer between layers.
type SourceFile struct {
	ID          uuid.UUID `json:"id"`
	HistoryID   uuid.UUID `json:"history_id"`
	StoredPath  string    `json:"stored_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	Pages       int       `json:"pages"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
