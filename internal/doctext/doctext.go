// Package doctext turns uploaded clinical documents into plain text the
// extraction engine can read. Formats are detected by file extension; each
// parser is pure Go.
package doctext

import (
	"log/slog"
	"path/filepath"

	"github.com/ulieet/NeuroSoft/constants"
)

// Result is the text payload pulled out of a source document.
type Result struct {
	Text   string
	Pages  int
	Format string // one of constants.FileTypes
}

// Extractor dispatches files to the per-format parsers.
type Extractor struct {
	Logger *slog.Logger

	// MaxFileSize bounds how large a document the parsers will open.
	MaxFileSize int64
}

const defaultMaxFileSize = 25 << 20 // 25 MiB

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{Logger: logger, MaxFileSize: defaultMaxFileSize}
}

// Extract reads the document at path and returns its text. An unsupported
// extension is not an error: the result carries an empty text and the unknown
// format label, and the caller decides whether that is acceptable.
func (x *Extractor) Extract(path string) (*Result, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch ext {
	case "pdf":
		text, pages, err := x.extractPDF(path)
		if err != nil {
			return nil, err
		}
		return &Result{Text: Normalize(text), Pages: pages, Format: constants.FileTypePDF}, nil
	case "docx":
		text, err := x.extractDocx(path)
		if err != nil {
			return nil, err
		}
		return &Result{Text: Normalize(text), Pages: 1, Format: constants.FileTypeDOCX}, nil
	case "txt":
		text, err := x.extractText(path)
		if err != nil {
			return nil, err
		}
		return &Result{Text: Normalize(text), Pages: 1, Format: constants.FileTypeTXT}, nil
	}

	x.Logger.Warn("doctext.unsupported_extension", "path", path, "ext", ext)
	return &Result{Format: constants.FileTypeUnknown}, nil
}
