package constants

import "strings"

// Source format labels produced by text extraction.
const (
	FileTypePDF     = "PDF"
	FileTypeDOCX    = "DOCX"
	FileTypeTXT     = "TXT"
	FileTypeUnknown = "DESCONOCIDO"
)

// FileTypes holds the source format labels produced by text extraction.
var FileTypes = []string{FileTypePDF, FileTypeDOCX, FileTypeTXT, FileTypeUnknown}

// AllowedExtensions holds the allowed file extensions for history imports.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
