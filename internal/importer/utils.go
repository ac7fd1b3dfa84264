package importer

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/internal/extract"
)

// AllowedExt checks if a file extension is in the allowed set (pdf/docx/txt).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// DraftToMap round-trips the draft through JSON so it can be stored in the
// histories jsonb column with its Spanish field names intact.
func DraftToMap(d *extract.DraftRecord) (map[string]interface{}, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
