package constants

// HistoryStatus is the canonical status for stored clinical histories.
type HistoryStatus string

// Stable values (store these exact strings in DB).
const (
	HistoryStatusProcessed HistoryStatus = "PROCESADO"            // draft produced by the extraction engine
	HistoryStatusPending   HistoryStatus = "PENDIENTE_VALIDACION" // awaiting clinician review
	HistoryStatusValidated HistoryStatus = "VALIDADA"             // clinician-corrected record stored
)

// HistoryStatusValues lists the stable status strings for schema validation.
func HistoryStatusValues() []string {
	return []string{
		string(HistoryStatusProcessed),
		string(HistoryStatusPending),
		string(HistoryStatusValidated),
	}
}

// Confidence is the coarse tier indicating how strong the heuristic was that
// produced a field value.
type Confidence string

const (
	ConfidenceHigh   Confidence = "Alta"  // label-anchored exact match
	ConfidenceMedium Confidence = "Media" // section-scoped heuristic
	ConfidenceLow    Confidence = "Baja"  // whole-document fallback
)
