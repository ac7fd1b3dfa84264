package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// emptySourceHash is the fixed sentinel for documents whose text is empty.
const emptySourceHash = "000000000000"

// contentHashLen keeps the hash short; it only needs to distinguish
// same-patient same-date documents, not resist collisions at scale.
const contentHashLen = 12

// ContentHash hashes the lowercased, trimmed source text.
func ContentHash(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return emptySourceHash
	}
	sum := sha256.Sum256([]byte(t))
	return hex.EncodeToString(sum[:])[:contentHashLen]
}

// Fingerprint derives a stable signature from a draft, used by the import
// workflow to reject re-submission of the same source document. With a
// national ID present the fingerprint is DNI + consultation date + content
// hash, so two genuinely different documents for the same patient and date
// stay distinguishable. Without a DNI it falls back to consultation date +
// lowercased diagnosis + content hash. The result is opaque: callers compare
// it for equality and nothing else.
func Fingerprint(d *DraftRecord) string {
	hash := d.SourceHash
	if hash == "" {
		hash = ContentHash(d.SourceText)
	}

	date := ""
	if d.Consultation.Date != nil {
		date = *d.Consultation.Date
	}

	if d.Patient.DNI != nil && *d.Patient.DNI != "" {
		return *d.Patient.DNI + "|" + date + "|" + hash
	}

	diagnosis := ""
	if d.Disease.Diagnosis != nil {
		diagnosis = strings.ToLower(strings.TrimSpace(*d.Disease.Diagnosis))
	}
	return date + "|" + diagnosis + "|" + hash
}
