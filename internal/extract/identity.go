package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ulieet/NeuroSoft/constants"
)

var (
	rePatientLabel = regexp.MustCompile(`(?i)^\s*paciente\s*[:\-]\s*(.+)$`)
	reNameSurname  = regexp.MustCompile(`(?i)^\s*(?:apellidos?\s+y\s+nombres?|nombres?\s+y\s+apellidos?)\s*[:\-]?\s*(.*)$`)
	reHonorific    = regexp.MustCompile(`(?i)^\s*(?:sr\.?|sra\.?|srta\.?)\s+([A-ZÁÉÍÓÚÑ][\p{L} .'-]{2,60})$`)

	reDNILine    = regexp.MustCompile(`(?i)\b(?:dni|documento)\s*[:\-]?\s*([\d.,\s]{6,14})`)
	reDigitGroup = regexp.MustCompile(`[\d.,]{6,14}`)

	reInsurer = regexp.MustCompile(`(?i)\bobra\s+social\s*[:\-]?\s*([^\n]+)`)
	reMember  = regexp.MustCompile(`(?i)\b(?:n[°ºro.]*\s*(?:de\s+)?afiliado|afiliado\s*n[°ºro.]*)\s*[:\-]?\s*([\w\-/.]+)`)

	reEDSS  = regexp.MustCompile(`(?i)\bedss\s*[:\-]?\s*(\d+[.,]?\d*)`)
	reDX    = regexp.MustCompile(`(?i)(?:diagn[oó]stico|impresi[oó]n diagn[oó]stica)\s*[:\-]?\s*(.+)`)
	reBirth = regexp.MustCompile(`(?i)\b(?:fecha\s+de\s+nacimiento|nacimiento|nacid[oa]\s+el)\s*[:\-]?\s*([^\n]{4,40})`)

	reNonDigit = regexp.MustCompile(`\D`)
)

// nameScanWindow limits identity label scanning to the top of the document;
// narrative sentences further down mention "la paciente" constantly.
const nameScanWindow = 20

// extractName finds the patient name from label patterns near the top of the
// document. The fallback — a short, digit-free line that is not a section
// header — is the weakest-confidence source.
func (e *Engine) extractName(text string) (string, constants.Confidence) {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > nameScanWindow {
		limit = nameScanWindow
	}

	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if m := reNameSurname.FindStringSubmatch(line); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v, constants.ConfidenceHigh
			}
			// label alone: the name sits on the next line
			if i+1 < len(lines) {
				if next := strings.TrimSpace(lines[i+1]); len(next) > 2 {
					return next, constants.ConfidenceHigh
				}
			}
		}
		if m := rePatientLabel.FindStringSubmatch(line); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v, constants.ConfidenceHigh
			}
		}
		if m := reHonorific.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), constants.ConfidenceMedium
		}
	}

	// Weak fallback: a short top-of-document line with no digits that does
	// not open a known section.
	top := limit
	if top > 5 {
		top = 5
	}
	for i := 0; i < top; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len([]rune(line)) > 45 {
			continue
		}
		if strings.ContainsAny(line, "0123456789") {
			continue
		}
		if _, _, isHeader := e.Segmenter.matchHeader(line); isHeader {
			continue
		}
		if strings.Contains(line, ",") {
			continue
		}
		return line, constants.ConfidenceLow
	}
	return "", ""
}

// extractDNI accepts digit sequences of length 6–8 after grouping punctuation
// is stripped, from a labeled line or the line following a bare label.
func extractDNI(text string) string {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if m := reDNILine.FindStringSubmatch(line); m != nil {
			if d := cleanDNI(m[1]); d != "" {
				return d
			}
		}
	}
	for i, line := range lines {
		folded := foldLine(line)
		if !strings.Contains(folded, "dni") && !strings.Contains(folded, "documento") {
			continue
		}
		if i+1 < len(lines) {
			if m := reDigitGroup.FindString(lines[i+1]); m != "" {
				if d := cleanDNI(m); d != "" {
					return d
				}
			}
		}
	}
	return ""
}

func cleanDNI(raw string) string {
	digits := reNonDigit.ReplaceAllString(raw, "")
	if len(digits) < 6 || len(digits) > 8 {
		return ""
	}
	return digits
}

// extractInsurer returns the insurer name and member number. The insurer
// capture is cut before a trailing member-number phrase sharing the line.
func extractInsurer(text string) (insurer, member string) {
	if m := reInsurer.FindStringSubmatch(text); m != nil {
		v := strings.TrimSpace(m[1])
		if loc := reMember.FindStringIndex(v); loc != nil {
			v = strings.TrimSpace(strings.TrimRight(v[:loc[0]], " -,.;"))
		}
		insurer = v
	}
	if m := reMember.FindStringSubmatch(text); m != nil {
		member = strings.TrimSpace(m[1])
	}
	return insurer, member
}

// extractEDSS parses the disability score, tolerating a comma decimal
// separator. Malformed numbers yield no value rather than an error.
func extractEDSS(text string) (float64, bool) {
	m := reEDSS.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractDiagnosis captures the remainder of a diagnosis-labeled line. Any
// diagnosis mentioning the core disease term is rewritten to the canonical
// full name.
func extractDiagnosis(text string) string {
	m := reDX.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	dx := strings.TrimSpace(m[1])
	if dx == "" {
		return ""
	}
	if strings.Contains(foldLine(dx), "esclerosis") {
		return "Esclerosis múltiple"
	}
	return dx
}

// diagnosisFromSection reads a diagnosis out of an already-segmented section,
// whose header label has been stripped: the whole first line is the
// diagnosis unless an inner label is still present.
func diagnosisFromSection(body string) string {
	if dx := extractDiagnosis(body); dx != "" {
		return dx
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(foldLine(line), "esclerosis") {
			return "Esclerosis múltiple"
		}
		return line
	}
	return ""
}

// extractBirthDate resolves a date within the window following a birth-date
// label.
func (e *Engine) extractBirthDate(text string) (string, bool) {
	m := reBirth.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return e.Dates.Resolve(m[1])
}

// onsetWindow is how far past an onset anchor a date may sit.
const onsetWindow = 80

// extractOnsetDate locates the symptom-onset date via a phrase anchor
// followed by date resolution within a short window.
func (e *Engine) extractOnsetDate(text string) (string, bool) {
	folded := foldLine(text)
	for _, anchor := range onsetAnchors {
		idx := strings.Index(folded, anchor)
		if idx < 0 {
			continue
		}
		end := idx + len(anchor) + onsetWindow
		if end > len(folded) {
			end = len(folded)
		}
		// the window never crosses the anchor's line: a date further down
		// belongs to some other statement
		if nl := strings.IndexByte(folded[idx:end], '\n'); nl >= 0 {
			end = idx + nl
		}
		// resolve against the folded text so anchor offsets stay aligned
		if d, ok := e.Dates.Resolve(folded[idx:end]); ok {
			return d, true
		}
	}
	return "", false
}

// extractConsultationDate prefers a date on a letterhead-style line naming a
// known city, skipping the already-resolved birth date; it falls back to the
// first resolvable date anywhere in the document, again excluding the birth
// date.
func (e *Engine) extractConsultationDate(text, birthDate string) (string, constants.Confidence) {
	for _, line := range strings.Split(text, "\n") {
		folded := foldLine(line)
		cityLine := false
		for _, c := range letterheadCities {
			if strings.Contains(folded, c) {
				cityLine = true
				break
			}
		}
		if !cityLine {
			continue
		}
		if d, ok := e.Dates.Resolve(line); ok && d != birthDate {
			return d, constants.ConfidenceHigh
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if d, ok := e.Dates.Resolve(line); ok && d != birthDate {
			return d, constants.ConfidenceLow
		}
	}
	return "", ""
}
