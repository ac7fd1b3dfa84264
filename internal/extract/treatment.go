package extract

import (
	"regexp"
	"strings"
)

var (
	reDose  = regexp.MustCompile(`(?i)\b(\d+[.,]?\d*)\s*(mg|mcg|µg|g|ml|mui|ui)\b`)
	reRoute = regexp.MustCompile(`(?i)\b(sc|subcut[aá]ne[ao]|iv|intravenos[ao]|im|intramuscular|vo|oral)\b`)

	// frequency phrase buckets: "3 veces por semana", "día por medio",
	// "1 comprimido cada 12 horas"
	reFreqTimes = regexp.MustCompile(`(?i)\b(\d+|una|dos|tres|cuatro)\s+(veces|aplicaciones?|tomas?)\b[^.\n]*?\b(d[ií]as?|semanas?|mes(?:es)?)\b`)
	reFreqAlt   = regexp.MustCompile(`(?i)\bd[ií]a\s+por\s+medio\b`)
	reFreqEvery = regexp.MustCompile(`(?i)\b(\d+)\s+(comprimidos?|tabletas?|c[aá]psulas?|ampollas?)\b[^.\n]*?\bcada\s+(\d+)\s*(h|horas?|d[ií]as?)\b`)
	reFreqWord  = regexp.MustCompile(`(?i)\b(diari[ao]|semanal|mensual|quincenal)\b`)
)

// extractTreatments scans every logical line for molecule mentions and
// reconciles them into one Treatment per (canonical molecule, status): a
// therapy suspended and later restarted yields two entries. requestSections
// holds the text of therapy request/order sections; a mention found there
// supersedes status and start date, so narrative mentions of that molecule
// fold into the request entry instead of opening one under their own status.
func (e *Engine) extractTreatments(text string, requestSections map[string]bool, sections map[string]string) []Treatment {
	type slot struct {
		t Treatment
	}
	byIdentity := map[string]*slot{}
	requestByMolecule := map[string]*slot{}
	var keys []string

	// Union of the most complete fields: later mentions supply what is
	// still missing without discarding found values.
	merge := func(dst *slot, mention Treatment) {
		if dst.t.Dose == nil {
			dst.t.Dose = mention.Dose
		}
		if dst.t.Route == nil {
			dst.t.Route = mention.Route
		}
		if dst.t.Frequency == nil {
			dst.t.Frequency = mention.Frequency
		}
		if dst.t.StartDate == nil {
			dst.t.StartDate = mention.StartDate
		}
	}

	scan := func(block string, fromRequest bool) {
		for _, raw := range strings.Split(block, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" || isBibliographic(line) {
				continue
			}
			_, canonical, ok := matchMolecule(line)
			if !ok {
				continue
			}

			mention := e.treatmentFromLine(line, canonical)

			// Request sections are scanned first; their entry wins the
			// molecule's status and date over any narrative mention.
			if !fromRequest {
				if rs, ok := requestByMolecule[canonical]; ok {
					merge(rs, mention)
					continue
				}
			}

			key := canonical
			if mention.Status != nil {
				key += "|" + *mention.Status
			}
			existing, seen := byIdentity[key]
			if !seen {
				s := &slot{t: mention}
				byIdentity[key] = s
				keys = append(keys, key)
				if fromRequest {
					requestByMolecule[canonical] = s
				}
				continue
			}
			merge(existing, mention)
		}
	}

	for name, body := range sections {
		if requestSections[name] {
			scan(body, true)
		}
	}
	scan(text, false)

	out := make([]Treatment, 0, len(keys))
	for _, k := range keys {
		out = append(out, byIdentity[k].t)
	}
	return out
}

// treatmentFromLine extracts dose, route, frequency, status and start date
// from a single mention line.
func (e *Engine) treatmentFromLine(line, canonical string) Treatment {
	folded := foldLine(line)
	t := Treatment{Molecule: canonical}

	if m := reDose.FindString(line); m != "" {
		t.Dose = strPtr(strings.ToLower(strings.Join(strings.Fields(m), "")))
	}
	if m := reRoute.FindStringSubmatch(folded); m != nil {
		t.Route = strPtr(canonicalRoute(m[1]))
	}
	if m := reFreqTimes.FindString(line); m != "" {
		t.Frequency = strPtr(strings.ToLower(m))
	} else if m := reFreqAlt.FindString(line); m != "" {
		t.Frequency = strPtr(strings.ToLower(m))
	} else if m := reFreqEvery.FindString(line); m != "" {
		t.Frequency = strPtr(strings.ToLower(m))
	} else if m := reFreqWord.FindString(line); m != "" {
		t.Frequency = strPtr(strings.ToLower(m))
	}

	status := TreatmentActive
	for _, marker := range suspensionMarkers {
		if strings.Contains(folded, marker) {
			status = TreatmentSuspended
			break
		}
	}
	t.Status = strPtr(status)

	if d, ok := e.Dates.Resolve(line); ok {
		t.StartDate = &d
	}
	return t
}

func canonicalRoute(raw string) string {
	switch r := foldLine(raw); {
	case strings.HasPrefix(r, "subcut"), r == "sc":
		return "SC"
	case strings.HasPrefix(r, "intraven"), r == "iv":
		return "IV"
	case strings.HasPrefix(r, "intramus"), r == "im":
		return "IM"
	default:
		return "VO"
	}
}

// isBibliographic filters citation-like lines so drug names inside references
// do not register as treatments.
func isBibliographic(line string) bool {
	folded := foldLine(line)
	for _, m := range bibliographicMarkers {
		if strings.Contains(folded, m) {
			return true
		}
	}
	return false
}
