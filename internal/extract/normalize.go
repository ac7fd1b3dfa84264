package extract

import "strings"

// NormalizeMolecule canonicalizes a free-text drug mention against the alias
// table. Matching is case-, accent- and separator-insensitive; the first
// matching alias wins. Returns "" when nothing matches.
func NormalizeMolecule(text string) string {
	if text == "" {
		return ""
	}
	key := foldKey(text)
	for _, m := range moleculeAliases {
		if strings.Contains(key, foldKey(m.alias)) {
			return m.canonical
		}
	}
	return ""
}

// matchMolecule reports the first alias found in a line together with its
// canonical name, for line scanning where the raw mention matters too.
func matchMolecule(line string) (alias, canonical string, ok bool) {
	key := foldKey(line)
	for _, m := range moleculeAliases {
		if strings.Contains(key, foldKey(m.alias)) {
			return m.alias, m.canonical, true
		}
	}
	return "", "", false
}

// NormalizeForm resolves a disease-course mention to RR/SP/PP/CIS.
//
// SP and PP are only accepted when fullText carries an explicit strong marker
// of a progressive course; naive matching on "progresivo" alone misclassifies
// text that merely discusses progression. Absent such a marker, an explicit
// "remitente" diagnosis forces RR; otherwise the form stays unset.
func NormalizeForm(sectionText, fullText, diagnosis string) (CourseForm, bool) {
	form, ok := lookupForm(sectionText)
	if !ok {
		return "", false
	}
	if form == FormSP || form == FormPP {
		if hasProgressiveMarker(fullText) {
			return form, true
		}
		if strings.Contains(foldLine(diagnosis), "remitent") {
			return FormRR, true
		}
		return "", false
	}
	return form, true
}

// lookupForm finds the first alias of the form table in text. Short aliases
// ("rr", "sp") must match as whole words to avoid firing inside ordinary
// vocabulary.
func lookupForm(text string) (CourseForm, bool) {
	folded := foldLine(text)
	padded := " " + folded + " "
	for _, f := range formAliases {
		if len(f.alias) <= 4 && !strings.ContainsAny(f.alias, " -") {
			if containsWord(padded, f.alias) {
				return f.form, true
			}
			continue
		}
		if strings.Contains(folded, f.alias) {
			return f.form, true
		}
	}
	return "", false
}

func hasProgressiveMarker(fullText string) bool {
	folded := foldLine(fullText)
	for _, m := range progressiveMarkers {
		if strings.Contains(folded, m) {
			return true
		}
	}
	return false
}

// containsWord checks for tok delimited by non-letters inside padded (which
// must already carry a leading and trailing space).
func containsWord(padded, tok string) bool {
	idx := 0
	for {
		i := strings.Index(padded[idx:], tok)
		if i < 0 {
			return false
		}
		i += idx
		before := padded[i-1]
		afterIdx := i + len(tok)
		after := byte(' ')
		if afterIdx < len(padded) {
			after = padded[afterIdx]
		}
		if !isLetter(before) && !isLetter(after) {
			return true
		}
		idx = i + 1
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
