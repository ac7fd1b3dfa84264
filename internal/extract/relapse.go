package extract

import "strings"

// relapseNegationWindow is how many words before a relapse token a negation
// still applies to it.
const relapseNegationWindow = 3

// CountRelapses approximates how many relapse mentions a narrative carries.
// A token within a few words of a negation ("sin nuevos brotes") does not
// count. The same episode retold in two sentences counts twice: the figure is
// a screening upper bound, not a clinical relapse count.
func CountRelapses(text string) int {
	words := strings.Fields(foldLine(text))
	count := 0
	for i, w := range words {
		w = strings.Trim(w, ".,;:()!?\"'")
		if !isRelapseToken(w) {
			continue
		}
		if negatedBefore(words, i) {
			continue
		}
		count++
	}
	return count
}

func isRelapseToken(word string) bool {
	for _, t := range relapseTokens {
		if strings.HasPrefix(word, t) {
			return true
		}
	}
	return false
}

func negatedBefore(words []string, i int) bool {
	start := i - relapseNegationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		w := strings.Trim(words[j], ".,;:()!?\"'")
		for _, n := range relapseNegations {
			// "libre de" folds to two words; matching its first word is enough
			if w == n || strings.HasPrefix(n, w+" ") {
				return true
			}
		}
	}
	return false
}
