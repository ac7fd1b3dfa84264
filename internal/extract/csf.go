package extract

import (
	"strings"

	"github.com/ulieet/NeuroSoft/constants"
)

// extractCSF resolves the spinal-fluid finding. The study is keyword-gated:
// without any lumbar-puncture vocabulary in the text it is reported as not
// performed, with low confidence since absence of mention is weak evidence.
func extractCSF(text string) (CSFFinding, constants.Confidence) {
	folded := foldLine(text)

	performed := false
	for _, k := range csfKeywords {
		if strings.Contains(folded, k) {
			performed = true
			break
		}
	}
	if !performed {
		return CSFFinding{Performed: false, Bands: BandsNotReported}, constants.ConfidenceLow
	}

	bands := BandsNotReported
	for _, p := range csfPositive {
		if strings.Contains(folded, p) {
			bands = BandsPositive
			break
		}
	}
	if bands == BandsNotReported {
		for _, n := range csfNegative {
			if strings.Contains(folded, n) {
				bands = BandsNegative
				break
			}
		}
	}
	return CSFFinding{Performed: true, Bands: bands}, constants.ConfidenceHigh
}
