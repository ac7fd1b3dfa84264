package constants

import "strings"

// TherapyPotency buckets disease-modifying therapies by efficacy for the
// cohort reports.
type TherapyPotency string

const (
	PotencyHigh     TherapyPotency = "Alta eficacia"
	PotencyModerate TherapyPotency = "Eficacia moderada"
	PotencyUnknown  TherapyPotency = "Sin clasificar"
)

// highEfficacy and moderateEfficacy hold canonical molecule names as produced
// by the extraction engine's molecule normalizer.
var highEfficacy = []string{
	"Natalizumab",
	"Ocrelizumab",
	"Rituximab",
	"Alemtuzumab",
	"Cladribina",
}

var moderateEfficacy = []string{
	"Interferón beta-1a",
	"Interferón beta-1b",
	"Acetato de glatiramero",
	"Fingolimod",
	"Teriflunomida",
	"Dimetilfumarato",
	"Siponimod",
	"Ozanimod",
}

// ClassifyTherapy returns the potency bucket for a canonical molecule name.
func ClassifyTherapy(molecule string) TherapyPotency {
	m := strings.TrimSpace(molecule)
	for _, h := range highEfficacy {
		if strings.EqualFold(m, h) {
			return PotencyHigh
		}
	}
	for _, mod := range moderateEfficacy {
		if strings.EqualFold(m, mod) {
			return PotencyModerate
		}
	}
	return PotencyUnknown
}
