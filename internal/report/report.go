// Package report computes cohort indicators over stored histories. It is
// pure: the gRPC layer loads records, this package only aggregates them.
package report

import (
	"sort"

	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/internal/extract"
)

// HistoryRecord is one history as the aggregator sees it. PatientKey groups
// records of the same person: a patient UUID when the history is linked, the
// history ID otherwise, so unlinked histories count as one-patient cohorts.
type HistoryRecord struct {
	PatientKey string
	Draft      *extract.DraftRecord
	Validated  bool
}

// Summary is the cohort report payload.
type Summary struct {
	TotalPatients      int
	TotalHistories     int
	ValidatedHistories int
	TotalRelapses      int
	MeanEDSS           float64
	NEDAPatients       int
	ByForm             map[string]int
	ByInsurer          map[string]int
	ByTherapyPotency   map[string]int
}

type patientAccum struct {
	relapses       int
	activeImaging  bool
	latestEDSSDate string
	latestEDSS     float64
	hasEDSS        bool
	form           string
	insurer        string
}

// Build aggregates the records into a Summary. Records without a draft are
// counted in the totals and otherwise skipped.
func Build(records []HistoryRecord) *Summary {
	s := &Summary{
		ByForm:           map[string]int{},
		ByInsurer:        map[string]int{},
		ByTherapyPotency: map[string]int{},
	}

	patients := map[string]*patientAccum{}

	for _, rec := range records {
		s.TotalHistories++
		if rec.Validated {
			s.ValidatedHistories++
		}
		if rec.Draft == nil {
			continue
		}
		d := rec.Draft

		acc := patients[rec.PatientKey]
		if acc == nil {
			acc = &patientAccum{}
			patients[rec.PatientKey] = acc
		}

		relapses := extract.CountRelapses(d.SourceText)
		acc.relapses += relapses
		s.TotalRelapses += relapses

		for _, ev := range d.Studies.Imaging {
			if activity(ev) {
				acc.activeImaging = true
			}
		}

		// the most recent consultation wins for per-patient EDSS and form
		date := ""
		if d.Consultation.Date != nil {
			date = *d.Consultation.Date
		}
		if d.Disease.EDSS != nil && (!acc.hasEDSS || date >= acc.latestEDSSDate) {
			acc.latestEDSS = *d.Disease.EDSS
			acc.latestEDSSDate = date
			acc.hasEDSS = true
		}
		if d.Disease.Form != nil {
			acc.form = string(*d.Disease.Form)
		}
		if d.Patient.Insurer != nil {
			acc.insurer = *d.Patient.Insurer
		}

		for _, t := range d.Treatments {
			if t.Status != nil && *t.Status == extract.TreatmentActive {
				s.ByTherapyPotency[string(constants.ClassifyTherapy(t.Molecule))]++
			}
		}
	}

	s.TotalPatients = len(patients)

	var edssSum float64
	var edssN int
	for _, acc := range patients {
		if acc.relapses == 0 && !acc.activeImaging {
			s.NEDAPatients++
		}
		if acc.hasEDSS {
			edssSum += acc.latestEDSS
			edssN++
		}
		if acc.form != "" {
			s.ByForm[acc.form]++
		}
		if acc.insurer != "" {
			s.ByInsurer[acc.insurer]++
		}
	}
	if edssN > 0 {
		s.MeanEDSS = edssSum / float64(edssN)
	}

	return s
}

func activity(ev extract.ImagingEvent) bool {
	if ev.Activity != nil && *ev.Activity == extract.ActivityActive {
		return true
	}
	return ev.Gd != nil && *ev.Gd == extract.GdPositive
}

// SortedCounts flattens a count map into deterministic key order for wire
// transport.
func SortedCounts(m map[string]int) []CountByKey {
	out := make([]CountByKey, 0, len(m))
	for k, v := range m {
		out = append(out, CountByKey{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// CountByKey mirrors one row of a distribution.
type CountByKey struct {
	Key   string
	Count int
}
