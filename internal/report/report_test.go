package report

import (
	"testing"

	"github.com/ulieet/NeuroSoft/internal/extract"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func formPtr(f extract.CourseForm) *extract.CourseForm { return &f }

func draftFor(text string, edss *float64, date string) *extract.DraftRecord {
	d := &extract.DraftRecord{SourceText: text}
	d.Disease.EDSS = edss
	if date != "" {
		d.Consultation.Date = strPtr(date)
	}
	return d
}

func TestBuild_CountsAndGrouping(t *testing.T) {
	a1 := draftFor("Presentó un brote motor en 2019.", floatPtr(2.0), "2019-05-01")
	a1.Patient.Insurer = strPtr("IOMA")
	a1.Disease.Form = formPtr(extract.FormRR)

	a2 := draftFor("Sin nuevos brotes desde entonces.", floatPtr(2.5), "2021-03-10")
	a2.Disease.Form = formPtr(extract.FormRR)

	b1 := draftFor("Evolución estable, sin brotes.", floatPtr(6.0), "2020-01-01")
	b1.Disease.Form = formPtr(extract.FormSP)
	b1.Patient.Insurer = strPtr("PAMI")

	s := Build([]HistoryRecord{
		{PatientKey: "a", Draft: a1},
		{PatientKey: "a", Draft: a2, Validated: true},
		{PatientKey: "b", Draft: b1},
	})

	if s.TotalPatients != 2 || s.TotalHistories != 3 || s.ValidatedHistories != 1 {
		t.Errorf("totals = %d/%d/%d; want 2/3/1", s.TotalPatients, s.TotalHistories, s.ValidatedHistories)
	}
	if s.TotalRelapses != 1 {
		t.Errorf("relapses = %d; want 1 (negated mentions excluded)", s.TotalRelapses)
	}
	// patient a latest EDSS 2.5, patient b 6.0 -> mean 4.25
	if s.MeanEDSS != 4.25 {
		t.Errorf("mean edss = %v; want 4.25 over latest per patient", s.MeanEDSS)
	}
	if s.ByForm["RR"] != 1 || s.ByForm["SP"] != 1 {
		t.Errorf("by form = %v; want one RR and one SP patient", s.ByForm)
	}
	if s.ByInsurer["IOMA"] != 1 || s.ByInsurer["PAMI"] != 1 {
		t.Errorf("by insurer = %v", s.ByInsurer)
	}
}

func TestBuild_NEDARequiresNoRelapsesAndNoActiveImaging(t *testing.T) {
	quiet := draftFor("Control anual sin brotes.", nil, "2022-01-01")
	quiet.Studies.Imaging = []extract.ImagingEvent{{Activity: strPtr(extract.ActivityInactive)}}

	active := draftFor("Control anual sin brotes.", nil, "2022-02-01")
	active.Studies.Imaging = []extract.ImagingEvent{{Gd: strPtr(extract.GdPositive)}}

	relapsing := draftFor("Nuevo brote sensitivo.", nil, "2022-03-01")

	s := Build([]HistoryRecord{
		{PatientKey: "quiet", Draft: quiet},
		{PatientKey: "active", Draft: active},
		{PatientKey: "relapsing", Draft: relapsing},
	})

	if s.NEDAPatients != 1 {
		t.Errorf("neda = %d; want only the quiet patient", s.NEDAPatients)
	}
}

func TestBuild_TherapyPotencyCountsActiveOnly(t *testing.T) {
	d := draftFor("Control.", nil, "")
	d.Treatments = []extract.Treatment{
		{Molecule: "Natalizumab", Status: strPtr(extract.TreatmentActive)},
		{Molecule: "Fingolimod", Status: strPtr(extract.TreatmentSuspended)},
		{Molecule: "Interferón beta-1a", Status: strPtr(extract.TreatmentActive)},
	}

	s := Build([]HistoryRecord{{PatientKey: "p", Draft: d}})

	if s.ByTherapyPotency["Alta eficacia"] != 1 {
		t.Errorf("high = %d; want 1", s.ByTherapyPotency["Alta eficacia"])
	}
	if s.ByTherapyPotency["Eficacia moderada"] != 1 {
		t.Errorf("moderate = %d; want 1 (suspended drug excluded)", s.ByTherapyPotency["Eficacia moderada"])
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	s := Build(nil)
	if s.TotalPatients != 0 || s.TotalHistories != 0 || s.MeanEDSS != 0 {
		t.Errorf("empty build = %+v; want zero summary", s)
	}
}

func TestSortedCounts_Deterministic(t *testing.T) {
	got := SortedCounts(map[string]int{"b": 2, "a": 1, "c": 3})
	if len(got) != 3 || got[0].Key != "a" || got[1].Key != "b" || got[2].Key != "c" {
		t.Errorf("sorted = %v; want keys in order", got)
	}
}
