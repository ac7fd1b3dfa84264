package extract

import (
	"strings"
	"testing"
)

func segmentsOf(e *Engine, text string) map[string]string {
	return e.Segmenter.Segment(text)
}

func TestExtractTreatments_SingleMention(t *testing.T) {
	e := testEngine()
	text := "Tratamiento: inicia Fingolimod 0.5mg vía oral, diario"
	got := e.extractTreatments(text, map[string]bool{"solicitud": true}, segmentsOf(e, text))
	if len(got) != 1 {
		t.Fatalf("treatments = %d; want 1", len(got))
	}
	tr := got[0]
	if tr.Molecule != "Fingolimod" {
		t.Errorf("molecule = %q; want Fingolimod", tr.Molecule)
	}
	if tr.Dose == nil || *tr.Dose != "0.5mg" {
		t.Errorf("dose = %v; want 0.5mg", tr.Dose)
	}
	if tr.Route == nil || *tr.Route != "VO" {
		t.Errorf("route = %v; want VO", tr.Route)
	}
	if tr.Frequency == nil || *tr.Frequency != "diario" {
		t.Errorf("frequency = %v; want diario", tr.Frequency)
	}
	if tr.Status == nil || *tr.Status != TreatmentActive {
		t.Errorf("status = %v; want Activo", tr.Status)
	}
}

func TestExtractTreatments_ReconciliationUnionsFields(t *testing.T) {
	// A later mention supplies missing fields without discarding found ones.
	e := testEngine()
	text := strings.Join([]string{
		"inicia Fingolimod 0.5mg",
		"evolución favorable",
		"continúa Fingolimod, tres veces por semana",
	}, "\n")
	got := e.extractTreatments(text, nil, segmentsOf(e, text))
	if len(got) != 1 {
		t.Fatalf("treatments = %v; want exactly one Fingolimod entry", got)
	}
	tr := got[0]
	if tr.Dose == nil || *tr.Dose != "0.5mg" {
		t.Errorf("dose = %v; want 0.5mg retained", tr.Dose)
	}
	if tr.Frequency == nil || !strings.Contains(*tr.Frequency, "tres veces") {
		t.Errorf("frequency = %v; want later mention merged in", tr.Frequency)
	}
	if tr.Status == nil || *tr.Status != TreatmentActive {
		t.Errorf("status = %v; want Activo", tr.Status)
	}
}

func TestExtractTreatments_SuspensionMarkers(t *testing.T) {
	e := testEngine()
	text := "se suspende Interferón beta-1a por intolerancia"
	got := e.extractTreatments(text, nil, segmentsOf(e, text))
	if len(got) != 1 {
		t.Fatalf("treatments = %d; want 1", len(got))
	}
	if got[0].Status == nil || *got[0].Status != TreatmentSuspended {
		t.Errorf("status = %v; want Suspendido", got[0].Status)
	}
	if got[0].Molecule != "Interferón beta-1a" {
		t.Errorf("molecule = %q; want canonical interferon", got[0].Molecule)
	}
}

func TestExtractTreatments_SuspendedThenRestartedYieldsTwoEntries(t *testing.T) {
	// Entry identity is (molecule, status): a suspension followed by a
	// restart must not collapse into a single suspended entry.
	e := testEngine()
	text := strings.Join([]string{
		"se suspende Natalizumab por JC positivo",
		"inicia Natalizumab nuevamente 300 mg mensual",
	}, "\n")
	got := e.extractTreatments(text, nil, segmentsOf(e, text))
	if len(got) != 2 {
		t.Fatalf("treatments = %v; want suspended and restarted entries", got)
	}
	byStatus := map[string]Treatment{}
	for _, tr := range got {
		if tr.Molecule != "Natalizumab" {
			t.Errorf("molecule = %q; want Natalizumab", tr.Molecule)
		}
		if tr.Status == nil {
			t.Fatalf("status missing on %v", tr)
		}
		byStatus[*tr.Status] = tr
	}
	if _, ok := byStatus[TreatmentSuspended]; !ok {
		t.Errorf("statuses = %v; want a Suspendido entry", got)
	}
	restart, ok := byStatus[TreatmentActive]
	if !ok {
		t.Fatalf("statuses = %v; want an Activo entry for the restart", got)
	}
	if restart.Dose == nil || *restart.Dose != "300mg" {
		t.Errorf("restart dose = %v; want 300mg", restart.Dose)
	}
}

func TestExtractTreatments_RequestSectionSupersedesStatus(t *testing.T) {
	// The narrative says suspended, the medication request says otherwise;
	// the request wins for status and date.
	e := testEngine()
	text := strings.Join([]string{
		"Evolución: Natalizumab previo, suspendido",
		"Solicitud: Natalizumab 300 mg mensual desde 01/03/2024",
	}, "\n")
	got := e.extractTreatments(text, map[string]bool{"solicitud": true}, segmentsOf(e, text))
	if len(got) != 1 {
		t.Fatalf("treatments = %v; want one reconciled entry", got)
	}
	tr := got[0]
	if tr.Status == nil || *tr.Status != TreatmentActive {
		t.Errorf("status = %v; want request section to supersede", tr.Status)
	}
	if tr.StartDate == nil || *tr.StartDate != "2024-03-01" {
		t.Errorf("start = %v; want request date", tr.StartDate)
	}
}

func TestExtractTreatments_BibliographicLinesExcluded(t *testing.T) {
	e := testEngine()
	text := strings.Join([]string{
		"Polman et al. Natalizumab for relapsing multiple sclerosis. Vol. 354.",
		"Revista de neurología: ocrelizumab y progresión",
	}, "\n")
	got := e.extractTreatments(text, nil, segmentsOf(e, text))
	if len(got) != 0 {
		t.Fatalf("treatments = %v; citation lines must not produce drugs", got)
	}
}

func TestExtractTreatments_TradeNameNormalized(t *testing.T) {
	e := testEngine()
	text := "mantiene Gilenya 0,5 mg"
	got := e.extractTreatments(text, nil, segmentsOf(e, text))
	if len(got) != 1 || got[0].Molecule != "Fingolimod" {
		t.Fatalf("treatments = %v; want trade name mapped to Fingolimod", got)
	}
}
