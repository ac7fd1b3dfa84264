package extract

import (
	"strings"
	"testing"

	"github.com/ulieet/NeuroSoft/constants"
)

const syntheticHistory = `La Plata, 16 de Noviembre de 2020

Paciente: Pérez, Juan
DNI: 31.998.442
Obra Social: IOMA - Nro. Afiliado: 123456/01

Diagnóstico: Esclerosis múltiple recurrente-remitente
EDSS: 2,5
Inicio de síntomas: marzo 2017

RMN de cerebro 14/05/2019: lesiones periventriculares, activa, Gd(+)

Tratamiento: inicia Fingolimod 0.5mg vía oral, diario
`

func TestProcess_EndToEnd(t *testing.T) {
	e := testEngine()
	draft := e.Process(syntheticHistory, "PDF", "historia.pdf")

	if draft.Patient.Name == nil || !strings.Contains(*draft.Patient.Name, "Pérez") {
		t.Errorf("name = %v; want patient name", draft.Patient.Name)
	}
	if draft.Patient.DNI == nil || *draft.Patient.DNI != "31998442" {
		t.Errorf("dni = %v; want 31998442", draft.Patient.DNI)
	}
	if draft.Consultation.Date == nil || *draft.Consultation.Date != "2020-11-16" {
		t.Errorf("consultation date = %v; want letterhead date", draft.Consultation.Date)
	}
	if draft.Consultation.Clinician != nil {
		t.Errorf("clinician = %v; must stay unresolved at extraction time", draft.Consultation.Clinician)
	}
	if draft.Disease.Diagnosis == nil || *draft.Disease.Diagnosis != "Esclerosis múltiple" {
		t.Errorf("diagnosis = %v; want canonical name", draft.Disease.Diagnosis)
	}
	if draft.Disease.Form == nil || *draft.Disease.Form != FormRR {
		t.Errorf("form = %v; want RR", draft.Disease.Form)
	}
	if draft.Disease.EDSS == nil || *draft.Disease.EDSS != 2.5 {
		t.Errorf("edss = %v; want 2.5", draft.Disease.EDSS)
	}
	if draft.Disease.OnsetDate == nil || *draft.Disease.OnsetDate != "2017-03-01" {
		t.Errorf("onset = %v; want 2017-03-01", draft.Disease.OnsetDate)
	}
	if len(draft.Studies.Imaging) != 1 {
		t.Fatalf("imaging = %v; want one event", draft.Studies.Imaging)
	}
	if draft.Studies.Imaging[0].Date == nil || *draft.Studies.Imaging[0].Date != "2019-05-14" {
		t.Errorf("imaging date = %v; want 2019-05-14", draft.Studies.Imaging[0].Date)
	}
	if len(draft.Treatments) != 1 || draft.Treatments[0].Molecule != "Fingolimod" {
		t.Fatalf("treatments = %v; want one Fingolimod entry", draft.Treatments)
	}
	if draft.Patient.Insurer == nil || *draft.Patient.Insurer != "IOMA" {
		t.Errorf("insurer = %v; want IOMA", draft.Patient.Insurer)
	}
	if draft.Confidence["dni"] != constants.ConfidenceHigh {
		t.Errorf("dni confidence = %q; want Alta", draft.Confidence["dni"])
	}
	if draft.SourceText == "" || draft.SourceHash == "" {
		t.Error("source text and hash must be carried on the draft")
	}
}

func TestProcess_EmptyTextYieldsAllNullDraft(t *testing.T) {
	e := testEngine()
	for _, in := range []string{"", "   \n\t  "} {
		draft := e.Process(in, "TXT", "vacio.txt")
		if draft == nil {
			t.Fatal("Process must never return nil")
		}
		if draft.Patient.Name != nil || draft.Patient.DNI != nil ||
			draft.Consultation.Date != nil || draft.Disease.Diagnosis != nil ||
			draft.Disease.EDSS != nil || len(draft.Treatments) != 0 ||
			len(draft.Studies.Imaging) != 0 {
			t.Errorf("Process(%q) = %+v; want all-null draft", in, draft)
		}
		if draft.SourceHash != emptySourceHash {
			t.Errorf("hash = %q; want empty-text sentinel", draft.SourceHash)
		}
	}
}

func TestProcess_IsPureAcrossCalls(t *testing.T) {
	e := testEngine()
	a := e.Process(syntheticHistory, "PDF", "a.pdf")
	b := e.Process(syntheticHistory, "PDF", "a.pdf")
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("identical input must produce identical drafts")
	}
}

func TestProcess_SectionExcerptsCarried(t *testing.T) {
	e := testEngine()
	draft := e.Process(syntheticHistory, "PDF", "historia.pdf")
	if _, ok := draft.Sections["diagnostico"]; !ok {
		t.Errorf("sections = %v; want diagnostico excerpt", draft.Sections)
	}
	if _, ok := draft.Sections["tratamiento"]; !ok {
		t.Errorf("sections = %v; want tratamiento excerpt", draft.Sections)
	}
}
