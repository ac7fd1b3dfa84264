package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ulieet/NeuroSoft/gen/ent"
)

func samplePayload() map[string]interface{} {
	return map[string]interface{}{
		"paciente": map[string]interface{}{
			"nombre":      "Gómez, Ana",
			"dni":         "31998442",
			"obra_social": "IOMA",
		},
		"consulta": map[string]interface{}{"fecha": "2020-11-16"},
		"enfermedad": map[string]interface{}{
			"diagnostico": "Esclerosis múltiple",
			"forma":       "RR",
			"edss":        2.5,
		},
		"tratamientos": []interface{}{
			map[string]interface{}{"molecula": "Natalizumab", "estado": "Suspendido"},
			map[string]interface{}{"molecula": "Fingolimod", "estado": "Activo"},
		},
	}
}

func TestHistoryRow_FromDraft(t *testing.T) {
	h := &ent.History{
		FileName:   "historia.pdf",
		Status:     "PROCESADO",
		Draft:      samplePayload(),
		ImportedAt: time.Date(2021, 1, 5, 12, 0, 0, 0, time.UTC),
	}
	r := HistoryRow(h)
	if r.PatientName != "Gómez, Ana" || r.DNI != "31998442" || r.Insurer != "IOMA" {
		t.Errorf("identity = %q/%q/%q", r.PatientName, r.DNI, r.Insurer)
	}
	if r.Consultation != "2020-11-16" || r.Diagnosis != "Esclerosis múltiple" || r.Form != "RR" {
		t.Errorf("clinical = %q/%q/%q", r.Consultation, r.Diagnosis, r.Form)
	}
	if r.EDSS != "2.5" {
		t.Errorf("edss = %q; want 2.5", r.EDSS)
	}
	if r.Treatment != "Fingolimod" {
		t.Errorf("treatment = %q; want the active molecule", r.Treatment)
	}
	if r.ImportedAt != "2021-01-05" {
		t.Errorf("imported = %q", r.ImportedAt)
	}
}

func TestHistoryRow_ValidatedWinsOverDraft(t *testing.T) {
	validated := samplePayload()
	validated["enfermedad"].(map[string]interface{})["edss"] = 3.0
	h := &ent.History{
		FileName:   "historia.pdf",
		Status:     "VALIDADA",
		Draft:      samplePayload(),
		Validated:  validated,
		ImportedAt: time.Now(),
	}
	r := HistoryRow(h)
	if r.EDSS != "3" {
		t.Errorf("edss = %q; validated payload must win", r.EDSS)
	}
}

func TestHistoryRow_MissingFieldsStayEmpty(t *testing.T) {
	h := &ent.History{FileName: "vacia.txt", Status: "PROCESADO", ImportedAt: time.Now()}
	r := HistoryRow(h)
	if r.PatientName != "" || r.EDSS != "" || r.Treatment != "" {
		t.Errorf("row = %+v; want empty cells for missing payload", r)
	}
}

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	rows := []Row{{
		PatientName:  "Gómez, Ana",
		DNI:          "31998442",
		Consultation: "2020-11-16",
		Status:       "PROCESADO",
		FileName:     "historia.pdf",
	}}
	raw, err := WriteWorkbook(rows)
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Historias", "A2")
	if err != nil || got != "Gómez, Ana" {
		t.Errorf("A2 = %q, %v; want patient name", got, err)
	}
	head, _ := f.GetCellValue("Historias", "A1")
	if head != "Paciente" {
		t.Errorf("A1 = %q; want header row", head)
	}
}
