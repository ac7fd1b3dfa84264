package importer

import (
	"testing"

	"github.com/ulieet/NeuroSoft/internal/extract"
)

func TestAllowedExt(t *testing.T) {
	cases := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{".PDF", true},
		{"docx", true},
		{".txt", true},
		{".jpg", false},
		{".doc", false},
		{"", false},
	}
	for _, c := range cases {
		if got := AllowedExt(c.ext); got != c.want {
			t.Errorf("AllowedExt(%q) = %v; want %v", c.ext, got, c.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/spool/.historia.pdf", true},
		{"/spool/.cache", true},
		{"/spool/historia.pdf", false},
		{"/spool/.hidden/historia.pdf", false},
	}
	for _, c := range cases {
		if got := IsHidden(c.path); got != c.want {
			t.Errorf("IsHidden(%q) = %v; want %v", c.path, got, c.want)
		}
	}
}

func TestDraftToMap_KeepsSpanishFieldNames(t *testing.T) {
	e := extract.NewEngine(nil)
	draft := e.Process("Paciente: Gómez, Ana\nDNI: 31.998.442\nFecha de consulta: 16/11/2020\n", "TXT", "gomez.txt")

	m, err := DraftToMap(draft)
	if err != nil {
		t.Fatalf("DraftToMap: %v", err)
	}
	pac, ok := m["paciente"].(map[string]interface{})
	if !ok {
		t.Fatalf("paciente key missing or wrong type: %#v", m["paciente"])
	}
	if pac["dni"] != "31998442" {
		t.Errorf("dni = %v; want 31998442", pac["dni"])
	}
	if _, ok := m["fuente"]; !ok {
		t.Error("fuente key missing")
	}
}
