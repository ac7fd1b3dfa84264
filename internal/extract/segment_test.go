package extract

import (
	"strings"
	"testing"
)

func TestSegment_SplitsOnHeaders(t *testing.T) {
	text := strings.Join([]string{
		"Paciente con cefalea ocasional.",
		"Diagnóstico: Esclerosis múltiple",
		"Paciente estable.",
		"Tratamiento: inicia Fingolimod",
		"Buena tolerancia.",
	}, "\n")

	got := NewSegmenter().Segment(text)

	if !strings.Contains(got["diagnostico"], "Esclerosis múltiple") {
		t.Errorf("diagnostico = %q; want diagnosis content", got["diagnostico"])
	}
	if !strings.Contains(got["diagnostico"], "Paciente estable.") {
		t.Errorf("diagnostico = %q; want following narrative absorbed", got["diagnostico"])
	}
	if !strings.Contains(got["tratamiento"], "Fingolimod") {
		t.Errorf("tratamiento = %q; want treatment content", got["tratamiento"])
	}
	if !strings.Contains(got[DefaultSection], "cefalea") {
		t.Errorf("general = %q; want pre-header narrative", got[DefaultSection])
	}
}

func TestSegment_HeaderStripsLabelAndPunctuation(t *testing.T) {
	got := NewSegmenter().Segment("Diagnóstico:- Esclerosis múltiple")
	if got["diagnostico"] != "Esclerosis múltiple" {
		t.Fatalf("diagnostico = %q; want label and punctuation stripped", got["diagnostico"])
	}
}

func TestSegment_NoHeadersYieldsDefaultSection(t *testing.T) {
	text := "Texto narrativo sin encabezados.\nSigue sin encabezados."
	got := NewSegmenter().Segment(text)
	if len(got) != 1 {
		t.Fatalf("sections = %v; want only the default section", got)
	}
	if got[DefaultSection] != text {
		t.Errorf("general = %q; want full text", got[DefaultSection])
	}
}

func TestSegment_IdempotentOnSectionOutput(t *testing.T) {
	// Segmenting one section's own output returns that same text under the
	// default name.
	text := "Diagnóstico: Esclerosis múltiple\nPaciente estable, sin cambios."
	first := NewSegmenter().Segment(text)

	body := first["diagnostico"]
	second := NewSegmenter().Segment(body)
	if second[DefaultSection] != body {
		t.Errorf("re-segmented = %q; want %q under %q", second[DefaultSection], body, DefaultSection)
	}
}

func TestSegment_LongNarrativeLineWithKeywordIsNotHeader(t *testing.T) {
	line := "Tratamiento con corticoides fue considerado pero la paciente no presentó cambios relevantes en el cuadro durante meses"
	got := NewSegmenter().Segment(line)
	if _, ok := got["tratamiento"]; ok {
		t.Fatalf("sections = %v; narrative line must not open a section", got)
	}
	if !strings.Contains(got[DefaultSection], "Tratamiento") {
		t.Errorf("general = %q; want narrative preserved", got[DefaultSection])
	}
}

func TestSegment_AccentVariantsMatch(t *testing.T) {
	for _, in := range []string{"Evolución: estable", "Evolucion: estable"} {
		got := NewSegmenter().Segment(in)
		if got["evolucion"] != "estable" {
			t.Errorf("Segment(%q) = %v; want evolucion section", in, got)
		}
	}
}

func TestSegment_NewHeaderClosesCurrentSection(t *testing.T) {
	text := "Antecedentes: hipertensión\nLaboratorio: normal"
	got := NewSegmenter().Segment(text)
	if strings.Contains(got["antecedentes"], "normal") {
		t.Errorf("antecedentes = %q; header line must not leak into prior section", got["antecedentes"])
	}
	if got["laboratorio"] != "normal" {
		t.Errorf("laboratorio = %q; want reopened section", got["laboratorio"])
	}
}
