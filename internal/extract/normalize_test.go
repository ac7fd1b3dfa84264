package extract

import "testing"

func TestNormalizeMolecule(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Fingolimod", "Fingolimod"},
		{"GILENYA", "Fingolimod"},
		{"copaxone", "Acetato de glatiramero"},
		{"acetato de glatiramer", "Acetato de glatiramero"},
		{"Dimetil-fumarato", "Dimetilfumarato"},
		{"interferon beta 1a", "Interferón beta-1a"},
		{"Interferón beta-1b", "Interferón beta-1b"},
		{"paracetamol", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeMolecule(c.in); got != c.want {
			t.Errorf("NormalizeMolecule(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeForm_DirectAliases(t *testing.T) {
	full := "esclerosis múltiple recurrente-remitente"
	form, ok := NormalizeForm("forma recurrente-remitente", full, "")
	if !ok || form != FormRR {
		t.Fatalf("form = %q, %v; want RR", form, ok)
	}
}

func TestNormalizeForm_SPRequiresProgressiveMarker(t *testing.T) {
	// "SP" with an explicit progressive-course assertion in the document.
	full := "esclerosis múltiple con progresión secundaria confirmada, EM-SP"
	form, ok := NormalizeForm("forma SP", full, "")
	if !ok || form != FormSP {
		t.Fatalf("form = %q, %v; want SP with marker present", form, ok)
	}
}

func TestNormalizeForm_ProgressiveMentionWithoutMarkerFallsBackToRR(t *testing.T) {
	// The document discusses progression without asserting a progressive
	// course; an explicitly remitting diagnosis forces RR.
	full := "esclerosis, se discute riesgo progresivo a futuro, forma sp en debate"
	form, ok := NormalizeForm("sp", full, "esclerosis remitente")
	if !ok || form != FormRR {
		t.Fatalf("form = %q, %v; want RR forced by remitting diagnosis", form, ok)
	}
}

func TestNormalizeForm_NoMarkerNoRemittingStaysUnset(t *testing.T) {
	full := "esclerosis, cuadro progresivo inespecífico, sp mencionada"
	if form, ok := NormalizeForm("sp", full, "esclerosis múltiple"); ok {
		t.Fatalf("form = %q; want unset without a strong marker", form)
	}
}

func TestNormalizeForm_ShortAliasNeedsWordBoundary(t *testing.T) {
	// "rr" inside an ordinary word must not classify.
	if form, ok := NormalizeForm("sin cambios en el barrio", "esclerosis", ""); ok {
		t.Fatalf("form = %q; want no match on embedded letters", form)
	}
}

func TestNormalizeForm_CIS(t *testing.T) {
	form, ok := NormalizeForm("síndrome clínicamente aislado", "esclerosis", "")
	if !ok || form != FormCIS {
		t.Fatalf("form = %q, %v; want CIS", form, ok)
	}
}
