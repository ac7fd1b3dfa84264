package extract

import "testing"

func TestContentHash(t *testing.T) {
	if got := ContentHash(""); got != emptySourceHash {
		t.Errorf("ContentHash(\"\") = %q; want sentinel", got)
	}
	if got := ContentHash("  \n\t "); got != emptySourceHash {
		t.Errorf("whitespace-only hash = %q; want sentinel", got)
	}
	if len(ContentHash("historia clínica")) != contentHashLen {
		t.Errorf("hash length = %d; want %d", len(ContentHash("historia clínica")), contentHashLen)
	}
	// case and surrounding whitespace do not change the hash
	if ContentHash("Historia Clínica") != ContentHash("  historia clínica\n") {
		t.Error("hash must be case- and trim-insensitive")
	}
	if ContentHash("historia a") == ContentHash("historia b") {
		t.Error("distinct content must hash differently")
	}
}

func TestFingerprint_SamePatientSameDateDistinctContent(t *testing.T) {
	e := testEngine()
	base := "La Plata, 16 de Noviembre de 2020\nPaciente: Gómez, Ana\nDNI: 31.998.442\n"
	a := e.Process(base+"Evolución estable.", "TXT", "a.txt")
	b := e.Process(base+"Nuevo brote sensitivo.", "TXT", "b.txt")
	if a.Patient.DNI == nil || b.Patient.DNI == nil || *a.Patient.DNI != *b.Patient.DNI {
		t.Fatal("both drafts must share the DNI for this scenario")
	}
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("different documents for the same patient and date must not collide")
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	e := testEngine()
	a := e.Process(syntheticHistory, "PDF", "a.pdf")
	b := e.Process(syntheticHistory, "PDF", "a.pdf")
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("identical raw text must yield an identical fingerprint")
	}
}

func TestFingerprint_FallsBackWithoutDNI(t *testing.T) {
	d := &DraftRecord{
		Consultation: Consultation{Date: strPtr("2020-11-16")},
		Disease:      DiseaseInfo{Diagnosis: strPtr("Esclerosis múltiple")},
		SourceHash:   "abc123abc123",
	}
	want := "2020-11-16|esclerosis múltiple|abc123abc123"
	if got := Fingerprint(d); got != want {
		t.Errorf("fingerprint = %q; want %q", got, want)
	}

	d.Patient.DNI = strPtr("31998442")
	if got := Fingerprint(d); got != "31998442|2020-11-16|abc123abc123" {
		t.Errorf("fingerprint = %q; DNI tier must take precedence", got)
	}
}
