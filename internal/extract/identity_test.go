package extract

import (
	"strings"
	"testing"

	"github.com/ulieet/NeuroSoft/constants"
)

func TestExtractName_LabelPatterns(t *testing.T) {
	e := testEngine()
	cases := []struct {
		text string
		want string
		conf constants.Confidence
	}{
		{"Paciente: Gómez, Ana", "Gómez, Ana", constants.ConfidenceHigh},
		{"Apellido y Nombre: Gómez Ana", "Gómez Ana", constants.ConfidenceHigh},
		{"Nombre y Apellido:\nAna Gómez", "Ana Gómez", constants.ConfidenceHigh},
		{"Sra. Ana Gómez", "Ana Gómez", constants.ConfidenceMedium},
	}
	for _, c := range cases {
		name, conf := e.extractName(c.text)
		if name != c.want || conf != c.conf {
			t.Errorf("extractName(%q) = %q, %q; want %q, %q", c.text, name, conf, c.want, c.conf)
		}
	}
}

func TestExtractName_NarrativeMentionIgnored(t *testing.T) {
	e := testEngine()
	lines := make([]string, 0, 25)
	for i := 0; i < 22; i++ {
		lines = append(lines, "Texto de relleno con varios renglones y números 123.")
	}
	lines = append(lines, "Paciente: Gómez, Ana")
	name, _ := e.extractName(strings.Join(lines, "\n"))
	if name != "" {
		t.Fatalf("name = %q; labels beyond the top window must not match", name)
	}
}

func TestExtractName_WeakFallbackShortTopLine(t *testing.T) {
	e := testEngine()
	name, conf := e.extractName("Juan Carlos Pereyra\nHistoria clínica con más texto 2020")
	if name != "Juan Carlos Pereyra" || conf != constants.ConfidenceLow {
		t.Fatalf("fallback = %q, %q; want short top line at low confidence", name, conf)
	}
}

func TestExtractDNI(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"DNI: 31.998.442", "31998442"},
		{"DNI:\n38.765.432", "38765432"},
		{"Documento: 9.123.456", "9123456"},
		{"DNI: 12345", ""},          // too short after stripping
		{"DNI: 123.456.789", ""},    // too long
		{"sin identificadores", ""}, // no label
	}
	for _, c := range cases {
		if got := extractDNI(c.text); got != c.want {
			t.Errorf("extractDNI(%q) = %q; want %q", c.text, got, c.want)
		}
	}
}

func TestExtractInsurer_TrailingMemberPhraseStripped(t *testing.T) {
	insurer, member := extractInsurer("Obra Social: IOMA - Nro. Afiliado: 123456/01")
	if insurer != "IOMA" {
		t.Errorf("insurer = %q; want IOMA without trailing member phrase", insurer)
	}
	if member != "123456/01" {
		t.Errorf("member = %q; want 123456/01", member)
	}
}

func TestExtractEDSS_CommaDecimal(t *testing.T) {
	v, ok := extractEDSS("EDSS: 2,5 en la última consulta")
	if !ok || v != 2.5 {
		t.Fatalf("edss = %v, %v; want 2.5", v, ok)
	}
	if _, ok := extractEDSS("sin puntaje informado"); ok {
		t.Fatal("edss found where none exists")
	}
}

func TestExtractDiagnosis_CanonicalizesCoreDisease(t *testing.T) {
	got := extractDiagnosis("Diagnóstico: esclerosis múltiple forma remitente")
	if got != "Esclerosis múltiple" {
		t.Errorf("diagnosis = %q; want canonical name", got)
	}
	got = extractDiagnosis("Impresión diagnóstica: migraña crónica")
	if got != "migraña crónica" {
		t.Errorf("diagnosis = %q; want raw capture", got)
	}
}

func TestExtractOnsetDate_AnchoredWindow(t *testing.T) {
	e := testEngine()
	d, ok := e.extractOnsetDate("Inicio de síntomas: marzo 2017, con parestesias")
	if !ok || d != "2017-03-01" {
		t.Fatalf("onset = %q, %v; want 2017-03-01", d, ok)
	}
	if _, ok := e.extractOnsetDate("marzo 2017 sin contexto de inicio"); ok {
		t.Fatal("onset resolved without an anchor")
	}
}

func TestExtractConsultationDate_PrefersCityLetterhead(t *testing.T) {
	e := testEngine()
	text := strings.Join([]string{
		"Evolución desde 01/02/2019 sin cambios",
		"La Plata, 16 de Noviembre de 2020",
	}, "\n")
	d, conf := e.extractConsultationDate(text, "")
	if d != "2020-11-16" || conf != constants.ConfidenceHigh {
		t.Fatalf("consultation = %q, %q; want letterhead date at high confidence", d, conf)
	}
}

func TestExtractConsultationDate_ExcludesBirthDateAndFallsBack(t *testing.T) {
	e := testEngine()
	text := strings.Join([]string{
		"Fecha de nacimiento: 05/05/1985",
		"control del 10/10/2022",
	}, "\n")
	d, conf := e.extractConsultationDate(text, "1985-05-05")
	if d != "2022-10-10" || conf != constants.ConfidenceLow {
		t.Fatalf("consultation = %q, %q; want fallback date skipping birth date", d, conf)
	}
}
