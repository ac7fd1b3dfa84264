package doctext

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulieet/NeuroSoft/constants"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and runs of spaces", "DNI:\t12.345.678   ok", "DNI: 12.345.678 ok"},
		{"blank lines capped at one", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces trimmed", "linea   \notra", "linea\notra"},
		{"empty passthrough", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Normalize(c.in); got != c.want {
				t.Errorf("Normalize(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestStreamText_OperatorHandling(t *testing.T) {
	stream := strings.Join([]string{
		"BT",
		"(Paciente: Gomez, Ana) Tj",
		"0 -14 Td",
		"[(DNI: 31.998.442)] TJ",
		"T*",
		"(EDSS: 2,5) '",
		"ET",
	}, "\n")
	got := streamText([]byte(stream))
	for _, want := range []string{"Paciente: Gomez, Ana", "DNI: 31.998.442", "EDSS: 2,5"} {
		if !strings.Contains(got, want) {
			t.Errorf("streamText missing %q in %q", want, got)
		}
	}
	if !strings.Contains(got, "Gomez, Ana\nDNI") {
		t.Errorf("positioning operator must break the line; got %q", got)
	}
}

func TestDecodePDFString(t *testing.T) {
	cases := []struct{ in, want string }{
		{`plano`, "plano"},
		{`par\(entesis\)`, "par(entesis)"},
		{`octal\040gap`, "octal gap"},
		{`salto\nlinea`, "salto\nlinea"},
	}
	for _, c := range cases {
		if got := decodePDFString([]byte(c.in)); got != c.want {
			t.Errorf("decodePDFString(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func writeDocx(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "historia.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

const docxBody = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Paciente: Gómez, Ana</w:t></w:r></w:p>
    <w:p><w:r><w:t>DNI:</w:t><w:tab/><w:t>31.998.442</w:t></w:r></w:p>
    <w:p><w:r><w:t>Diagnóstico: esclerosis múltiple</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract_Docx(t *testing.T) {
	path := writeDocx(t, t.TempDir(), docxBody)
	res, err := New(nil).Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Format != constants.FileTypeDOCX {
		t.Errorf("format = %q; want DOCX", res.Format)
	}
	lines := strings.Split(res.Text, "\n")
	if len(lines) < 3 {
		t.Fatalf("text = %q; want one line per paragraph", res.Text)
	}
	if lines[0] != "Paciente: Gómez, Ana" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "DNI: 31.998.442" {
		t.Errorf("line 1 = %q; tab inside run must become a space", lines[1])
	}
}

func TestExtract_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "historia.TXT")
	if err := os.WriteFile(path, []byte("Paciente: Gómez\r\nDNI: 31.998.442\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := New(nil).Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Format != constants.FileTypeTXT || res.Pages != 1 {
		t.Errorf("format/pages = %q/%d; want TXT/1", res.Format, res.Pages)
	}
	if res.Text != "Paciente: Gómez\nDNI: 31.998.442" {
		t.Errorf("text = %q; want normalized lines", res.Text)
	}
}

func TestExtract_UnknownExtensionIsNotAnError(t *testing.T) {
	res, err := New(nil).Extract("informe.odt")
	if err != nil {
		t.Fatalf("unsupported extension must not error; got %v", err)
	}
	if res.Format != constants.FileTypeUnknown || res.Text != "" {
		t.Errorf("res = %+v; want empty text with unknown format", res)
	}
}
