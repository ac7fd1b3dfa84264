package validate

import (
	"strings"
	"testing"
)

const validPayload = `{
  "paciente": {"nombre": "Gómez, Ana", "dni": "31998442", "obra_social": "IOMA"},
  "consulta": {"fecha": "2020-11-16", "medico": "Dra. Paz"},
  "enfermedad": {"diagnostico": "Esclerosis múltiple", "forma": "RR", "edss": 2.5},
  "complementarios": {
    "rmn": [{"fecha": "2019-05-14", "actividad": "Activa", "gd": "Positiva", "regiones": ["periventricular"]}],
    "puncion_lumbar": {"realizada": true, "bandas": "Sí"}
  },
  "tratamientos": [{"molecula": "Fingolimod", "estado": "Activo", "dosis": "0.5mg"}]
}`

func TestHistoryPayload_Valid(t *testing.T) {
	if err := HistoryPayload([]byte(validPayload)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestHistoryPayload_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"missing patient", `{"consulta": {"fecha": "2020-11-16"}}`},
		{"missing consultation date", `{"paciente": {"nombre": "Gómez"}, "consulta": {"medico": "Dra. Paz"}}`},
		{"malformed dni", `{"paciente": {"nombre": "Gómez", "dni": "31.998.442"}, "consulta": {"fecha": "2020-11-16"}}`},
		{"edss out of range", `{"paciente": {"nombre": "Gómez"}, "consulta": {"fecha": "2020-11-16"}, "enfermedad": {"edss": 12}}`},
		{"unknown form", `{"paciente": {"nombre": "Gómez"}, "consulta": {"fecha": "2020-11-16"}, "enfermedad": {"forma": "XX"}}`},
		{"treatment without molecule", `{"paciente": {"nombre": "Gómez"}, "consulta": {"fecha": "2020-11-16"}, "tratamientos": [{"estado": "Activo"}]}`},
		{"not json", `{"paciente": `},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := HistoryPayload([]byte(c.payload)); err == nil {
				t.Errorf("payload %q accepted; want rejection", c.name)
			}
		})
	}
}

func TestHistoryPayload_ExtraFieldsTolerated(t *testing.T) {
	// clinicians may annotate beyond the canonical shape
	payload := strings.Replace(validPayload, `"medico": "Dra. Paz"`, `"medico": "Dra. Paz", "sede": "La Plata"`, 1)
	if err := HistoryPayload([]byte(payload)); err != nil {
		t.Fatalf("payload with extra field rejected: %v", err)
	}
}
