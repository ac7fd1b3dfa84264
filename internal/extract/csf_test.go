package extract

import (
	"testing"

	"github.com/ulieet/NeuroSoft/constants"
)

func TestExtractCSF(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		performed bool
		bands     string
		conf      constants.Confidence
	}{
		{
			name:      "positive bands",
			text:      "Punción lumbar con bandas oligoclonales presentes",
			performed: true,
			bands:     BandsPositive,
			conf:      constants.ConfidenceHigh,
		},
		{
			name:      "negative bands",
			text:      "LCR: resultado negativo",
			performed: true,
			bands:     BandsNegative,
			conf:      constants.ConfidenceHigh,
		},
		{
			name:      "performed without result",
			text:      "se realizó punción lumbar, pendiente informe",
			performed: true,
			bands:     BandsNotReported,
			conf:      constants.ConfidenceHigh,
		},
		{
			name:      "not performed",
			text:      "RMN de cerebro sin otros estudios",
			performed: false,
			bands:     BandsNotReported,
			conf:      constants.ConfidenceLow,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, conf := extractCSF(c.text)
			if got.Performed != c.performed || got.Bands != c.bands || conf != c.conf {
				t.Errorf("extractCSF(%q) = %+v, %q; want performed=%v bands=%q conf=%q",
					c.text, got, conf, c.performed, c.bands, c.conf)
			}
		})
	}
}
