package extract

import "testing"

func TestCountRelapses(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"single mention", "Presentó un brote sensitivo en 2019.", 1},
		{"plural counts once per token", "Dos brotes en el último año", 1},
		{"negated mention excluded", "Paciente sin nuevos brotes desde 2020", 0},
		{"niega excluded", "Niega brotes y progresión", 0},
		{"libre de excluded", "libre de brotes bajo tratamiento", 0},
		{"mixed", "Sin brotes en 2021. Presentó brote motor, luego otra recaída.", 2},
		{"accent insensitive", "Nueva recaída medular", 1},
		{"no mentions", "Evolución estable, EDSS sin cambios", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CountRelapses(c.text); got != c.want {
				t.Errorf("CountRelapses(%q) = %d; want %d", c.text, got, c.want)
			}
		})
	}
}
