package extract

import (
	"testing"
	"time"
)

func fixedNow(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, 6, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestResolve_SpelledOut(t *testing.T) {
	r := &DateResolver{Now: fixedNow(2026)}
	got, ok := r.Resolve("La Plata, 16 de Noviembre de 2020")
	if !ok || got != "2020-11-16" {
		t.Fatalf("Resolve = %q, %v; want 2020-11-16", got, ok)
	}
}

func TestResolve_Numeric(t *testing.T) {
	r := &DateResolver{Now: fixedNow(2026)}
	cases := []struct {
		in   string
		want string
	}{
		{"14/05/21", "2021-05-14"},
		{"14-05-2021", "2021-05-14"},
		{"3/7/1998", "1998-07-03"},
	}
	for _, c := range cases {
		got, ok := r.Resolve(c.in)
		if !ok || got != c.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", c.in, got, ok, c.want)
		}
	}
}

func TestResolve_MonthYear(t *testing.T) {
	r := &DateResolver{Now: fixedNow(2026)}
	got, ok := r.Resolve("desde marzo 2017")
	if !ok || got != "2017-03-01" {
		t.Fatalf("Resolve = %q, %v; want 2017-03-01", got, ok)
	}
}

func TestResolve_UnknownMonth(t *testing.T) {
	r := &DateResolver{Now: fixedNow(2026)}
	if got, ok := r.Resolve("mes raro 2020"); ok {
		t.Fatalf("Resolve = %q; want no match", got)
	}
}

func TestResolve_TwoDigitYearPivot(t *testing.T) {
	// A two-digit year beyond the current year's last two digits belongs to
	// the 1900s; at or below, to the 2000s.
	r := &DateResolver{Now: fixedNow(2026)}
	got, ok := r.Resolve("01/01/30")
	if !ok || got != "1930-01-01" {
		t.Fatalf("with now=2026: Resolve = %q, %v; want 1930-01-01", got, ok)
	}

	r = &DateResolver{Now: fixedNow(2031)}
	got, ok = r.Resolve("01/01/30")
	if !ok || got != "2030-01-01" {
		t.Fatalf("with now=2031: Resolve = %q, %v; want 2030-01-01", got, ok)
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	r := &DateResolver{Now: fixedNow(2026)}
	for _, in := range []string{"32/01/2020", "10/13/2020", "01/01/1888"} {
		if got, ok := r.Resolve(in); ok {
			t.Errorf("Resolve(%q) = %q; want rejection", in, got)
		}
	}
}

func TestResolve_AccentInsensitiveMonth(t *testing.T) {
	r := &DateResolver{Now: fixedNow(2026)}
	got, ok := r.Resolve("cuadro desde Marzo 2019")
	if !ok || got != "2019-03-01" {
		t.Fatalf("Resolve = %q, %v; want 2019-03-01", got, ok)
	}
}
