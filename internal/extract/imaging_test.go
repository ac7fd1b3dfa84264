package extract

import (
	"strings"
	"testing"
	"time"
)

func testEngine() *Engine {
	e := NewEngine(nil)
	e.Dates.Now = func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestExtractImaging_SingleEvent(t *testing.T) {
	e := testEngine()
	text := "RMN de cerebro 14/05/2021: lesiones periventriculares y yuxtacorticales, activa, Gd(+)"
	events := e.extractImaging(text)
	if len(events) != 1 {
		t.Fatalf("events = %d; want 1", len(events))
	}
	ev := events[0]
	if ev.Date == nil || *ev.Date != "2021-05-14" {
		t.Errorf("date = %v; want 2021-05-14", ev.Date)
	}
	if ev.Activity == nil || *ev.Activity != ActivityActive {
		t.Errorf("activity = %v; want Activa", ev.Activity)
	}
	if ev.Gd == nil || *ev.Gd != GdPositive {
		t.Errorf("gd = %v; want Positiva", ev.Gd)
	}
	if len(ev.Regions) != 2 {
		t.Errorf("regions = %v; want periventricular and yuxtacortical", ev.Regions)
	}
}

func TestExtractImaging_InactiveTakesStemPriority(t *testing.T) {
	// "inactiva" contains "activa" as a substring and must not be read as
	// active.
	e := testEngine()
	events := e.extractImaging("RMN 10/02/2020 inactiva, sin realce")
	if len(events) != 1 {
		t.Fatalf("events = %d; want 1", len(events))
	}
	if events[0].Activity == nil || *events[0].Activity != ActivityInactive {
		t.Errorf("activity = %v; want Inactiva", events[0].Activity)
	}
	if events[0].Gd == nil || *events[0].Gd != GdNegative {
		t.Errorf("gd = %v; want Negativa", events[0].Gd)
	}
}

func TestExtractImaging_NegatedContrastIsNegative(t *testing.T) {
	// "sin captación de contraste" contains a positive phrasing as a
	// substring and must still read as non-enhancing.
	e := testEngine()
	events := e.extractImaging("RMN 10/02/2020 con lesiones periventriculares, sin captación de contraste")
	if len(events) != 1 {
		t.Fatalf("events = %d; want 1", len(events))
	}
	if events[0].Gd == nil || *events[0].Gd != GdNegative {
		t.Errorf("gd = %v; want Negativa", events[0].Gd)
	}
}

func TestExtractImaging_ContrastUptakeIsPositive(t *testing.T) {
	e := testEngine()
	events := e.extractImaging("RMN 05/05/2019: lesión medular que capta contraste")
	if len(events) != 1 {
		t.Fatalf("events = %d; want 1", len(events))
	}
	if events[0].Gd == nil || *events[0].Gd != GdPositive {
		t.Errorf("gd = %v; want Positiva", events[0].Gd)
	}
}

func TestExtractImaging_DateFallsBackToPreviousLine(t *testing.T) {
	e := testEngine()
	text := "Estudio del 14/05/2021:\nRMN con lesiones medulares"
	events := e.extractImaging(text)
	if len(events) != 1 {
		t.Fatalf("events = %d; want 1", len(events))
	}
	if events[0].Date == nil || *events[0].Date != "2021-05-14" {
		t.Errorf("date = %v; want previous-line date", events[0].Date)
	}
}

func TestExtractImaging_SupraImpliesSupratentorial(t *testing.T) {
	e := testEngine()
	events := e.extractImaging("RMN 01/01/2020 con lesiones supra e infratentoriales")
	if len(events) != 1 {
		t.Fatalf("events = %d; want 1", len(events))
	}
	joined := strings.Join(events[0].Regions, ",")
	if !strings.Contains(joined, "supratentorial") {
		t.Errorf("regions = %v; want inferred supratentorial", events[0].Regions)
	}
}

func TestExtractImaging_MergeByDate(t *testing.T) {
	// Two mentions of the same study date: Active dominates Inactive,
	// Positive dominates absent, regions are unioned.
	e := testEngine()
	text := strings.Join([]string{
		"RMN 14/05/2021 inactiva, lesiones periventriculares",
		"",
		"RMN 14/05/2021 activa, Gd(+), lesión medular",
	}, "\n")
	events := e.extractImaging(text)
	if len(events) != 1 {
		t.Fatalf("events = %d; want merged single event", len(events))
	}
	ev := events[0]
	if ev.Date == nil || *ev.Date != "2021-05-14" {
		t.Errorf("date = %v; want 2021-05-14", ev.Date)
	}
	if ev.Activity == nil || *ev.Activity != ActivityActive {
		t.Errorf("activity = %v; want Activa dominating", ev.Activity)
	}
	if ev.Gd == nil || *ev.Gd != GdPositive {
		t.Errorf("gd = %v; want Positiva", ev.Gd)
	}
	want := map[string]bool{"periventricular": true, "medular": true}
	for _, r := range ev.Regions {
		delete(want, r)
	}
	if len(want) != 0 {
		t.Errorf("regions = %v; missing %v", ev.Regions, want)
	}
}

func TestExtractImaging_UndatedEventsStayUnmerged(t *testing.T) {
	e := testEngine()
	text := "RMN con lesión periventricular\n\nRMN con lesión medular"
	events := e.extractImaging(text)
	if len(events) != 2 {
		t.Fatalf("events = %d; want 2 unmerged undated events", len(events))
	}
}
