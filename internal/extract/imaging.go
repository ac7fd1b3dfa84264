package extract

import (
	"regexp"
	"strings"
)

var (
	reInactive = regexp.MustCompile(`\binactiv\w*`)
	reActive   = regexp.MustCompile(`\bactiv\w*`)
)

// extractImaging scans logical lines for imaging-modality mentions and builds
// one event per study block. A mention line opens an event seeded with the
// date on that line (or the previous line when absent); following lines are
// absorbed into the event until an unrelated clinical heading shows up.
func (e *Engine) extractImaging(text string) []ImagingEvent {
	lines := strings.Split(text, "\n")
	var events []ImagingEvent

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !isImagingLine(line) {
			continue
		}

		block := []string{line}
		date, ok := e.Dates.Resolve(line)
		if !ok && i > 0 {
			date, ok = e.Dates.Resolve(lines[i-1])
		}

		j := i + 1
		for ; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				break
			}
			if name, _, isHeader := e.Segmenter.matchHeader(next); isHeader && name != "rmn" {
				break
			}
			if isImagingLine(next) {
				break
			}
			block = append(block, next)
		}
		i = j - 1

		ev := buildImagingEvent(block)
		if ok {
			d := date
			ev.Date = &d
		}
		if ev.Date != nil || ev.Activity != nil || ev.Gd != nil || len(ev.Regions) > 0 {
			events = append(events, ev)
		}
	}

	return mergeImagingByDate(events)
}

func isImagingLine(line string) bool {
	folded := foldLine(line)
	padded := " " + folded + " "
	for _, t := range imagingTriggers {
		if containsWord(padded, t) {
			return true
		}
	}
	return false
}

// buildImagingEvent resolves activity, contrast and regions over the lines of
// one study block.
func buildImagingEvent(block []string) ImagingEvent {
	folded := foldLine(strings.Join(block, "\n"))
	var ev ImagingEvent

	// Inactive detection runs first: "inactiva" contains "activa" as a
	// substring and must not be misread as active.
	if reInactive.MatchString(folded) {
		ev.Activity = strPtr(ActivityInactive)
	} else if reActive.MatchString(folded) || strings.Contains(folded, "actividad actual") {
		ev.Activity = strPtr(ActivityActive)
	}

	// Negative phrasings run first: "sin captacion de contraste" embeds a
	// positive token as a substring and must not be misread as enhancing.
	for _, n := range gdNegative {
		if strings.Contains(folded, n) {
			ev.Gd = strPtr(GdNegative)
			break
		}
	}
	if ev.Gd == nil {
		for _, p := range gdPositive {
			if strings.Contains(folded, p) {
				ev.Gd = strPtr(GdPositive)
				break
			}
		}
	}

	for _, region := range imagingRegions {
		if strings.Contains(folded, region.alias) {
			ev.Regions = appendUnique(ev.Regions, region.tag)
		}
	}
	// "supra" without the explicit tag still implies supratentorial lesions.
	if strings.Contains(folded, "supra") {
		ev.Regions = appendUnique(ev.Regions, "supratentorial")
	}

	return ev
}

// mergeImagingByDate collapses mentions of the same study date into one
// event. Active dominates Inactive (an active focus observed at any point
// means the date is not disease-inactive), Positive dominates Negative, and
// regions are unioned. Events without a date are preserved unmerged.
func mergeImagingByDate(events []ImagingEvent) []ImagingEvent {
	if len(events) == 0 {
		return nil
	}

	byDate := map[string]*ImagingEvent{}
	var order []string
	var undated []ImagingEvent

	for _, ev := range events {
		if ev.Date == nil {
			undated = append(undated, ev)
			continue
		}
		dst, ok := byDate[*ev.Date]
		if !ok {
			cp := ev
			cp.Regions = appendUnique(nil, ev.Regions...)
			byDate[*ev.Date] = &cp
			order = append(order, *ev.Date)
			continue
		}
		if ev.Activity != nil {
			if dst.Activity == nil || (*dst.Activity != ActivityActive && *ev.Activity == ActivityActive) {
				dst.Activity = ev.Activity
			}
		}
		if ev.Gd != nil {
			if dst.Gd == nil || (*dst.Gd != GdPositive && *ev.Gd == GdPositive) {
				dst.Gd = ev.Gd
			}
		}
		dst.Regions = appendUnique(dst.Regions, ev.Regions...)
	}

	out := make([]ImagingEvent, 0, len(order)+len(undated))
	for _, d := range order {
		out = append(out, *byDate[d])
	}
	out = append(out, undated...)
	return out
}

func appendUnique(dst []string, vals ...string) []string {
	for _, v := range vals {
		seen := false
		for _, d := range dst {
			if d == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
