package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reDateText = regexp.MustCompile(`(?i)\b(\d{1,2})\s+de\s+([a-záéíóúñ]+)\s+de\s+(\d{4})`)
	reDateNum  = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})\b`)
	reMonthYr  = regexp.MustCompile(`(?i)\b([a-záéíóúñ]+)\s+(\d{4})\b`)
)

// DateResolver parses heterogeneous Spanish date expressions into ISO form.
// Now is injectable so the two-digit-year pivot is testable; nil falls back
// to time.Now.
type DateResolver struct {
	Now func() time.Time
}

func (r *DateResolver) now() time.Time {
	if r != nil && r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Resolve returns the first date found in text as "YYYY-MM-DD". Attempts, in
// order: "16 de noviembre de 2020", then "14/05/21" (or dashes), then
// "marzo 2017" with the day defaulting to 1. Unparseable or out-of-range
// values yield ok=false, never a panic.
func (r *DateResolver) Resolve(text string) (string, bool) {
	if m := reDateText.FindStringSubmatch(text); m != nil {
		if month, ok := monthNumber(m[2]); ok {
			return r.build(m[1], month, m[3])
		}
	}
	if m := reDateNum.FindStringSubmatch(text); m != nil {
		month, err := strconv.Atoi(m[2])
		if err != nil {
			return "", false
		}
		return r.build(m[1], month, m[3])
	}
	if m := reMonthYr.FindStringSubmatch(text); m != nil {
		if month, ok := monthNumber(m[1]); ok {
			return r.build("1", month, m[2])
		}
	}
	return "", false
}

func (r *DateResolver) build(dayTok string, month int, yearTok string) (string, bool) {
	day, err := strconv.Atoi(dayTok)
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(yearTok)
	if err != nil {
		return "", false
	}
	if year < 100 {
		year = r.pivotYear(year)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 || year > 2100 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// pivotYear expands a two-digit year against the current year: values beyond
// the current year's last two digits belong to the 1900s, the rest to the
// 2000s, so "21" is 2021 while "75" is 1975.
func (r *DateResolver) pivotYear(yy int) int {
	if yy > r.now().Year()%100 {
		return 1900 + yy
	}
	return 2000 + yy
}

// monthNumber looks a Spanish month name up after stripping diacritics.
func monthNumber(name string) (int, bool) {
	n, ok := spanishMonths[stripAccents(strings.ToLower(strings.TrimSpace(name)))]
	return n, ok
}

var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u",
)

// stripAccents folds the Spanish vowel diacritics; ñ is kept as-is because it
// is semantically distinct.
func stripAccents(s string) string {
	return accentFold.Replace(s)
}

// foldLine lowercases and strips accents for vocabulary lookups.
func foldLine(s string) string {
	return stripAccents(strings.ToLower(s))
}

// foldKey additionally removes separators, for separator-insensitive alias
// matching ("Dimetil-fumarato" vs "dimetilfumarato").
func foldKey(s string) string {
	s = foldLine(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}
