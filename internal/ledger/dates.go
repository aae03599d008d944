package ledger

import "time"

const dayFormat = "2006-01-02"

// ValidDate reports whether s is a parseable YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dayFormat, s)
	return err == nil
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayFormat, s)
	return t, err == nil
}

// daysBetween returns the whole number of days from a to b (ISO dates).
// Negative when b precedes a.
func daysBetween(a, b string) int {
	ta, okA := parseDay(a)
	tb, okB := parseDay(b)
	if !okA || !okB {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// datesBetween lists every calendar date from start through end inclusive.
// Returns nil when either bound is invalid or end precedes start.
func datesBetween(start, end string) []string {
	ts, okS := parseDay(start)
	te, okE := parseDay(end)
	if !okS || !okE || te.Before(ts) {
		return nil
	}

	var out []string
	for d := ts; !d.After(te); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(dayFormat))
	}
	return out
}
