package ledger

import "sort"

// ClosedDays is the registry of dates the dining hall does not operate.
// The canonical view is ascending sorted order with no duplicates. Shared
// between student projections and staff management.
type ClosedDays struct {
	days []string
}

// NewClosedDays builds a registry from the given dates, discarding
// invalid entries and duplicates.
func NewClosedDays(days []string) *ClosedDays {
	c := &ClosedDays{}
	for _, d := range days {
		c.Add(d)
	}
	return c
}

// Add inserts a date into the registry. Adding a date already present,
// or an empty/unparseable date, is a silent no-op. Reports whether the
// registry changed.
func (c *ClosedDays) Add(date string) bool {
	if !ValidDate(date) {
		return false
	}
	i := sort.SearchStrings(c.days, date)
	if i < len(c.days) && c.days[i] == date {
		return false
	}
	c.days = append(c.days, "")
	copy(c.days[i+1:], c.days[i:])
	c.days[i] = date
	return true
}

// Remove deletes a date if present; no-op otherwise. Reports whether the
// registry changed.
func (c *ClosedDays) Remove(date string) bool {
	i := sort.SearchStrings(c.days, date)
	if i >= len(c.days) || c.days[i] != date {
		return false
	}
	c.days = append(c.days[:i], c.days[i+1:]...)
	return true
}

// Contains reports whether the date is closed.
func (c *ClosedDays) Contains(date string) bool {
	i := sort.SearchStrings(c.days, date)
	return i < len(c.days) && c.days[i] == date
}

// All returns the registry contents in ascending order. The returned
// slice is a copy.
func (c *ClosedDays) All() []string {
	out := make([]string, len(c.days))
	copy(out, c.days)
	return out
}

// Len returns the number of closed days.
func (c *ClosedDays) Len() int {
	return len(c.days)
}
