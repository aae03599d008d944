package ledger

import "testing"

func TestClosedDays_AddSortsAndDedupes(t *testing.T) {
	c := NewClosedDays(nil)

	for _, d := range []string{"2025-11-28", "2025-11-27", "2025-12-01"} {
		if !c.Add(d) {
			t.Fatalf("Add(%q) = false, want true", d)
		}
	}

	if c.Add("2025-11-27") {
		t.Fatal("re-adding an existing day reported a change")
	}

	want := []string{"2025-11-27", "2025-11-28", "2025-12-01"}
	got := c.All()
	if len(got) != len(want) {
		t.Fatalf("got %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("days[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClosedDays_InvalidInputIgnored(t *testing.T) {
	c := NewClosedDays([]string{"2025-11-27"})

	for _, bad := range []string{"", "not-a-date", "2025-13-40", "2025/11/27"} {
		if c.Add(bad) {
			t.Fatalf("Add(%q) accepted invalid input", bad)
		}
	}
	if c.Len() != 1 {
		t.Fatalf("registry length = %d after invalid adds, want 1", c.Len())
	}
}

func TestClosedDays_RemoveMissingIsNoOp(t *testing.T) {
	c := NewClosedDays([]string{"2025-11-27"})

	if c.Remove("2025-11-28") {
		t.Fatal("removing an absent day reported a change")
	}
	if !c.Remove("2025-11-27") {
		t.Fatal("removing a present day reported no change")
	}
	if c.Contains("2025-11-27") {
		t.Fatal("removed day still present")
	}
}
