package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/mealtab/internal/tui/components"
)

func TestTabKeysResolveInOrder(t *testing.T) {
	wantKeys := []rune{'b', 's', 'h', 'f', 'x'}
	for i, key := range wantKeys {
		if got := components.TabIdxByKey(key); got != i {
			t.Fatalf("TabIdxByKey(%q) = %d, want %d", key, got, i)
		}
	}
	if got := components.TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestTruncateAndPadHeight(t *testing.T) {
	three := "a\nb\nc"

	if got := truncateHeight(three, 2); got != "a\nb" {
		t.Fatalf("truncateHeight = %q, want %q", got, "a\nb")
	}
	if got := truncateHeight(three, 5); got != three {
		t.Fatalf("truncateHeight should not change short input, got %q", got)
	}

	padded := padHeight(three, 5)
	if lines := strings.Split(padded, "\n"); len(lines) != 5 {
		t.Fatalf("padHeight produced %d lines, want 5", len(lines))
	}
	if got := padHeight(three, 2); got != three {
		t.Fatalf("padHeight should not shrink input, got %q", got)
	}
}

func TestDayLabelMarksMonthStarts(t *testing.T) {
	tests := []struct {
		date  string
		first bool
		want  string
	}{
		{"2025-09-05", true, "Sep 5"},
		{"2025-09-05", false, "5"},
		{"2025-10-01", false, "Oct 1"},
		{"garbage", false, ""},
	}
	for _, tt := range tests {
		if got := dayLabel(tt.date, tt.first); got != tt.want {
			t.Fatalf("dayLabel(%q, %v) = %q, want %q", tt.date, tt.first, got, tt.want)
		}
	}
}
