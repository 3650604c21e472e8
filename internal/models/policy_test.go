package models

import (
	"math"
	"testing"
)

func TestParseParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"  7", 7},
		{"12abc", 12},
		{"+4", 4},
		{"0", 1},
		{"-5", 1},
		{"", 1},
		{"abc", 1},
		{"-", 1},
		{"2.9", 2},
		{"99999999999999999999", math.MaxInt32},
		{"-99999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseParam(tt.raw); got != tt.want {
				t.Errorf("ParseParam(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPolicyConstructorsClamp(t *testing.T) {
	if p := BySize(0); p.Value != 1 || p.Method != MethodSize {
		t.Errorf("BySize(0) = %v, want size(1)", p)
	}
	if p := ByCount(-3); p.Value != 1 || p.Method != MethodCount {
		t.Errorf("ByCount(-3) = %v, want count(1)", p)
	}
	if p := (SizingPolicy{Method: MethodCount}).Clamped(); p.Value != 1 {
		t.Errorf("Clamped value = %d, want 1", p.Value)
	}
}

func TestParseMethod(t *testing.T) {
	for _, s := range []string{"size", "SIZE", " count "} {
		if _, err := ParseMethod(s); err != nil {
			t.Errorf("ParseMethod(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseMethod("teams"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestEstimateAndSuggestedMax(t *testing.T) {
	tests := []struct {
		name         string
		policy       SizingPolicy
		rosterSize   int
		wantEstimate int
		wantMax      int
	}{
		{"size with remainder", BySize(2), 5, 3, 5},
		{"size exact", BySize(3), 9, 3, 9},
		{"count with remainder", ByCount(3), 7, 3, 4},
		{"count larger than roster", ByCount(10), 4, 1, 2},
		{"empty roster", BySize(2), 0, 0, 0},
		{"huge size", BySize(math.MaxInt), 5, 1, 5},
		{"huge count", ByCount(math.MaxInt), 5, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Estimate(tt.rosterSize); got != tt.wantEstimate {
				t.Errorf("Estimate(%d) = %d, want %d", tt.rosterSize, got, tt.wantEstimate)
			}
			if got := tt.policy.SuggestedMax(tt.rosterSize); got != tt.wantMax {
				t.Errorf("SuggestedMax(%d) = %d, want %d", tt.rosterSize, got, tt.wantMax)
			}
		})
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{6, 3, 2},
		{7, 3, 3},
		{5, math.MaxInt, 1},
		{math.MaxInt, math.MaxInt, 1},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt, 2, math.MaxInt/2 + 1},
	}

	for _, tt := range tests {
		if got := CeilDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("CeilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	if name, ok := NormalizeName("  Bob \t"); !ok || name != "Bob" {
		t.Errorf("NormalizeName = (%q, %v), want (Bob, true)", name, ok)
	}
	if _, ok := NormalizeName("   "); ok {
		t.Error("expected blank name to be rejected")
	}
}

func TestLabel(t *testing.T) {
	if got := Label(0); got != "Team 1" {
		t.Errorf("Label(0) = %q, want Team 1", got)
	}
}
