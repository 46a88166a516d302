//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import "testing"

var optionNames = []string{
	"alt-format", "exclude-empty", "interval", "pid", "sleepless", "help", "usage", "version",
}

func TestMatcher_FindBest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "missing letter", input: "intervl", expected: "interval"},
		{name: "transposition", input: "verison", expected: "version"},
		{name: "truncated name", input: "inter", expected: "interval"},
		{name: "truncated long name", input: "exclude", expected: "exclude-empty"},
		{name: "exact match excluded", input: "help", expected: ""},
		{name: "no good match", input: "zzzz", expected: ""},
		{name: "too short", input: "x", expected: ""},
		{name: "case insensitive", input: "SLEEPLES", expected: "sleepless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.FindBest(tt.input, optionNames); got != tt.expected {
				t.Errorf("FindBest(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMatcher_Distance(t *testing.T) {
	matcher := NewMatcher(5)

	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "pid", 3},
		{"pid", "pid", 0},
		{"pid", "pad", 1},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := matcher.distance(tt.a, tt.b); got != tt.expected {
			t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestMatcher_DistanceCutoff(t *testing.T) {
	matcher := NewMatcher(1)

	if got := matcher.distance("abcdef", "uvwxyz"); got != 2 {
		t.Errorf("expected cutoff at maxDistance+1, got %d", got)
	}
	if got := matcher.distance("a", "abcdef"); got != 2 {
		t.Errorf("expected length cutoff at maxDistance+1, got %d", got)
	}
}

func TestFindSuggestions(t *testing.T) {
	got := FindSuggestions("pidd", []string{"pad", "pid", "pod"}, 2, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %v", got)
	}
	if got[0] != "pid" {
		t.Errorf("expected best suggestion 'pid', got %q", got[0])
	}

	if got := FindSuggestions("zzzz", optionNames, 2, 3); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestFindBestFlag(t *testing.T) {
	if got := FindBestFlag("alt-fromat", optionNames, 2); got != "alt-format" {
		t.Errorf("FindBestFlag = %q, want 'alt-format'", got)
	}
}
