package ui

import (
	"reflect"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1       string
		s2       string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"E0007", "E007", 1},
		{"E0001", "E0002", 1},
		{"gutter", "guter", 1},
	}

	for _, tt := range tests {
		t.Run(tt.s1+"_"+tt.s2, func(t *testing.T) {
			result := LevenshteinDistance(tt.s1, tt.s2)
			if result != tt.expected {
				t.Errorf("LevenshteinDistance(%q, %q) = %d; want %d", tt.s1, tt.s2, result, tt.expected)
			}
		})
	}
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"E0001", "E0002", "E0003", "E0007", "E0010"}

	tests := []struct {
		name     string
		target   string
		opts     *FuzzyMatchOptions
		expected []string
	}{
		{
			name:     "close match first",
			target:   "E007",
			opts:     &FuzzyMatchOptions{MaxDistance: 1},
			expected: []string{"E0007"},
		},
		{
			name:     "case insensitive by default",
			target:   "e0001",
			opts:     &FuzzyMatchOptions{MaxDistance: 1, MaxSuggestions: 1},
			expected: []string{"E0001"},
		},
		{
			name:     "nothing within distance",
			target:   "zzzzzzzzzz",
			opts:     nil,
			expected: []string{},
		},
		{
			name:     "suggestion cap",
			target:   "E0001",
			opts:     &FuzzyMatchOptions{MaxDistance: 1, MaxSuggestions: 2},
			expected: []string{"E0001", "E0002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindSimilar(tt.target, candidates, tt.opts)
			if len(result) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("FindSimilar(%q) = %v; want %v", tt.target, result, tt.expected)
			}
		})
	}
}

func TestFindSimilarOrdersByDistance(t *testing.T) {
	candidates := []string{"abcdef", "abcd", "abc"}

	result := FindSimilar("abc", candidates, &FuzzyMatchOptions{MaxDistance: 3})
	expected := []string{"abc", "abcd", "abcdef"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("FindSimilar = %v; want closest first %v", result, expected)
	}
}

func TestFindBestMatch(t *testing.T) {
	candidates := []string{"E0001", "E0007"}

	if got := FindBestMatch("E007", candidates, nil); got != "E0007" {
		t.Errorf("FindBestMatch = %q; want E0007", got)
	}
	if got := FindBestMatch("qqqqqqqqq", candidates, nil); got != "" {
		t.Errorf("FindBestMatch with no candidates in range = %q; want empty", got)
	}
}
