package errors

import "testing"

func TestBands(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{"E0001", BandSyntax},
		{"E0099", BandSyntax},
		{"E0101", BandRuntime},
		{"E0199", BandRuntime},
		{"E0201", BandLogical},
		{"E0301", BandSemantic},
		{"E0100", ""},
		{"E0400", ""},
		{"X0001", ""},
		{"E1", ""},
	}

	for _, tt := range tests {
		if got := tt.code.Band(); got != tt.want {
			t.Errorf("Band(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestAllImplementedCodesAreSyntaxBand(t *testing.T) {
	codes := AllCodes()
	if len(codes) != 10 {
		t.Fatalf("got %d codes, want 10", len(codes))
	}
	for _, c := range codes {
		if c.Band() != BandSyntax {
			t.Errorf("%s is in band %q, want %q", c, c.Band(), BandSyntax)
		}
		if !c.IsKnown() {
			t.Errorf("%s claims to be unknown", c)
		}
	}
	// Ascending order.
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("codes out of order: %s before %s", codes[i-1], codes[i])
		}
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	for _, c := range AllCodes() {
		info, ok := Lookup(c)
		if !ok {
			t.Errorf("Lookup(%s) missing", c)
			continue
		}
		if info.Code != c {
			t.Errorf("entry for %s names %s", c, info.Code)
		}
		if info.Title == "" || info.Explanation == "" || info.LearningObjective == "" || info.RecoveryHint == "" {
			t.Errorf("entry for %s has empty fields", c)
		}
		if info.CurriculumLesson <= 0 {
			t.Errorf("entry for %s has no lesson", c)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Code
	}{
		{"E0007", "E0007"},
		{"e0007", "E0007"},
		{"e7", "E0007"},
		{"7", "E0007"},
		{"0007", "E0007"},
		{" E0002 ", "E0002"},
		{"E0102", "E0102"}, // reserved band still normalizes
	}

	for _, tt := range tests {
		got, err := Normalize(tt.raw)
		if err != nil {
			t.Errorf("Normalize(%q) failed: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "EE7", "banana", "E-1", "E99999"} {
		if _, err := Normalize(raw); err == nil {
			t.Errorf("Normalize(%q) succeeded, want error", raw)
		}
	}
}
