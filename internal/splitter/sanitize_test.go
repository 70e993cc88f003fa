package splitter

import "testing"

func TestSafeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"illegal characters dropped", "Ch/ap:ter*1", "Chapter1"},
		{"spaces become underscores", "1 Introduction", "1_Introduction"},
		{"hyphens and underscores kept", "a-b_c", "a-b_c"},
		{"trimmed before replacement", "  Intro  ", "Intro"},
		{"number prefix", "2.1_Methods", "21_Methods"},
		{"unicode letters kept", "Küche", "Küche"},
		{"empty input", "", ""},
		{"only illegal characters", "/*:?<>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeName(tt.in); got != tt.want {
				t.Errorf("SafeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
