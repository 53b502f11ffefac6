package metadata

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips diacritics",
			input: "Beyoncé",
			want:  "beyonce",
		},
		{
			name:  "lowercases and collapses whitespace",
			input: "  Track   Title ",
			want:  "track title",
		},
		{
			name:  "unifies curly apostrophes",
			input: "Don’t Stop",
			want:  "don't stop",
		},
		{
			name:  "unifies dash variants",
			input: "Song — Version",
			want:  "song - version",
		},
		{
			name:  "standalone x becomes ampersand",
			input: "Daft Punk x Pharrell",
			want:  "daft punk & pharrell",
		},
		{
			name:  "standalone and becomes ampersand",
			input: "Rock and Roll",
			want:  "rock & roll",
		},
		{
			name:  "deletes stray punctuation without spacing",
			input: "AC/DC",
			want:  "acdc",
		},
		{
			name:  "drops brackets but keeps their words",
			input: "Song (Radio Edit)",
			want:  "song radio edit",
		},
		{
			name:  "standardizes feat notation",
			input: "Artist feat. Other",
			want:  "artist feat other",
		},
		{
			name:  "standardizes ft notation",
			input: "Artist ft Other",
			want:  "artist feat other",
		},
		{
			name:  "standardizes with notation",
			input: "Artist with Other",
			want:  "artist feat other",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Fatalf("Normalize(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Beyoncé",
		"Don’t Stop — Extended",
		"Artist feat. Other with Third",
		"Daft Punk x Pharrell and Nile",
		"  Weird   Spacing\tEverywhere  ",
		"Song (Radio Edit) [VIP]",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
