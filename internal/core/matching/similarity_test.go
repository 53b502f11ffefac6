package matching

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "blue monday",
			b:    "blue monday",
			want: 100,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 100,
		},
		{
			name: "one empty",
			a:    "abc",
			b:    "",
			want: 0,
		},
		{
			name: "kitten sitting",
			a:    "kitten",
			b:    "sitting",
			want: 100.0 * 4 / 7, // distance 3 over max length 7
		},
		{
			name: "single substitution",
			a:    "hello world",
			b:    "hello worlds",
			want: 100.0 * 11 / 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 0.001 {
				t.Fatalf("Similarity(%q, %q): got %.4f, want %.4f", tt.a, tt.b, got, tt.want)
			}

			reversed := Similarity(tt.b, tt.a)
			if math.Abs(got-reversed) > 0.001 {
				t.Fatalf("not symmetric: %.4f vs %.4f", got, reversed)
			}
		})
	}
}
