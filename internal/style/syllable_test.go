package style

import "testing"

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"it":        1,
		"the":       1,
		"come":      1,
		"very":      2,
		"express":   2,
		"Barcelona": 4,
		"forty":     2,
		"minutes":   3,
		"table":     2,
		"free":      1,
		"be":        1,
		"rhythm":    1,
		"beautiful": 3,
		"n't":       1,
		"1984":      1,
		"":          1,
		"HELLO":     2,
	}
	for word, want := range cases {
		if got := CountSyllables(word); got != want {
			t.Errorf("CountSyllables(%q) = %d, want %d", word, got, want)
		}
	}
}
