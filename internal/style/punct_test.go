package style

import "testing"

func TestCountPunctuation(t *testing.T) {
	cases := []struct {
		text string
		want map[PunctMark]int
	}{
		{"Hello, world.", map[PunctMark]int{PunctComma: 1, PunctPeriod: 1}},
		{"Wait... what?!", map[PunctMark]int{PunctEllipsis: 1, PunctQuestion: 1, PunctExclamation: 1}},
		{"Then—silence… and more.", map[PunctMark]int{PunctDash: 1, PunctEllipsis: 1, PunctPeriod: 1}},
		{"well-known -- really", map[PunctMark]int{PunctDash: 1}},
		{"don't stop; 'go' now: (please)", map[PunctMark]int{PunctSemicolon: 1, PunctQuote: 2, PunctColon: 1, PunctParen: 2}},
		{"“Yes,” she said.", map[PunctMark]int{PunctQuote: 2, PunctComma: 1, PunctPeriod: 1}},
		{"a & b @ c", map[PunctMark]int{PunctOther: 2}},
		{"$5 + 3 = 8", map[PunctMark]int{}},
		{"", map[PunctMark]int{}},
	}
	for _, c := range cases {
		got := CountPunctuation(c.text)
		for m := PunctMark(0); m < NumPunctMarks; m++ {
			if got[m] != c.want[m] {
				t.Errorf("CountPunctuation(%q)[%s] = %d, want %d", c.text, m, got[m], c.want[m])
			}
		}
	}
}
