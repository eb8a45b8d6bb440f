package style

import (
	"math"
	"testing"
)

func TestFleschReadingEase(t *testing.T) {
	got := FleschReadingEase(14, 1, 22)
	want := 206.835 - 1.015*14 - 84.6*(22.0/14.0)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("FleschReadingEase = %v, want %v", got, want)
	}

	if got := FleschReadingEase(0, 3, 0); got != 0 {
		t.Fatalf("zero words: got %v, want 0", got)
	}
	if got := FleschReadingEase(10, 0, 12); got != 0 {
		t.Fatalf("zero sentences: got %v, want 0", got)
	}
}

func TestBandFor(t *testing.T) {
	cases := map[float64]string{
		120:   "very easy",
		90:    "very easy",
		85:    "easy",
		70:    "fairly easy",
		65.5:  "standard",
		59.68: "fairly difficult",
		30:    "difficult",
		12:    "very difficult",
		-40:   "very difficult",
	}
	for score, want := range cases {
		if got := BandFor(score).Name; got != want {
			t.Errorf("BandFor(%v) = %q, want %q", score, got, want)
		}
	}
}
