package style

// Flesch Reading Ease coefficients.
const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6
)

// FleschReadingEase applies the standard formula
//
//	206.835 − 1.015 × (words/sentences) − 84.6 × (syllables/words)
//
// and returns 0 when sentences or words is zero.
func FleschReadingEase(words, sentences, syllables int) float64 {
	if sentences <= 0 || words <= 0 {
		return 0
	}
	w := float64(words)
	return fleschBase -
		fleschSentenceWeight*(w/float64(sentences)) -
		fleschSyllableWeight*(float64(syllables)/w)
}

// ReadingBand is a named range of the Flesch Reading Ease table.
type ReadingBand struct {
	Min   float64
	Name  string
	Level string
}

// readingBands is the standard Flesch table, highest band first.
var readingBands = []ReadingBand{
	{Min: 90, Name: "very easy", Level: "5th grade"},
	{Min: 80, Name: "easy", Level: "6th grade"},
	{Min: 70, Name: "fairly easy", Level: "7th grade"},
	{Min: 60, Name: "standard", Level: "8th to 9th grade"},
	{Min: 50, Name: "fairly difficult", Level: "10th to 12th grade"},
	{Min: 30, Name: "difficult", Level: "college"},
}

var veryDifficult = ReadingBand{Name: "very difficult", Level: "college graduate"}

// BandFor returns the Flesch band a score falls in. Scores above 100 are
// "very easy" and scores below 0 are "very difficult".
func BandFor(score float64) ReadingBand {
	for _, b := range readingBands {
		if score >= b.Min {
			return b
		}
	}
	return veryDifficult
}
