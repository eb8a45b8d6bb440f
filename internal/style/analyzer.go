package style

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Analyzer computes FeatureVectors. It holds no state besides the injected
// segmenter, so one Analyzer may be reused for any number of texts.
type Analyzer struct {
	seg Segmenter
}

// NewAnalyzer returns an Analyzer that segments text with seg.
func NewAnalyzer(seg Segmenter) *Analyzer {
	return &Analyzer{seg: seg}
}

// Analyze returns the style fingerprint of text.
//
// Empty and whitespace-only text yields the zero FeatureVector. An
// *AnalysisError is returned only when text is not valid UTF-8 or the
// segmenter fails; no default vector is produced in that case.
func (a *Analyzer) Analyze(text string) (FeatureVector, error) {
	if !utf8.ValidString(text) {
		return FeatureVector{}, &AnalysisError{Err: ErrInvalidEncoding}
	}
	text = norm.NFC.String(text)
	if strings.TrimSpace(text) == "" {
		return FeatureVector{}, nil
	}
	if a.seg == nil {
		return FeatureVector{}, &AnalysisError{Err: fmt.Errorf("no segmenter configured")}
	}

	sents, err := a.segment(text)
	if err != nil {
		return FeatureVector{}, &AnalysisError{Err: err}
	}

	var (
		fv        FeatureVector
		lengths   []int
		posCounts [NumPOSTags]int
		distinct  = make(map[string]struct{})
	)
	for _, s := range sents {
		if len(s.Tokens) == 0 {
			continue
		}
		words := 0
		for _, tok := range s.Tokens {
			tag := tok.Tag
			if tag < 0 || tag >= NumPOSTags {
				tag = POSX
			}
			if isPunctToken(tok.Text) {
				if tag != POSSym {
					tag = POSPunct
				}
			} else {
				words++
				fv.SyllableCount += CountSyllables(tok.Text)
				distinct[strings.ToLower(tok.Text)] = struct{}{}
			}
			posCounts[tag]++
			fv.TokenCount++
		}
		fv.WordCount += words
		lengths = append(lengths, words)
	}
	fv.SentenceCount = len(lengths)

	fv.AvgSentenceLength, fv.SentenceLengthVariance = meanVariance(lengths)

	if fv.WordCount > 0 {
		fv.TypeTokenRatio = float64(len(distinct)) / float64(fv.WordCount)
	}

	if fv.TokenCount > 0 {
		total := float64(fv.TokenCount)
		for i, c := range posCounts {
			fv.POS[i] = float64(c) / total
		}
	}

	if fv.SentenceCount > 0 {
		n := float64(fv.SentenceCount)
		for i, c := range CountPunctuation(text) {
			fv.Punctuation[i] = float64(c) / n
		}
	}

	fv.FleschReadingEase = FleschReadingEase(fv.WordCount, fv.SentenceCount, fv.SyllableCount)
	return fv, nil
}

// segment runs the segmenter and converts a panic inside it into an error.
func (a *Analyzer) segment(text string) (sents []Sentence, err error) {
	defer func() {
		if r := recover(); r != nil {
			sents, err = nil, fmt.Errorf("segmenter panicked: %v", r)
		}
	}()
	return a.seg.Segment(text)
}

// meanVariance returns the arithmetic mean and population variance of xs.
func meanVariance(xs []int) (mean, variance float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	n := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	mean = sum / n
	var sq float64
	for _, x := range xs {
		d := float64(x) - mean
		sq += d * d
	}
	return mean, sq / n
}

// isPunctToken reports whether tok consists only of punctuation or symbols.
func isPunctToken(tok string) bool {
	if tok == "" {
		return true
	}
	for _, r := range tok {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
