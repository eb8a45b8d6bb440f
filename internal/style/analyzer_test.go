package style_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/quill-cli/internal/style"
	"github.com/kamusis/quill-cli/internal/style/segment"
)

// lineSegmenter treats every line as a sentence and every whitespace-separated
// field as a token. Punctuation-only fields are PUNCT, words listed in verbs
// are VERB, everything else is NOUN.
type lineSegmenter struct {
	verbs map[string]bool
}

func (s lineSegmenter) Segment(text string) ([]style.Sentence, error) {
	var out []style.Sentence
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var sent style.Sentence
		for _, f := range fields {
			tag := style.POSNoun
			switch {
			case strings.Trim(f, ".,;:!?") == "":
				tag = style.POSPunct
			case s.verbs[strings.ToLower(f)]:
				tag = style.POSVerb
			}
			sent.Tokens = append(sent.Tokens, style.Token{Text: f, Tag: tag})
		}
		out = append(out, sent)
	}
	return out, nil
}

type failingSegmenter struct{ err error }

func (s failingSegmenter) Segment(string) ([]style.Sentence, error) { return nil, s.err }

type panickingSegmenter struct{}

func (panickingSegmenter) Segment(string) ([]style.Sentence, error) { panic("model exploded") }

var proseAnalyzer = style.NewAnalyzer(segment.NewProse())

func assertBounds(t *testing.T, fv style.FeatureVector) {
	t.Helper()
	assert.GreaterOrEqual(t, fv.SentenceCount, 0)
	assert.GreaterOrEqual(t, fv.AvgSentenceLength, 0.0)
	assert.GreaterOrEqual(t, fv.SentenceLengthVariance, 0.0)
	assert.GreaterOrEqual(t, fv.TypeTokenRatio, 0.0)
	assert.LessOrEqual(t, fv.TypeTokenRatio, 1.0)
	for i, v := range fv.POS {
		assert.GreaterOrEqual(t, v, 0.0, "pos %s", style.POSTag(i))
		assert.LessOrEqual(t, v, 1.0, "pos %s", style.POSTag(i))
	}
	if fv.TokenCount > 0 {
		assert.InDelta(t, 1.0, fv.POS.Sum(), 1e-9)
	} else {
		assert.True(t, fv.POS.Empty())
	}
	for i, v := range fv.Punctuation {
		assert.GreaterOrEqual(t, v, 0.0, "punct %s", style.PunctMark(i))
	}
	assert.False(t, math.IsNaN(fv.FleschReadingEase))
	assert.False(t, math.IsInf(fv.FleschReadingEase, 0))
}

func TestAnalyze_EmptyAndWhitespace(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \r\n"} {
		fv, err := proseAnalyzer.Analyze(text)
		require.NoError(t, err, "text %q", text)
		assert.Equal(t, style.FeatureVector{}, fv)
		assert.Equal(t, 0, fv.SentenceCount)
		assert.Equal(t, 0.0, fv.AvgSentenceLength)
		assert.Equal(t, 0.0, fv.TypeTokenRatio)
		assert.Equal(t, 0.0, fv.FleschReadingEase)
		assert.True(t, fv.POS.Empty())
		assert.False(t, fv.Measurable())
	}
}

func TestAnalyze_InvalidEncoding(t *testing.T) {
	_, err := proseAnalyzer.Analyze("caf\xe9 au lait")
	require.Error(t, err)

	var ae *style.AnalysisError
	require.True(t, errors.As(err, &ae))
	assert.ErrorIs(t, err, style.ErrInvalidEncoding)
}

func TestAnalyze_SegmenterFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := style.NewAnalyzer(failingSegmenter{err: boom}).Analyze("Some text.")
	var ae *style.AnalysisError
	require.True(t, errors.As(err, &ae))
	assert.ErrorIs(t, err, boom)

	_, err = style.NewAnalyzer(panickingSegmenter{}).Analyze("Some text.")
	require.True(t, errors.As(err, &ae))
	assert.Contains(t, err.Error(), "model exploded")

	_, err = style.NewAnalyzer(nil).Analyze("Some text.")
	require.True(t, errors.As(err, &ae))
}

func TestAnalyze_SentenceStatistics(t *testing.T) {
	a := style.NewAnalyzer(lineSegmenter{verbs: map[string]bool{"runs": true}})

	fv, err := a.Analyze("dog runs .\nthe big dog runs very fast .")
	require.NoError(t, err)

	assert.Equal(t, 2, fv.SentenceCount)
	assert.Equal(t, 10, fv.TokenCount)
	assert.Equal(t, 8, fv.WordCount)
	assert.InDelta(t, 4.0, fv.AvgSentenceLength, 1e-12)
	// lengths 2 and 6: population variance ((2-4)^2 + (6-4)^2) / 2
	assert.InDelta(t, 4.0, fv.SentenceLengthVariance, 1e-12)
	// distinct: dog runs the big very fast
	assert.InDelta(t, 6.0/8.0, fv.TypeTokenRatio, 1e-12)

	assert.InDelta(t, 0.2, fv.POS[style.POSPunct], 1e-12)
	assert.InDelta(t, 0.2, fv.POS[style.POSVerb], 1e-12)
	assert.InDelta(t, 0.6, fv.POS[style.POSNoun], 1e-12)

	// two periods over two sentences
	assert.InDelta(t, 1.0, fv.Punctuation[style.PunctPeriod], 1e-12)
}

func TestAnalyze_TypeTokenRatioIgnoresCase(t *testing.T) {
	a := style.NewAnalyzer(lineSegmenter{})
	fv, err := a.Analyze("Rain rain RAIN")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, fv.TypeTokenRatio, 1e-12)
}

func TestAnalyze_PunctuationOnly(t *testing.T) {
	a := style.NewAnalyzer(lineSegmenter{})
	fv, err := a.Analyze("! ? .")
	require.NoError(t, err)
	assert.Equal(t, 1, fv.SentenceCount)
	assert.Equal(t, 0, fv.WordCount)
	assert.Equal(t, 0.0, fv.TypeTokenRatio)
	assert.Equal(t, 0.0, fv.FleschReadingEase)
	assert.InDelta(t, 1.0, fv.POS[style.POSPunct], 1e-12)
	assertBounds(t, fv)
}

func TestAnalyze_BoundsOnAssortedInput(t *testing.T) {
	texts := []string{
		"Word",
		"!!!",
		"Mr. Smith went to Washington. He arrived at 5 p.m. and left quickly.",
		"\"Are you coming?\" she asked. \"No,\" he said; \"not today.\"",
		"Привет, мир. Как дела?",
		"It's a well-known fact... isn't it? Yes -- it is (mostly).",
	}
	for _, text := range texts {
		fv, err := proseAnalyzer.Analyze(text)
		require.NoError(t, err, "text %q", text)
		assertBounds(t, fv)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := "Call me Ishmael. Some years ago, never mind how long precisely, having little or no money in my purse, I thought I would sail about a little and see the watery part of the world."
	first, err := proseAnalyzer.Analyze(text)
	require.NoError(t, err)
	second, err := proseAnalyzer.Analyze(text)
	require.NoError(t, err)
	assert.True(t, first == second, "repeated analysis differs")
}

func TestAnalyze_SingleDeclarativeSentence(t *testing.T) {
	fv, err := proseAnalyzer.Analyze("It was very hot and the express from Barcelona would come in forty minutes.")
	require.NoError(t, err)

	assert.Equal(t, 1, fv.SentenceCount)
	assert.Equal(t, 14, fv.WordCount)
	assert.Equal(t, 15, fv.TokenCount)
	assert.Equal(t, 0.0, fv.SentenceLengthVariance)
	assert.InDelta(t, 14.0, fv.AvgSentenceLength, 1e-12)
	assert.Equal(t, 22, fv.SyllableCount)
	assert.InDelta(t, 59.682, fv.FleschReadingEase, 0.001)
	assert.InDelta(t, 1.0, fv.Punctuation[style.PunctPeriod], 1e-12)

	guide, err := style.NewGuideBuilder().Build(&fv, "Ernest Hemingway")
	require.NoError(t, err)
	assert.Contains(t, guide, "short and direct")
	assert.Contains(t, guide, "14.0 words")
}

func TestAnalyze_FleschFavorsShortSimpleSentences(t *testing.T) {
	simple := "The cat sat on the mat. The dog ran. We ate bread and jam. It was hot. She sang a song. He read a book. The sun set. I felt fine and went to bed."
	dense := "Notwithstanding considerable institutional opposition, the administration's comprehensive reorganization fundamentally transformed organizational responsibilities, consequently necessitating extraordinary interdepartmental cooperation, meticulous documentation, and unprecedented accountability throughout numerous governmental subdivisions."

	easy, err := proseAnalyzer.Analyze(simple)
	require.NoError(t, err)
	hard, err := proseAnalyzer.Analyze(dense)
	require.NoError(t, err)

	assert.Greater(t, easy.FleschReadingEase, hard.FleschReadingEase)
	assert.Greater(t, easy.SentenceCount, hard.SentenceCount)
}
