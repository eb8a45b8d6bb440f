package style

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence-length thresholds, in words.
const (
	ShortSentenceMax = 15.0
	LongSentenceMin  = 25.0
)

// Rhythm thresholds on the coefficient of variation (stddev / mean) of
// sentence length.
const (
	SteadyRhythmMax = 0.35
	VariedRhythmMin = 0.7
)

// Vocabulary thresholds on the type-token ratio.
const (
	LowVarietyMax  = 0.4
	HighVarietyMin = 0.6
	RichVarietyMin = 0.8
)

const (
	DefaultTopPOS         = 3
	DefaultTopPunctuation = 3
)

var punctPlurals = [NumPunctMarks]string{
	PunctPeriod:      "periods",
	PunctComma:       "commas",
	PunctSemicolon:   "semicolons",
	PunctColon:       "colons",
	PunctExclamation: "exclamation marks",
	PunctQuestion:    "question marks",
	PunctDash:        "dashes",
	PunctEllipsis:    "ellipses",
	PunctQuote:       "quotation marks",
	PunctParen:       "parentheses",
	PunctOther:       "other punctuation marks",
}

// GuideBuilder renders FeatureVectors as style guides.
type GuideBuilder struct {
	topPOS   int
	topPunct int
}

// GuideOption configures a GuideBuilder.
type GuideOption func(*GuideBuilder)

// WithTopPOS sets how many POS categories the grammar section lists.
func WithTopPOS(n int) GuideOption {
	return func(b *GuideBuilder) {
		if n > 0 {
			b.topPOS = n
		}
	}
}

// WithTopPunctuation sets how many marks the punctuation section lists.
func WithTopPunctuation(n int) GuideOption {
	return func(b *GuideBuilder) {
		if n > 0 {
			b.topPunct = n
		}
	}
}

// NewGuideBuilder returns a builder with the given options applied.
func NewGuideBuilder(opts ...GuideOption) *GuideBuilder {
	b := &GuideBuilder{topPOS: DefaultTopPOS, topPunct: DefaultTopPunctuation}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build renders fv as a Markdown style guide for author.
//
// Sections always appear in the same order: header, sentence structure,
// vocabulary, grammar, punctuation, readability, meaning. Zero-denominator
// sentinels and non-finite numbers render as neutral phrases.
func (b *GuideBuilder) Build(fv *FeatureVector, author string) (string, error) {
	if err := validateForGuide(fv, author); err != nil {
		return "", err
	}
	author = strings.TrimSpace(author)

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Style Guide: %s\n\n", author)
	fmt.Fprintf(&sb, "Rewrite the source text in the voice of %s. Every constraint below is a target measured from a writing sample by %s; treat the numbers as hard targets, not suggestions.\n", author, author)

	b.writeSentences(&sb, fv)
	b.writeVocabulary(&sb, fv)
	b.writeGrammar(&sb, fv)
	b.writePunctuation(&sb, fv)
	b.writeReadability(&sb, fv)

	sb.WriteString("\n### 6. Meaning\n")
	sb.WriteString("- Preserve the content and meaning of the source text exactly. Keep every fact, name and event.\n")
	sb.WriteString("- Only style, sentence construction, and word choice may change. Do not add or drop ideas.\n")
	return sb.String(), nil
}

func validateForGuide(fv *FeatureVector, author string) error {
	if fv == nil {
		return missingField("features")
	}
	if strings.TrimSpace(author) == "" {
		return missingField("author_name")
	}
	if fv.SentenceCount < 0 {
		return invalidField("sentence_count", "negative value %d", fv.SentenceCount)
	}
	if fv.TokenCount < 0 {
		return invalidField("token_count", "negative value %d", fv.TokenCount)
	}
	if fv.WordCount < 0 {
		return invalidField("word_count", "negative value %d", fv.WordCount)
	}
	if fv.SyllableCount < 0 {
		return invalidField("syllable_count", "negative value %d", fv.SyllableCount)
	}
	return nil
}

func (b *GuideBuilder) writeSentences(sb *strings.Builder, fv *FeatureVector) {
	sb.WriteString("\n### 1. Sentence structure\n")
	avg, okAvg := formatFixed(fv.AvgSentenceLength, 1)
	if !fv.Measurable() || !okAvg {
		sb.WriteString("- No sentence-length target could be measured from the sample; keep sentence length natural.\n")
		return
	}
	if variance, ok := formatFixed(fv.SentenceLengthVariance, 1); ok {
		fmt.Fprintf(sb, "- Average sentence length must be approximately %s words (target variance %s).\n", avg, variance)
	} else {
		fmt.Fprintf(sb, "- Average sentence length must be approximately %s words.\n", avg)
	}

	switch {
	case fv.AvgSentenceLength < ShortSentenceMax:
		fmt.Fprintf(sb, "- Sentences must be short and direct: favor simple declarative sentences under %g words and avoid stacking subordinate clauses.\n", ShortSentenceMax)
	case fv.AvgSentenceLength > LongSentenceMin:
		sb.WriteString("- Sentences must be long and flowing: join related ideas with subordinate clauses, coordination and parenthetical asides.\n")
	default:
		fmt.Fprintf(sb, "- Sentences must be of moderate length: mix simple and compound sentences, keeping most between %g and %g words.\n", ShortSentenceMax, LongSentenceMin)
	}

	if !finite(fv.SentenceLengthVariance) || fv.SentenceLengthVariance < 0 || fv.AvgSentenceLength <= 0 {
		return
	}
	stddev := math.Sqrt(fv.SentenceLengthVariance)
	sd, ok := formatFixed(stddev, 1)
	if !ok {
		return
	}
	switch cv := stddev / fv.AvgSentenceLength; {
	case cv <= SteadyRhythmMax:
		fmt.Fprintf(sb, "- Keep sentence length steady; most sentences should stay within about %s words of the average.\n", sd)
	case cv >= VariedRhythmMin:
		fmt.Fprintf(sb, "- Vary sentence length sharply; alternate very short sentences with much longer ones (standard deviation about %s words).\n", sd)
	default:
		fmt.Fprintf(sb, "- Vary sentence length moderately (standard deviation about %s words).\n", sd)
	}
}

func (b *GuideBuilder) writeVocabulary(sb *strings.Builder, fv *FeatureVector) {
	sb.WriteString("\n### 2. Vocabulary\n")
	ttr, ok := formatFixed(fv.TypeTokenRatio, 2)
	if fv.WordCount == 0 || !ok {
		sb.WriteString("- No vocabulary target could be measured; use plain, natural word choice.\n")
		return
	}
	var directive string
	switch {
	case fv.TypeTokenRatio < LowVarietyMax:
		directive = "Repeat key words freely; a small, plain working vocabulary is part of the voice."
	case fv.TypeTokenRatio < HighVarietyMin:
		directive = "Balance repetition and variety; reuse key terms but avoid monotony."
	case fv.TypeTokenRatio < RichVarietyMin:
		directive = "Prefer varied word choice; avoid repeating the same word in close succession."
	default:
		directive = "Use a rich, highly varied vocabulary; almost never repeat a content word."
	}
	fmt.Fprintf(sb, "- Target a type-token ratio of about %s. %s\n", ttr, directive)
}

func (b *GuideBuilder) writeGrammar(sb *strings.Builder, fv *FeatureVector) {
	sb.WriteString("\n### 3. Grammar\n")
	var tags []POSTag
	for i, v := range fv.POS {
		t := POSTag(i)
		if t == POSPunct || t == POSX || !finite(v) || v <= 0 {
			continue
		}
		tags = append(tags, t)
	}
	if len(tags) == 0 {
		sb.WriteString("- No grammatical distribution could be measured; keep the grammar of the source text.\n")
		return
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return fv.POS[tags[i]] > fv.POS[tags[j]]
	})
	if len(tags) > b.topPOS {
		tags = tags[:b.topPOS]
	}

	for _, t := range tags {
		pct, ok := formatPercent(fv.POS[t])
		if !ok {
			continue
		}
		fmt.Fprintf(sb, "- %s must make up about %s of all tokens.\n", capitalize(t.Label()), pct)
	}
	if len(tags) >= 2 {
		first, second := tags[0], tags[1]
		if ratio, ok := formatFixed(fv.POS[first]/fv.POS[second], 1); ok {
			fmt.Fprintf(sb, "- Favor %s over %s at a ratio of about %s to 1.\n", first.Label(), second.Label(), ratio)
		}
	}
}

func (b *GuideBuilder) writePunctuation(sb *strings.Builder, fv *FeatureVector) {
	sb.WriteString("\n### 4. Punctuation\n")
	if fv.SentenceCount == 0 {
		sb.WriteString("- No punctuation habit could be measured; punctuate conventionally.\n")
		return
	}
	var marks []PunctMark
	for i, v := range fv.Punctuation {
		if !finite(v) || v <= 0 {
			continue
		}
		marks = append(marks, PunctMark(i))
	}
	if len(marks) == 0 {
		sb.WriteString("- The sample uses almost no punctuation; keep punctuation to the minimum the meaning requires.\n")
		return
	}
	sort.SliceStable(marks, func(i, j int) bool {
		return fv.Punctuation[marks[i]] > fv.Punctuation[marks[j]]
	})
	if len(marks) > b.topPunct {
		marks = marks[:b.topPunct]
	}
	for _, m := range marks {
		freq, ok := formatFixed(fv.Punctuation[m], 2)
		if !ok {
			continue
		}
		if m == PunctOther {
			fmt.Fprintf(sb, "- Use %s about %s times per sentence.\n", punctPlurals[m], freq)
			continue
		}
		fmt.Fprintf(sb, "- Use %s (%s) about %s times per sentence.\n", punctPlurals[m], m.Symbol(), freq)
	}
	sb.WriteString("- Marks not listed above should be rare or absent.\n")
}

func (b *GuideBuilder) writeReadability(sb *strings.Builder, fv *FeatureVector) {
	sb.WriteString("\n### 5. Readability\n")
	score, ok := formatFixed(fv.FleschReadingEase, 1)
	if !fv.Measurable() || !ok {
		sb.WriteString("- No readability target could be measured; aim for clear, plain prose.\n")
		return
	}
	band := BandFor(fv.FleschReadingEase)
	fmt.Fprintf(sb, "- Aim for a Flesch Reading Ease score of about %s (%s, roughly %s reading level).\n", score, band.Name, band.Level)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
