// Package style turns a reference text into a quantitative style fingerprint
// and renders that fingerprint as a constraint-based style guide.
//
// Nothing in this package performs I/O. The linguistic segmenter is injected
// through the Segmenter interface so the analyzer never depends on load order.
package style

// POSTag is a part-of-speech category from a closed, universal tag set.
type POSTag int

const (
	POSNoun POSTag = iota
	POSPropn
	POSPron
	POSVerb
	POSAux
	POSAdj
	POSAdv
	POSAdp
	POSDet
	POSCconj
	POSPart
	POSNum
	POSIntj
	POSSym
	POSPunct
	POSX

	// NumPOSTags is the size of the closed tag set.
	NumPOSTags
)

var posNames = [NumPOSTags]string{
	POSNoun:  "NOUN",
	POSPropn: "PROPN",
	POSPron:  "PRON",
	POSVerb:  "VERB",
	POSAux:   "AUX",
	POSAdj:   "ADJ",
	POSAdv:   "ADV",
	POSAdp:   "ADP",
	POSDet:   "DET",
	POSCconj: "CCONJ",
	POSPart:  "PART",
	POSNum:   "NUM",
	POSIntj:  "INTJ",
	POSSym:   "SYM",
	POSPunct: "PUNCT",
	POSX:     "X",
}

// posLabels are the plural nouns used when a tag is named in a guide.
var posLabels = [NumPOSTags]string{
	POSNoun:  "nouns",
	POSPropn: "proper nouns",
	POSPron:  "pronouns",
	POSVerb:  "verbs",
	POSAux:   "auxiliary verbs",
	POSAdj:   "adjectives",
	POSAdv:   "adverbs",
	POSAdp:   "prepositions",
	POSDet:   "determiners",
	POSCconj: "coordinating conjunctions",
	POSPart:  "particles",
	POSNum:   "numerals",
	POSIntj:  "interjections",
	POSSym:   "symbols",
	POSPunct: "punctuation tokens",
	POSX:     "other tokens",
}

// String returns the universal tag name, e.g. "NOUN".
func (t POSTag) String() string {
	if t < 0 || t >= NumPOSTags {
		return posNames[POSX]
	}
	return posNames[t]
}

// Label returns a human readable plural, e.g. "nouns".
func (t POSTag) Label() string {
	if t < 0 || t >= NumPOSTags {
		return posLabels[POSX]
	}
	return posLabels[t]
}

// ParsePOSTag maps a universal tag name to a POSTag.
// Unknown names are bucketed into POSX and reported with ok=false.
func ParsePOSTag(name string) (tag POSTag, ok bool) {
	for i, n := range posNames {
		if n == name {
			return POSTag(i), true
		}
	}
	return POSX, false
}

// PunctMark is a punctuation class from a closed set.
type PunctMark int

const (
	PunctPeriod PunctMark = iota
	PunctComma
	PunctSemicolon
	PunctColon
	PunctExclamation
	PunctQuestion
	PunctDash
	PunctEllipsis
	PunctQuote
	PunctParen
	PunctOther

	// NumPunctMarks is the size of the closed punctuation set.
	NumPunctMarks
)

var punctNames = [NumPunctMarks]string{
	PunctPeriod:      "period",
	PunctComma:       "comma",
	PunctSemicolon:   "semicolon",
	PunctColon:       "colon",
	PunctExclamation: "exclamation",
	PunctQuestion:    "question",
	PunctDash:        "dash",
	PunctEllipsis:    "ellipsis",
	PunctQuote:       "quote",
	PunctParen:       "parenthesis",
	PunctOther:       "other",
}

var punctSymbols = [NumPunctMarks]string{
	PunctPeriod:      ".",
	PunctComma:       ",",
	PunctSemicolon:   ";",
	PunctColon:       ":",
	PunctExclamation: "!",
	PunctQuestion:    "?",
	PunctDash:        "—",
	PunctEllipsis:    "…",
	PunctQuote:       "\"",
	PunctParen:       "( )",
	PunctOther:       "other punctuation",
}

// String returns the mark's key name, e.g. "comma".
func (m PunctMark) String() string {
	if m < 0 || m >= NumPunctMarks {
		return punctNames[PunctOther]
	}
	return punctNames[m]
}

// Symbol returns the canonical glyph for the mark.
func (m PunctMark) Symbol() string {
	if m < 0 || m >= NumPunctMarks {
		return punctSymbols[PunctOther]
	}
	return punctSymbols[m]
}

// ParsePunctMark maps a key name to a PunctMark.
// Unknown names are bucketed into PunctOther and reported with ok=false.
func ParsePunctMark(name string) (mark PunctMark, ok bool) {
	for i, n := range punctNames {
		if n == name {
			return PunctMark(i), true
		}
	}
	return PunctOther, false
}

// POSDistribution holds the share of every tag over all tokens.
// Values sum to 1, or are all zero when the text had no tokens.
type POSDistribution [NumPOSTags]float64

// Empty reports whether no tag has a non-zero share.
func (d POSDistribution) Empty() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Sum returns the total of all shares.
func (d POSDistribution) Sum() float64 {
	var s float64
	for _, v := range d {
		s += v
	}
	return s
}

// PunctuationFrequency holds occurrences of each mark per sentence.
type PunctuationFrequency [NumPunctMarks]float64

// Empty reports whether no mark was observed.
func (f PunctuationFrequency) Empty() bool {
	for _, v := range f {
		if v != 0 {
			return false
		}
	}
	return true
}

// FeatureVector is the style fingerprint of a reference text.
//
// It is a plain value: comparable with ==, safe to copy, and it holds no
// reference to the text it was computed from.
type FeatureVector struct {
	SentenceCount int
	TokenCount    int
	WordCount     int
	SyllableCount int

	AvgSentenceLength      float64
	SentenceLengthVariance float64
	TypeTokenRatio         float64

	POS         POSDistribution
	Punctuation PunctuationFrequency

	// FleschReadingEase is 0 when SentenceCount or WordCount is 0.
	FleschReadingEase float64
}

// Measurable reports whether the vector was computed from at least one
// sentence containing at least one word. Ratios of an unmeasurable vector
// are zero-denominator sentinels.
func (fv FeatureVector) Measurable() bool {
	return fv.SentenceCount > 0 && fv.WordCount > 0
}

// Token is one segmenter token with its closed POS tag.
type Token struct {
	Text string
	Tag  POSTag
}

// Sentence is an ordered run of tokens.
type Sentence struct {
	Tokens []Token
}

// Segmenter splits text into sentences of tagged tokens.
//
// Implementations must be deterministic for the same input.
type Segmenter interface {
	Segment(text string) ([]Sentence, error)
}
