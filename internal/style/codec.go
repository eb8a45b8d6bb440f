package style

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fingerprint document formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// fingerprintDoc is the serialized form of a FeatureVector. Pointer and map
// fields let decoding tell a missing key from a zero value.
type fingerprintDoc struct {
	SentenceCount          *int               `yaml:"sentence_count" json:"sentence_count"`
	TokenCount             *int               `yaml:"token_count" json:"token_count"`
	WordCount              *int               `yaml:"word_count" json:"word_count"`
	SyllableCount          *int               `yaml:"syllable_count" json:"syllable_count"`
	AvgSentenceLength      *float64           `yaml:"avg_sentence_length" json:"avg_sentence_length"`
	SentenceLengthVariance *float64           `yaml:"sentence_length_variance" json:"sentence_length_variance"`
	TypeTokenRatio         *float64           `yaml:"type_token_ratio" json:"type_token_ratio"`
	POSDistribution        map[string]float64 `yaml:"pos_distribution" json:"pos_distribution"`
	PunctuationFrequency   map[string]float64 `yaml:"punctuation_frequency" json:"punctuation_frequency"`
	FleschReadingEase      *float64           `yaml:"flesch_reading_ease" json:"flesch_reading_ease"`
}

func (fv FeatureVector) doc() fingerprintDoc {
	pos := make(map[string]float64, NumPOSTags)
	for i, v := range fv.POS {
		pos[POSTag(i).String()] = v
	}
	punct := make(map[string]float64, NumPunctMarks)
	for i, v := range fv.Punctuation {
		punct[PunctMark(i).String()] = v
	}
	return fingerprintDoc{
		SentenceCount:          &fv.SentenceCount,
		TokenCount:             &fv.TokenCount,
		WordCount:              &fv.WordCount,
		SyllableCount:          &fv.SyllableCount,
		AvgSentenceLength:      &fv.AvgSentenceLength,
		SentenceLengthVariance: &fv.SentenceLengthVariance,
		TypeTokenRatio:         &fv.TypeTokenRatio,
		POSDistribution:        pos,
		PunctuationFrequency:   punct,
		FleschReadingEase:      &fv.FleschReadingEase,
	}
}

// MarshalYAML implements yaml.Marshaler.
func (fv FeatureVector) MarshalYAML() (any, error) {
	return fv.doc(), nil
}

// MarshalJSON implements json.Marshaler.
func (fv FeatureVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(fv.doc())
}

// LogValue implements slog.LogValuer with the headline metrics.
func (fv FeatureVector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("sentences", fv.SentenceCount),
		slog.Int("words", fv.WordCount),
		slog.Float64("avg_sentence_length", fv.AvgSentenceLength),
		slog.Float64("type_token_ratio", fv.TypeTokenRatio),
		slog.Float64("flesch_reading_ease", fv.FleschReadingEase),
	)
}

// EncodeFingerprint serializes fv as YAML or JSON.
func EncodeFingerprint(fv FeatureVector, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatYAML, "yml", "":
		return yaml.Marshal(fv)
	case FormatJSON:
		b, err := json.MarshalIndent(fv.doc(), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported fingerprint format: %s", format)
	}
}

// DecodeFingerprint parses a YAML or JSON fingerprint document.
//
// Every key is required; a missing key yields a *GuideConstructionError
// wrapping ErrMissingField. Unknown POS tags are bucketed into X and unknown
// punctuation names into "other".
func DecodeFingerprint(data []byte) (*FeatureVector, error) {
	var d fingerprintDoc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, &GuideConstructionError{Err: fmt.Errorf("invalid fingerprint document: %w", err)}
	}

	switch {
	case d.SentenceCount == nil:
		return nil, missingField("sentence_count")
	case d.TokenCount == nil:
		return nil, missingField("token_count")
	case d.WordCount == nil:
		return nil, missingField("word_count")
	case d.SyllableCount == nil:
		return nil, missingField("syllable_count")
	case d.AvgSentenceLength == nil:
		return nil, missingField("avg_sentence_length")
	case d.SentenceLengthVariance == nil:
		return nil, missingField("sentence_length_variance")
	case d.TypeTokenRatio == nil:
		return nil, missingField("type_token_ratio")
	case d.POSDistribution == nil:
		return nil, missingField("pos_distribution")
	case d.PunctuationFrequency == nil:
		return nil, missingField("punctuation_frequency")
	case d.FleschReadingEase == nil:
		return nil, missingField("flesch_reading_ease")
	}

	fv := &FeatureVector{
		SentenceCount:          *d.SentenceCount,
		TokenCount:             *d.TokenCount,
		WordCount:              *d.WordCount,
		SyllableCount:          *d.SyllableCount,
		AvgSentenceLength:      *d.AvgSentenceLength,
		SentenceLengthVariance: *d.SentenceLengthVariance,
		TypeTokenRatio:         *d.TypeTokenRatio,
		FleschReadingEase:      *d.FleschReadingEase,
	}
	for name, v := range d.POSDistribution {
		tag, _ := ParsePOSTag(strings.ToUpper(strings.TrimSpace(name)))
		fv.POS[tag] += v
	}
	for name, v := range d.PunctuationFrequency {
		mark, _ := ParsePunctMark(strings.ToLower(strings.TrimSpace(name)))
		fv.Punctuation[mark] += v
	}
	return fv, nil
}
