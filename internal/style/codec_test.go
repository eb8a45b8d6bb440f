package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_RoundTrip(t *testing.T) {
	fv := sampleVector()
	for _, format := range []string{FormatYAML, FormatJSON} {
		data, err := EncodeFingerprint(fv, format)
		require.NoError(t, err, format)

		got, err := DecodeFingerprint(data)
		require.NoError(t, err, format)
		assert.Equal(t, fv, *got, format)
	}
}

func TestFingerprint_EncodesClosedKeys(t *testing.T) {
	data, err := EncodeFingerprint(sampleVector(), FormatYAML)
	require.NoError(t, err)
	s := string(data)
	for _, key := range []string{"sentence_count:", "pos_distribution:", "NOUN:", "PUNCT:", "punctuation_frequency:", "comma:", "ellipsis:", "flesch_reading_ease:"} {
		assert.Contains(t, s, key)
	}
}

func TestFingerprint_UnsupportedFormat(t *testing.T) {
	_, err := EncodeFingerprint(sampleVector(), "toml")
	assert.Error(t, err)
}

func TestDecodeFingerprint_MissingField(t *testing.T) {
	data, err := EncodeFingerprint(sampleVector(), FormatYAML)
	require.NoError(t, err)

	var kept []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "type_token_ratio:") {
			continue
		}
		kept = append(kept, line)
	}

	_, err = DecodeFingerprint([]byte(strings.Join(kept, "\n")))
	var gce *GuideConstructionError
	require.True(t, errors.As(err, &gce))
	assert.Equal(t, "type_token_ratio", gce.Field)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDecodeFingerprint_Malformed(t *testing.T) {
	_, err := DecodeFingerprint([]byte("sentence_count: [unterminated"))
	var gce *GuideConstructionError
	assert.True(t, errors.As(err, &gce))
}

func TestDecodeFingerprint_BucketsUnknownKeys(t *testing.T) {
	doc := `{
  "sentence_count": 2, "token_count": 10, "word_count": 8, "syllable_count": 11,
  "avg_sentence_length": 4, "sentence_length_variance": 1, "type_token_ratio": 0.75,
  "pos_distribution": {"NOUN": 0.5, "verb": 0.2, "GERUND": 0.1, "X": 0.2},
  "punctuation_frequency": {"comma": 1.5, "interrobang": 0.5},
  "flesch_reading_ease": 80.1
}`
	fv, err := DecodeFingerprint([]byte(doc))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, fv.POS[POSNoun], 1e-12)
	assert.InDelta(t, 0.2, fv.POS[POSVerb], 1e-12)
	assert.InDelta(t, 0.3, fv.POS[POSX], 1e-12)
	assert.InDelta(t, 1.5, fv.Punctuation[PunctComma], 1e-12)
	assert.InDelta(t, 0.5, fv.Punctuation[PunctOther], 1e-12)
}
