// Package segment provides the linguistic segmenter used by style.Analyzer.
package segment

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/kamusis/quill-cli/internal/style"
)

// Prose segments English text with prose's punkt sentence splitter,
// its rule-based tokenizer and its averaged-perceptron tagger.
//
// The tagger model is loaded once by NewProse and only read afterwards.
type Prose struct {
	model *prose.Model
}

// NewProse loads the embedded tagger model.
func NewProse() *Prose {
	return &Prose{model: prose.ModelFromData("quill")}
}

// Segment splits text into sentences of tagged tokens. Sentences that
// contain no tokens are omitted.
func (p *Prose) Segment(text string) ([]style.Sentence, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.UsingModel(p.model),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot segment text: %w", err)
	}

	var out []style.Sentence
	for _, s := range doc.Sentences() {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		sd, err := prose.NewDocument(s.Text,
			prose.WithSegmentation(false),
			prose.WithExtraction(false),
			prose.UsingModel(p.model),
		)
		if err != nil {
			return nil, fmt.Errorf("cannot tag sentence: %w", err)
		}
		toks := sd.Tokens()
		if len(toks) == 0 {
			continue
		}
		sent := style.Sentence{Tokens: make([]style.Token, 0, len(toks))}
		for _, t := range toks {
			sent.Tokens = append(sent.Tokens, style.Token{Text: t.Text, Tag: FromPenn(t.Tag)})
		}
		out = append(out, sent)
	}
	return out, nil
}
