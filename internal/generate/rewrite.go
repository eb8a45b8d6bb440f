package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySource is returned when there is nothing to rewrite.
var ErrEmptySource = errors.New("source text is empty")

// Rewrite asks p to rewrite source in author's voice following guide.
func Rewrite(ctx context.Context, p Provider, source, guide, author string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", ErrEmptySource
	}
	out, err := p.Chat(ctx, Request{
		System: SystemPrompt,
		User:   UserPrompt(source, guide, author),
	})
	if err != nil {
		return "", fmt.Errorf("generation via %s failed: %w", p.ModelID(), err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("generation via %s returned no text", p.ModelID())
	}
	return out, nil
}
