package generate

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"
)

// ResilientOptions configures retry and timeout behavior.
type ResilientOptions struct {
	MaxAttempts  int
	Timeout      time.Duration
	InitialDelay time.Duration
}

type resilientProvider struct {
	inner Provider
	opts  ResilientOptions
}

// NewResilient wraps inner so every Chat call is retried with exponential
// backoff and bounded by an overall timeout. Zero options take defaults.
func NewResilient(inner Provider, opts ResilientOptions) Provider {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = time.Second
	}
	return &resilientProvider{inner: inner, opts: opts}
}

func (p *resilientProvider) ModelID() string {
	return p.inner.ModelID()
}

func (p *resilientProvider) Chat(ctx context.Context, req Request) (string, error) {
	r := retry.New[string](retry.Config{
		MaxAttempts:   p.opts.MaxAttempts,
		InitialDelay:  p.opts.InitialDelay,
		BackoffPolicy: retry.BackoffExponential,
	})
	t := timeout.New[string](timeout.Config{
		DefaultTimeout: p.opts.Timeout,
	})

	return t.Execute(ctx, p.opts.Timeout, func(ctx context.Context) (string, error) {
		return r.Do(ctx, func(ctx context.Context) (string, error) {
			return p.inner.Chat(ctx, req)
		})
	})
}

// Ping delegates to the wrapped provider when it supports pinging.
func (p *resilientProvider) Ping(ctx context.Context) error {
	if pg, ok := p.inner.(Pinger); ok {
		return pg.Ping(ctx)
	}
	return nil
}
