package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryingProvider retries a failed call a bounded number of times with
// exponential backoff. Context cancellation is never retried.
type RetryingProvider struct {
	inner           LLMProvider
	maxTries        uint
	initialInterval time.Duration
}

var _ LLMProvider = (*RetryingProvider)(nil)

// NewRetryingProvider wraps inner so each call is attempted at most
// 1+retries times.
func NewRetryingProvider(inner LLMProvider, retries uint, initialInterval time.Duration) *RetryingProvider {
	if initialInterval <= 0 {
		initialInterval = 500 * time.Millisecond
	}
	return &RetryingProvider{
		inner:           inner,
		maxTries:        retries + 1,
		initialInterval: initialInterval,
	}
}

func (p *RetryingProvider) Chat(ctx context.Context, history []Message, opts ...Option) (string, error) {
	return p.retry(ctx, func() (string, error) {
		return p.inner.Chat(ctx, history, opts...)
	})
}

func (p *RetryingProvider) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	return p.retry(ctx, func() (string, error) {
		return p.inner.Generate(ctx, prompt, opts...)
	})
}

func (p *RetryingProvider) retry(ctx context.Context, call func() (string, error)) (string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.initialInterval

	return backoff.Retry(ctx, func() (string, error) {
		out, err := call()
		if err != nil && ctx.Err() != nil {
			return "", backoff.Permanent(ctx.Err())
		}
		return out, err
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(p.maxTries),
	)
}
