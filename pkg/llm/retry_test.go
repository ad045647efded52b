package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakyProvider) Chat(ctx context.Context, history []Message, _ ...Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content)
}

func (f *flakyProvider) Generate(_ context.Context, prompt string, _ ...Option) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.err
	}
	return "answer to " + prompt, nil
}

func TestRetryingProviderRecoversAfterOneFailure(t *testing.T) {
	inner := &flakyProvider{failures: 1, err: errors.New("503")}
	p := NewRetryingProvider(inner, 1, time.Millisecond)

	out, err := p.Generate(context.Background(), "glaze")
	require.NoError(t, err)
	assert.Equal(t, "answer to glaze", out)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryingProviderIsBounded(t *testing.T) {
	boom := errors.New("503")
	inner := &flakyProvider{failures: 10, err: boom}
	p := NewRetryingProvider(inner, 1, time.Millisecond)

	_, err := p.Chat(context.Background(), []Message{{Role: "user", Content: "kiln"}})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, inner.calls)
}

func TestRetryingProviderStopsOnCancel(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: errors.New("timeout")}
	p := NewRetryingProvider(inner, 3, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Generate(ctx, "forge")
	assert.Error(t, err)
	assert.LessOrEqual(t, inner.calls, 1)
}

func TestApplyOptions(t *testing.T) {
	o := ApplyOptions(Options{Temperature: 0.7}, WithModel("llama3"), WithMaxTokens(256))
	assert.Equal(t, 0.7, o.Temperature)
	assert.Equal(t, "llama3", o.Model)
	assert.Equal(t, 256, o.MaxTokens)
}
