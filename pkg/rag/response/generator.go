package response

import (
	"context"
	"errors"
	"strings"

	"craftguide-be/pkg/llm"
	"craftguide-be/pkg/rag/prompt"
)

// ErrGenerationUnavailable is what the composer records when no prose came
// back, whatever the underlying cause.
var ErrGenerationUnavailable = errors.New("generation service unavailable")

// ContentGenerator produces the prose part of a guidance response. It only
// receives context; it never sees the store.
type ContentGenerator interface {
	Generate(ctx context.Context, pc prompt.Context) (string, error)
}

// GeneratorFunc adapts a plain function to ContentGenerator.
type GeneratorFunc func(ctx context.Context, pc prompt.Context) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, pc prompt.Context) (string, error) {
	return f(ctx, pc)
}

// LLMGenerator renders the prompt and forwards it to an LLM provider.
type LLMGenerator struct {
	provider llm.LLMProvider
	builder  *prompt.Builder
	opts     []llm.Option
}

// NewLLMGenerator creates a generator over provider. A nil builder means
// prompt.NewBuilder().
func NewLLMGenerator(provider llm.LLMProvider, builder *prompt.Builder, opts ...llm.Option) *LLMGenerator {
	if builder == nil {
		builder = prompt.NewBuilder()
	}
	return &LLMGenerator{
		provider: provider,
		builder:  builder,
		opts:     opts,
	}
}

func (g *LLMGenerator) Generate(ctx context.Context, pc prompt.Context) (string, error) {
	history := []llm.Message{
		{Role: "system", Content: "You are a patient, safety-minded craft mentor."},
		{Role: "user", Content: g.builder.Build(pc)},
	}

	out, err := g.provider.Chat(ctx, history, g.opts...)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", llm.ErrEmptyCompletion
	}
	return out, nil
}
