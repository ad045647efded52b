package response

import (
	"context"
	"testing"

	"craftguide-be/pkg/llm"
	"craftguide-be/pkg/rag/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	reply   string
	history []llm.Message
	opts    llm.Options
}

func (p *recordingProvider) Chat(_ context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	p.history = history
	p.opts = llm.ApplyOptions(llm.Options{}, opts...)
	return p.reply, nil
}

func (p *recordingProvider) Generate(ctx context.Context, text string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: text}}, opts...)
}

func TestLLMGeneratorBuildsPrompt(t *testing.T) {
	p := &recordingProvider{reply: "Use a sharp chisel."}
	g := NewLLMGenerator(p, nil, llm.WithTemperature(0.2))

	out, err := g.Generate(context.Background(), prompt.Context{AugmentedText: "how do I pare end grain?"})
	require.NoError(t, err)
	assert.Equal(t, "Use a sharp chisel.", out)

	require.Len(t, p.history, 2)
	assert.Equal(t, "system", p.history[0].Role)
	assert.Contains(t, p.history[1].Content, "how do I pare end grain?")
	assert.Equal(t, 0.2, p.opts.Temperature)
}

func TestLLMGeneratorRejectsBlankReply(t *testing.T) {
	g := NewLLMGenerator(&recordingProvider{reply: "  \n"}, nil)

	_, err := g.Generate(context.Background(), prompt.Context{})
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}
