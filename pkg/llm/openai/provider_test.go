package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"craftguide-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderChat(t *testing.T) {
	var got goopenai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(goopenai.ChatCompletionResponse{
			Choices: []goopenai.ChatCompletionChoice{{
				Message: goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleAssistant, Content: "Wedge the clay first."},
			}},
		})
	}))
	defer srv.Close()

	p := NewProvider("test-key", srv.URL+"/v1", "gpt-4o-mini")
	out, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are a pottery mentor."},
		{Role: "model", Content: "Hello."},
		{Role: "user", Content: "How do I center?"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Wedge the clay first.", out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, goopenai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, goopenai.ChatMessageRoleAssistant, got.Messages[1].Role)
	assert.Equal(t, goopenai.ChatMessageRoleUser, got.Messages[2].Role)
}

func TestProviderEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(goopenai.ChatCompletionResponse{})
	}))
	defer srv.Close()

	_, err := NewProvider("k", srv.URL+"/v1", "").Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}
