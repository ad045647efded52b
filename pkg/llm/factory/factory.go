package factory

import (
	"fmt"

	"craftguide-be/pkg/llm"
	"craftguide-be/pkg/llm/ollama"
	"craftguide-be/pkg/llm/openai"
)

const huggingFaceRouterURL = "https://router.huggingface.co/v1"

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewProvider(apiKey, "", modelName), nil
	case "huggingface":
		if apiKey == "" {
			return nil, fmt.Errorf("huggingface provider requires an API key")
		}
		return openai.NewProvider(apiKey, huggingFaceRouterURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
