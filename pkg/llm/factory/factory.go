package factory

import (
	"fmt"

	"legalchat-be/internal/constant"
	"legalchat-be/pkg/llm"
	"legalchat-be/pkg/llm/groq"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		if baseURL == "" {
			baseURL = constant.GroqDefaultBaseURL
		}
		if modelName == "" {
			modelName = constant.GroqDefaultModel
		}
		return groq.NewGroqProvider(baseURL, apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
