package config

import (
	"fmt"
	"os"
)

type OpenAIConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiUrl := os.Getenv("OPENAI_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.openai.com"
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	model := os.Getenv("OPENAI_TTS_MODEL")
	if model == "" {
		model = "tts-1"
	}

	return &OpenAIConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
