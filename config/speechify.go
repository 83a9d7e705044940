package config

import (
	"fmt"
	"os"
)

type SpeechifyConfig struct {
	ApiUrl string
	ApiKey string
}

func GetSpeechifyConfig() (*SpeechifyConfig, error) {
	apiUrl := os.Getenv("SPEECHIFY_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.sws.speechify.com"
	}
	apiKey := os.Getenv("SPEECHIFY_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SPEECHIFY_API_KEY must be set")
	}

	return &SpeechifyConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
	}, nil
}
