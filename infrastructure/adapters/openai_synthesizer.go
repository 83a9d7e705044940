package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/config"
	"verse-audio-api/domain"
)

const (
	openAIMaxChunkChars = 4096
	openAIMinSpeed      = 0.25
	openAIMaxSpeed      = 4.0
)

type openAISpeechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	Speed          float64 `json:"speed"`
	ResponseFormat string  `json:"response_format"`
}

type openAISynthesizer struct {
	fetcher      ContentFetcher
	openAIConfig *config.OpenAIConfig
	logger       outbound.LoggerPort
}

func NewOpenAISynthesizer(fetcher ContentFetcher, openAIConfig *config.OpenAIConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &openAISynthesizer{
		fetcher:      fetcher,
		openAIConfig: openAIConfig,
		logger:       logger,
	}
}

func (o *openAISynthesizer) MaxChunkChars() int {
	return openAIMaxChunkChars
}

func (o *openAISynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	reqBody := openAISpeechRequest{
		Model:          o.openAIConfig.Model,
		Input:          params.Text,
		Voice:          params.Voice,
		Speed:          clampSpeed(params.Speed, openAIMinSpeed, openAIMaxSpeed),
		ResponseFormat: "mp3",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		o.logger.Error(err, "Failed to marshal the request body for the OpenAI speech API")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.openAIConfig.ApiUrl+"/v1/audio/speech", bytes.NewBuffer(jsonPayload))
	if err != nil {
		o.logger.Error(err, "Failed to create the HTTP POST request for OpenAI speech")
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+o.openAIConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return o.fetcher.FetchContent(req, domain.OpenAIProvider)
}

func clampSpeed(speed, min, max float64) float64 {
	if speed < min {
		return min
	}
	if speed > max {
		return max
	}
	return speed
}
