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
	elevenLabsMaxChunkChars = 5000
	elevenLabsMinSpeed      = 0.7
	elevenLabsMaxSpeed      = 1.2
)

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelId       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Speed           float64 `json:"speed"`
}

type elevenLabsSynthesizer struct {
	fetcher          ContentFetcher
	elevenLabsConfig *config.ElevenLabsConfig
	logger           outbound.LoggerPort
}

func NewElevenLabsSynthesizer(fetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		fetcher:          fetcher,
		elevenLabsConfig: elevenLabsConfig,
		logger:           logger,
	}
}

func (e *elevenLabsSynthesizer) MaxChunkChars() int {
	return elevenLabsMaxChunkChars
}

func (e *elevenLabsSynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	reqBody := elevenLabsRequest{
		Text:    params.Text,
		ModelId: e.elevenLabsConfig.ModelId,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       e.elevenLabsConfig.Stability,
			SimilarityBoost: e.elevenLabsConfig.SimilarityBoost,
			Speed:           clampSpeed(params.Speed, elevenLabsMinSpeed, elevenLabsMaxSpeed),
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		e.logger.Error(err, "Failed to marshal the request body for the ElevenLabs API")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.elevenLabsConfig.ApiUrl+"/v1/text-to-speech/"+params.Voice, bytes.NewBuffer(jsonPayload))
	if err != nil {
		e.logger.Error(err, "Failed to create the HTTP POST request for ElevenLabs")
		return nil, err
	}

	req.Header.Add("Accept", "audio/mpeg")
	req.Header.Add("xi-api-key", e.elevenLabsConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	return e.fetcher.FetchContent(req, domain.ElevenLabsProvider)
}
