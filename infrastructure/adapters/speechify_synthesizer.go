package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/config"
	"verse-audio-api/domain"
)

const (
	speechifyMaxChunkChars = 2000
	speechifyMinSpeed      = 0.5
	speechifyMaxSpeed      = 2.0
)

type speechifyRequest struct {
	Input       string `json:"input"`
	VoiceId     string `json:"voice_id"`
	AudioFormat string `json:"audio_format"`
}

// Speechify wraps its audio in a JSON envelope rather than returning raw
// bytes the way the other providers do.
type speechifyResponse struct {
	AudioData string `json:"audio_data"`
}

type speechifySynthesizer struct {
	fetcher         ContentFetcher
	speechifyConfig *config.SpeechifyConfig
	logger          outbound.LoggerPort
}

func NewSpeechifySynthesizer(fetcher ContentFetcher, speechifyConfig *config.SpeechifyConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &speechifySynthesizer{
		fetcher:         fetcher,
		speechifyConfig: speechifyConfig,
		logger:          logger,
	}
}

func (s *speechifySynthesizer) MaxChunkChars() int {
	return speechifyMaxChunkChars
}

func (s *speechifySynthesizer) Synthesize(ctx context.Context, params outbound.SynthesizeParams) ([]byte, error) {
	speed := clampSpeed(params.Speed, speechifyMinSpeed, speechifyMaxSpeed)

	input := params.Text
	if speed != 1.0 {
		// speed rides along as SSML prosody, there is no top-level field for it
		input = fmt.Sprintf(`<speak><prosody rate="%d%%">%s</prosody></speak>`, int(speed*100), params.Text)
	}

	reqBody := speechifyRequest{
		Input:       input,
		VoiceId:     params.Voice,
		AudioFormat: "mp3",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body for the Speechify API")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.speechifyConfig.ApiUrl+"/v1/audio/speech", bytes.NewBuffer(jsonPayload))
	if err != nil {
		s.logger.Error(err, "Failed to create the HTTP POST request for Speechify")
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+s.speechifyConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	payload, err := s.fetcher.FetchContent(req, domain.SpeechifyProvider)
	if err != nil {
		return nil, err
	}

	var envelope speechifyResponse

	err = json.Unmarshal(payload, &envelope)
	if err != nil {
		s.logger.Error(err, "Failed to decode the Speechify response envelope")
		return nil, &domain.ProviderError{
			Provider:   domain.SpeechifyProvider,
			StatusCode: http.StatusOK,
			Body:       "malformed response envelope",
		}
	}

	audio, err := base64.StdEncoding.DecodeString(envelope.AudioData)
	if err != nil {
		s.logger.Error(err, "Failed to decode the Speechify audio payload")
		return nil, &domain.ProviderError{
			Provider:   domain.SpeechifyProvider,
			StatusCode: http.StatusOK,
			Body:       "audio payload is not valid base64",
		}
	}

	return audio, nil
}
