package dto

import (
	"encoding/base64"

	"verse-audio-api/domain"
)

type SynthesizeResponse struct {
	AudioUrl     string `json:"audioUrl,omitempty"`
	AudioContent string `json:"audioContent,omitempty"`
	Cached       bool   `json:"cached"`
	Provider     string `json:"provider"`
	ContentType  string `json:"contentType"`
}

func FromResult(result domain.SynthesisResult) SynthesizeResponse {
	response := SynthesizeResponse{
		AudioUrl:    result.AudioURL,
		Cached:      result.Cached,
		Provider:    string(result.Provider),
		ContentType: result.ContentType,
	}

	if len(result.AudioContent) > 0 {
		response.AudioContent = base64.StdEncoding.EncodeToString(result.AudioContent)
	}

	return response
}
