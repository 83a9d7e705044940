package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/config"
)

func elevenLabsTestConfig(apiUrl string) *config.ElevenLabsConfig {
	return &config.ElevenLabsConfig{
		ApiUrl:          apiUrl,
		ApiKey:          "xi-test-key",
		ModelId:         "eleven_multilingual_v2",
		Stability:       0.5,
		SimilarityBoost: 0.75,
	}
}

func TestElevenLabsSynthesizer_RequestShape(t *testing.T) {
	var received elevenLabsRequest
	var apiKeyHeader, path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKeyHeader = r.Header.Get("xi-api-key")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Error("Failed to decode request body:", err)
		}
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	synthesizer := NewElevenLabsSynthesizer(NewContentFetcher(NewZerologWrapper()),
		elevenLabsTestConfig(server.URL), NewZerologWrapper())

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeParams{
		Text:  "The Lord is my shepherd",
		Voice: "21m00Tcm4TlvDq8ikWAM",
		Speed: 1.0,
	})
	if err != nil {
		t.Fatal("Synthesize failed:", err)
	}

	if path != "/v1/text-to-speech/21m00Tcm4TlvDq8ikWAM" {
		t.Fatal("Unexpected path:", path)
	}
	if apiKeyHeader != "xi-test-key" {
		t.Fatal("Unexpected xi-api-key header:", apiKeyHeader)
	}
	if received.Text != "The Lord is my shepherd" {
		t.Fatal("Unexpected text:", received.Text)
	}
	if received.ModelId != "eleven_multilingual_v2" {
		t.Fatal("Unexpected model id:", received.ModelId)
	}
	if received.VoiceSettings.Stability != 0.5 || received.VoiceSettings.SimilarityBoost != 0.75 {
		t.Fatal("Voice settings do not match the config")
	}
}

func TestElevenLabsSynthesizer_ClampsSpeed(t *testing.T) {
	var received elevenLabsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	synthesizer := NewElevenLabsSynthesizer(NewContentFetcher(NewZerologWrapper()),
		elevenLabsTestConfig(server.URL), NewZerologWrapper())

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeParams{
		Text:  "slow",
		Voice: "voice-id",
		Speed: 0.1,
	})
	if err != nil {
		t.Fatal("Synthesize failed:", err)
	}
	if received.VoiceSettings.Speed != 0.7 {
		t.Fatal("Expected the speed clamped to 0.7, got:", received.VoiceSettings.Speed)
	}
}
