package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"verse-audio-api/domain"
	"verse-audio-api/infrastructure/gin_interface/dto"
)

type noopLogger struct{}

func (noopLogger) Info(string)                                           {}
func (noopLogger) InfoWithFields(string, map[string]interface{})         {}
func (noopLogger) Error(error, string)                                   {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                          {}
func (noopLogger) DebugWithFields(string, map[string]interface{})        {}
func (noopLogger) Warn(string)                                           {}
func (noopLogger) WarnWithFields(string, map[string]interface{})         {}

type stubOrchestrator struct {
	request domain.SynthesisRequest
	result  domain.SynthesisResult
	err     error
}

func (s *stubOrchestrator) Synthesize(_ context.Context, req domain.SynthesisRequest) (domain.SynthesisResult, error) {
	s.request = req
	return s.result, s.err
}

func newTestRouter(orchestrator *stubOrchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewSynthesisController(noopLogger{}, orchestrator).RegisterRoutes(router)
	return router
}

func postSynthesize(router *gin.Engine, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/synthesize", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSynthesisController_HappyPath(t *testing.T) {
	orchestrator := &stubOrchestrator{
		result: domain.SynthesisResult{
			AudioContent: []byte("mp3-bytes"),
			Provider:     domain.OpenAIProvider,
			ContentType:  domain.AudioContentType,
		},
	}
	router := newTestRouter(orchestrator)

	recorder := postSynthesize(router, `{"text":"For God so loved the world"}`)
	if recorder.Code != http.StatusOK {
		t.Fatal("Expected 200, got:", recorder.Code, recorder.Body.String())
	}

	var response dto.SynthesizeResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatal("Failed to decode response:", err)
	}
	if response.AudioContent != "bXAzLWJ5dGVz" {
		t.Fatal("Expected base64 audio content, got:", response.AudioContent)
	}
	if response.Provider != "openai" || response.ContentType != "audio/mpeg" {
		t.Fatal("Unexpected response metadata")
	}
}

func TestSynthesisController_AppliesDefaults(t *testing.T) {
	orchestrator := &stubOrchestrator{}
	router := newTestRouter(orchestrator)

	recorder := postSynthesize(router, `{"text":"hello"}`)
	if recorder.Code != http.StatusOK {
		t.Fatal("Expected 200, got:", recorder.Code)
	}

	req := orchestrator.request
	if req.Provider != domain.OpenAIProvider {
		t.Fatal("Expected the openai provider default, got:", req.Provider)
	}
	if req.Speed != 1.0 {
		t.Fatal("Expected the speed default, got:", req.Speed)
	}
	if !req.UseCache {
		t.Fatal("Expected caching on by default")
	}
	if req.ResponseShape != domain.InlineResponseShape {
		t.Fatal("Expected the inline response shape default, got:", req.ResponseShape)
	}
}

func TestSynthesisController_MissingTextIsBadRequest(t *testing.T) {
	router := newTestRouter(&stubOrchestrator{})

	recorder := postSynthesize(router, `{"provider":"openai"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatal("Expected 400, got:", recorder.Code)
	}
}

func TestSynthesisController_InvalidRequestTaxonomy(t *testing.T) {
	orchestrator := &stubOrchestrator{err: domain.ErrPartialScriptureRef}
	router := newTestRouter(orchestrator)

	recorder := postSynthesize(router, `{"text":"hi","scriptureRef":{"book":"John"}}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatal("Expected 400, got:", recorder.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatal("Failed to decode error response:", err)
	}
	if response["error"] == "" {
		t.Fatal("Expected an error message in the response")
	}
}

func TestSynthesisController_ProviderErrorIsBadGateway(t *testing.T) {
	orchestrator := &stubOrchestrator{err: &domain.ProviderError{
		Provider:   domain.OpenAIProvider,
		StatusCode: http.StatusTooManyRequests,
		Body:       "rate limited",
	}}
	router := newTestRouter(orchestrator)

	recorder := postSynthesize(router, `{"text":"hi"}`)
	if recorder.Code != http.StatusBadGateway {
		t.Fatal("Expected 502, got:", recorder.Code)
	}
}

func TestSynthesisController_Health(t *testing.T) {
	router := newTestRouter(&stubOrchestrator{})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatal("Expected 200, got:", recorder.Code)
	}
}
