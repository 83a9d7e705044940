package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"verse-audio-api/application/ports/inbound"
	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/domain"
	"verse-audio-api/infrastructure/gin_interface/dto"
)

type SynthesisController interface {
	Synthesize(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type synthesisController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.SynthesisOrchestratorPort
}

func NewSynthesisController(logger outbound.LoggerPort,
	orchestrator inbound.SynthesisOrchestratorPort) SynthesisController {
	return &synthesisController{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

func (s *synthesisController) Synthesize(c *gin.Context) {
	var request dto.SynthesizeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.orchestrator.Synthesize(c.Request.Context(), request.ToDomain())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromResult(result))
}

func (s *synthesisController) respondError(c *gin.Context, err error) {
	if domain.IsInvalidRequest(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		s.logger.ErrorWithFields(err, "upstream synthesis failed", map[string]interface{}{
			"provider": providerErr.Provider,
			"status":   providerErr.StatusCode,
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	s.logger.Error(err, "synthesis request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *synthesisController) RegisterRoutes(g *gin.Engine) {
	g.POST("/synthesize", s.Synthesize)
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
