package inbound

import (
	"context"

	"verse-audio-api/domain"
)

type SynthesisOrchestratorPort interface {
	Synthesize(ctx context.Context, req domain.SynthesisRequest) (domain.SynthesisResult, error)
}
