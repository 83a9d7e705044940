package outbound

import "context"

type SynthesizeParams struct {
	Text  string
	Voice string
	Speed float64
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeParams) ([]byte, error)
	MaxChunkChars() int
}
