package domain

import "time"

type Provider string

const (
	OpenAIProvider     Provider = "openai"
	ElevenLabsProvider Provider = "elevenlabs"
	SpeechifyProvider  Provider = "speechify"
)

func (p Provider) Valid() bool {
	switch p {
	case OpenAIProvider, ElevenLabsProvider, SpeechifyProvider:
		return true
	}
	return false
}

type ResponseShape string

const (
	InlineResponseShape ResponseShape = "inline"
	URLResponseShape    ResponseShape = "url"
)

type ScriptureRef struct {
	Book    string
	Chapter int
	Verse   int
}

type SynthesisRequest struct {
	Text          string
	Provider      Provider
	Voice         string
	Speed         float64
	ScriptureRef  *ScriptureRef
	UseCache      bool
	ResponseShape ResponseShape
}

func (r SynthesisRequest) Validate() error {
	if r.Text == "" {
		return ErrEmptyText
	}
	if !r.Provider.Valid() {
		return ErrUnsupportedProvider
	}
	if r.ScriptureRef != nil {
		if r.ScriptureRef.Book == "" || r.ScriptureRef.Chapter <= 0 || r.ScriptureRef.Verse <= 0 {
			return ErrPartialScriptureRef
		}
	}
	return nil
}

const AudioContentType = "audio/mpeg"

type SynthesisResult struct {
	AudioContent []byte
	AudioURL     string
	Cached       bool
	Provider     Provider
	ContentType  string
}

type CacheEntry struct {
	Key         string
	StoragePath string
	URL         string
	SizeBytes   int64
	CreatedAt   time.Time
}
