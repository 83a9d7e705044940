package services

import (
	"strings"

	"verse-audio-api/application/ports/inbound"
	"verse-audio-api/domain"
)

const defaultOpenAIVoice = "alloy"

var defaultVoices = map[domain.Provider]string{
	domain.OpenAIProvider:     defaultOpenAIVoice,
	domain.ElevenLabsProvider: "21m00Tcm4TlvDq8ikWAM",
	domain.SpeechifyProvider:  "henry",
}

// Loaded once, never mutated. OpenAI voice names are cosmetic, so an unknown
// name falls back to a working default instead of failing the narration.
var openAIVoices = map[string]struct{}{
	"alloy":   {},
	"ash":     {},
	"coral":   {},
	"echo":    {},
	"fable":   {},
	"nova":    {},
	"onyx":    {},
	"sage":    {},
	"shimmer": {},
}

var openAIVoiceAliases = map[string]string{
	"ballad": "sage",
}

// ElevenLabs and Speechify voice ids are opaque, so unknown names pass
// through untouched rather than being guessed at.
var elevenLabsVoiceIDs = map[string]string{
	"rachel": "21m00Tcm4TlvDq8ikWAM",
	"bella":  "EXAVITQu4vr4xnSDxMaL",
	"antoni": "ErXwobaYiN019PkySvjV",
	"josh":   "TxGEqnHWrfWFTfGW9XjX",
	"adam":   "pNInz6obpgDQGcFmaJgB",
}

var speechifyVoiceIDs = map[string]string{
	"narrator": "george",
	"default":  "henry",
}

type voiceResolver struct{}

func NewVoiceResolver() inbound.VoiceResolverPort {
	return &voiceResolver{}
}

func (v *voiceResolver) Resolve(provider domain.Provider, voice string) string {
	name := strings.ToLower(strings.TrimSpace(voice))
	if name == "" {
		return defaultVoices[provider]
	}

	switch provider {
	case domain.OpenAIProvider:
		if _, ok := openAIVoices[name]; ok {
			return name
		}
		if replacement, ok := openAIVoiceAliases[name]; ok {
			return replacement
		}
		return defaultOpenAIVoice
	case domain.ElevenLabsProvider:
		if id, ok := elevenLabsVoiceIDs[name]; ok {
			return id
		}
		return voice
	case domain.SpeechifyProvider:
		if id, ok := speechifyVoiceIDs[name]; ok {
			return id
		}
		return voice
	default:
		return voice
	}
}
