package inbound

import "verse-audio-api/domain"

type VoiceResolverPort interface {
	Resolve(provider domain.Provider, voice string) string
}
