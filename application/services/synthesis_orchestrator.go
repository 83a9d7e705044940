package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"verse-audio-api/application/ports/inbound"
	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/domain"
)

const backgroundWriteTimeout = 30 * time.Second

type synthesisOrchestrator struct {
	logger          outbound.LoggerPort
	workerPool      outbound.TaskDispatcher
	chunker         inbound.TextChunkerPort
	voiceResolver   inbound.VoiceResolverPort
	synthesizers    map[domain.Provider]outbound.SpeechSynthesizerPort
	audioStore      outbound.AudioStorePort
	cacheIndex      outbound.CacheIndexPort
	chunkDelay      time.Duration
	providerTimeout time.Duration
}

func NewSynthesisOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	chunker inbound.TextChunkerPort, voiceResolver inbound.VoiceResolverPort,
	synthesizers map[domain.Provider]outbound.SpeechSynthesizerPort,
	audioStore outbound.AudioStorePort, cacheIndex outbound.CacheIndexPort,
	chunkDelay time.Duration, providerTimeout time.Duration) inbound.SynthesisOrchestratorPort {
	return &synthesisOrchestrator{
		logger:          logger,
		workerPool:      workerPool,
		chunker:         chunker,
		voiceResolver:   voiceResolver,
		synthesizers:    synthesizers,
		audioStore:      audioStore,
		cacheIndex:      cacheIndex,
		chunkDelay:      chunkDelay,
		providerTimeout: providerTimeout,
	}
}

func (s *synthesisOrchestrator) Synthesize(ctx context.Context, req domain.SynthesisRequest) (domain.SynthesisResult, error) {
	if err := req.Validate(); err != nil {
		return domain.SynthesisResult{}, err
	}

	synthesizer, ok := s.synthesizers[req.Provider]
	if !ok {
		return domain.SynthesisResult{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, req.Provider)
	}

	voice := s.voiceResolver.Resolve(req.Provider, req.Voice)
	key := domain.DeriveKey(req, voice)

	if req.UseCache {
		if result, hit := s.lookupCache(ctx, req, key); hit {
			return result, nil
		}
	}

	audio, err := s.synthesizeChunks(ctx, req, synthesizer, voice)
	if err != nil {
		return domain.SynthesisResult{}, err
	}

	return s.respond(ctx, req, key, audio), nil
}

func (s *synthesisOrchestrator) lookupCache(ctx context.Context, req domain.SynthesisRequest, key domain.CacheKey) (domain.SynthesisResult, bool) {
	entry, err := s.cacheIndex.Lookup(ctx, key.IndexKey())
	if err != nil {
		// an unreachable index degrades to a miss; narration must not
		// depend on the cache being up
		s.logger.WarnWithFields("cache lookup failed, treating as miss", map[string]interface{}{
			"key":   key.IndexKey(),
			"error": err.Error(),
		})
		return domain.SynthesisResult{}, false
	}
	if entry == nil {
		return domain.SynthesisResult{}, false
	}

	result := domain.SynthesisResult{
		AudioURL:    entry.URL,
		Cached:      true,
		Provider:    req.Provider,
		ContentType: domain.AudioContentType,
	}

	if req.ResponseShape == domain.InlineResponseShape {
		audio, fetchErr := s.audioStore.Fetch(ctx, entry.StoragePath)
		if fetchErr != nil {
			s.logger.WarnWithFields("cached audio fetch failed, returning locator only", map[string]interface{}{
				"path":  entry.StoragePath,
				"error": fetchErr.Error(),
			})
		} else {
			result.AudioContent = audio
		}
	}

	return result, true
}

func (s *synthesisOrchestrator) synthesizeChunks(ctx context.Context, req domain.SynthesisRequest,
	synthesizer outbound.SpeechSynthesizerPort, voice string) ([]byte, error) {
	chunks := s.chunker.Chunk(req.Text, synthesizer.MaxChunkChars())

	var audio bytes.Buffer

	for i, chunk := range chunks {
		if i > 0 {
			// a courtesy pause between upstream calls, not a correctness need
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("synthesis cancelled: %w", ctx.Err())
			case <-time.After(s.chunkDelay):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
		chunkAudio, err := synthesizer.Synthesize(callCtx, outbound.SynthesizeParams{
			Text:  chunk,
			Voice: voice,
			Speed: req.Speed,
		})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("chunk %d of %d failed: %w", i+1, len(chunks), err)
		}

		audio.Write(chunkAudio)
	}

	return audio.Bytes(), nil
}

func (s *synthesisOrchestrator) respond(ctx context.Context, req domain.SynthesisRequest,
	key domain.CacheKey, audio []byte) domain.SynthesisResult {
	result := domain.SynthesisResult{
		Provider:    req.Provider,
		ContentType: domain.AudioContentType,
	}

	if !req.UseCache {
		result.AudioContent = audio
		return result
	}

	if req.ScriptureRef != nil {
		// scripture narration responds before the durable write so the first
		// caller for a verse is never held up by storage; the cache warms for
		// the next caller once the detached write lands
		result.AudioContent = audio
		result.AudioURL = s.audioStore.URL(key.StoragePath())
		s.persistInBackground(key, audio)
		return result
	}

	url, err := s.persist(ctx, key, audio)
	if err != nil {
		s.logger.ErrorWithFields(err, "cache write failed, responding inline", map[string]interface{}{
			"key": key.IndexKey(),
		})
		result.AudioContent = audio
		return result
	}

	if req.ResponseShape == domain.URLResponseShape {
		result.AudioURL = url
	} else {
		result.AudioContent = audio
	}

	return result
}

func (s *synthesisOrchestrator) persist(ctx context.Context, key domain.CacheKey, audio []byte) (string, error) {
	url, err := s.audioStore.Save(ctx, key.StoragePath(), audio)
	if err != nil {
		return "", fmt.Errorf("failed to save audio blob: %w", err)
	}

	err = s.cacheIndex.Save(ctx, domain.CacheEntry{
		Key:         key.IndexKey(),
		StoragePath: key.StoragePath(),
		URL:         url,
		SizeBytes:   int64(len(audio)),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to save cache entry: %w", err)
	}

	return url, nil
}

func (s *synthesisOrchestrator) persistInBackground(key domain.CacheKey, audio []byte) {
	err := s.workerPool.Submit(func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), backgroundWriteTimeout)
		defer cancel()

		if _, persistErr := s.persist(bgCtx, key, audio); persistErr != nil {
			s.logger.ErrorWithFields(persistErr, "background cache write failed", map[string]interface{}{
				"key": key.IndexKey(),
			})
		}
	})
	if err != nil {
		s.logger.Error(err, "failed to dispatch background cache write")
	}
}
