package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type SynthesisConfig struct {
	ChunkDelay      time.Duration
	ProviderTimeout time.Duration
}

func GetSynthesisConfig() (*SynthesisConfig, error) {
	chunkDelayMs := 250
	if raw := os.Getenv("CHUNK_DELAY_MS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CHUNK_DELAY_MS")
		}
		chunkDelayMs = parsed
	}

	providerTimeoutSec := 60
	if raw := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PROVIDER_TIMEOUT_SECONDS")
		}
		providerTimeoutSec = parsed
	}

	return &SynthesisConfig{
		ChunkDelay:      time.Duration(chunkDelayMs) * time.Millisecond,
		ProviderTimeout: time.Duration(providerTimeoutSec) * time.Second,
	}, nil
}
