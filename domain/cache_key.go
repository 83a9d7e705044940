package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// CacheKey addresses a cached narration either by canonical scripture
// reference or by a hash of the exact synthesis inputs. Two requests that are
// observably identical always derive the same key.
type CacheKey interface {
	IndexKey() string
	StoragePath() string
}

type ReferenceKey struct {
	Provider Provider
	Voice    string
	Book     string
	Chapter  int
	Verse    int
}

func (k ReferenceKey) IndexKey() string {
	return fmt.Sprintf("%s/%s/%s/%d/%d", k.Provider, k.Voice, k.Book, k.Chapter, k.Verse)
}

func (k ReferenceKey) StoragePath() string {
	return fmt.Sprintf("%s/%s/%s/%d/%d.audio", k.Provider, k.Voice, k.Book, k.Chapter, k.Verse)
}

type ContentKey struct {
	Provider Provider
	Voice    string
	Speed    float64
	TextHash string
}

func (k ContentKey) IndexKey() string {
	return fmt.Sprintf("tts/%s/%s/%s", k.Provider, k.Voice, k.TextHash)
}

func (k ContentKey) StoragePath() string {
	return fmt.Sprintf("tts/%s/%s/%s.audio", k.Provider, k.Voice, k.TextHash)
}

type hashedTuple struct {
	Provider string `json:"provider"`
	Voice    string `json:"voice"`
	Speed    string `json:"speed"`
	Text     string `json:"text"`
}

// DeriveKey computes the cache key for a request whose voice has already been
// resolved to its canonical form. Speed is rounded to two decimals before
// hashing so floating-point noise does not fragment the cache.
func DeriveKey(req SynthesisRequest, canonicalVoice string) CacheKey {
	if req.ScriptureRef != nil {
		return ReferenceKey{
			Provider: req.Provider,
			Voice:    canonicalVoice,
			Book:     NormalizeBook(req.ScriptureRef.Book),
			Chapter:  req.ScriptureRef.Chapter,
			Verse:    req.ScriptureRef.Verse,
		}
	}

	speed := RoundSpeed(req.Speed)
	payload, _ := json.Marshal(hashedTuple{
		Provider: string(req.Provider),
		Voice:    canonicalVoice,
		Speed:    fmt.Sprintf("%.2f", speed),
		Text:     strings.TrimSpace(req.Text),
	})
	sum := sha256.Sum256(payload)

	return ContentKey{
		Provider: req.Provider,
		Voice:    canonicalVoice,
		Speed:    speed,
		TextHash: hex.EncodeToString(sum[:]),
	}
}

// NormalizeBook makes a book name safe as a storage-path segment:
// "1 Corinthians" becomes "1-corinthians".
func NormalizeBook(book string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(book))), "-")
}

// RoundSpeed rounds to two decimals, half up. The epsilon nudges values like
// 1.005 past their binary representation (1.00499...) so they round the way
// the decimal reads.
func RoundSpeed(speed float64) float64 {
	return math.Round(speed*100+1e-9) / 100
}
