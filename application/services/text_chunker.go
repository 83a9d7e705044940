package services

import (
	"strings"

	"verse-audio-api/application/ports/inbound"
)

// Boundary preference inside a window: sentence end past half the window,
// then paragraph break, then single newline past 30%, then a hard cut.
// Concatenated chunk audio sounds broken when a sentence is cut mid-clause,
// so the search works backward from the end of the window.
const (
	sentenceBoundaryFraction  = 0.5
	paragraphBoundaryFraction = 0.3
)

var sentenceEnders = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

type textChunker struct{}

func NewTextChunker() inbound.TextChunkerPort {
	return &textChunker{}
}

func (t *textChunker) Chunk(text string, maxChars int) []string {
	var chunks []string

	remaining := text
	for len(remaining) > maxChars {
		cut := findCut(remaining[:maxChars])
		if cut <= 0 {
			cut = maxChars
		}
		piece := strings.TrimSpace(remaining[:cut])
		if piece != "" {
			chunks = append(chunks, piece)
		}
		remaining = remaining[cut:]
	}

	if piece := strings.TrimSpace(remaining); piece != "" {
		chunks = append(chunks, piece)
	}

	return chunks
}

func findCut(window string) int {
	minSentence := int(float64(len(window)) * sentenceBoundaryFraction)
	best := -1
	for _, ender := range sentenceEnders {
		if idx := strings.LastIndex(window, ender); idx > best {
			best = idx
		}
	}
	if best >= minSentence {
		// keep the punctuation with the chunk, drop into the separator
		return best + 1
	}

	minParagraph := int(float64(len(window)) * paragraphBoundaryFraction)
	if idx := strings.LastIndex(window, "\n\n"); idx >= minParagraph {
		return idx
	}
	if idx := strings.LastIndex(window, "\n"); idx >= minParagraph {
		return idx
	}

	return len(window)
}
