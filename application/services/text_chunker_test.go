package services

import (
	"strings"
	"testing"
)

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestTextChunker_ShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.Chunk("For God so loved the world.", 4096)
	if len(chunks) != 1 {
		t.Fatal("Expected a single chunk, got:", len(chunks))
	}
	if chunks[0] != "For God so loved the world." {
		t.Fatal("Chunk does not match input:", chunks[0])
	}
}

func TestTextChunker_CutsAtSentenceBoundary(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.Chunk("One two three. Four five six seven eight.", 20)
	if len(chunks) < 2 {
		t.Fatal("Expected multiple chunks, got:", len(chunks))
	}
	if chunks[0] != "One two three." {
		t.Fatal("Expected the first chunk to end at the sentence boundary, got:", chunks[0])
	}
}

func TestTextChunker_CutsAtParagraphBreak(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("a", 10) + "\n\n" + strings.Repeat("b", 10)

	chunks := chunker.Chunk(text, 15)
	if len(chunks) != 2 {
		t.Fatal("Expected two chunks, got:", len(chunks))
	}
	if chunks[0] != strings.Repeat("a", 10) {
		t.Fatal("Expected the first chunk to end at the paragraph break, got:", chunks[0])
	}
	if chunks[1] != strings.Repeat("b", 10) {
		t.Fatal("Expected the second chunk to hold the second paragraph, got:", chunks[1])
	}
}

func TestTextChunker_CutsAtSingleNewline(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("a", 10) + "\n" + strings.Repeat("b", 10)

	chunks := chunker.Chunk(text, 15)
	if len(chunks) != 2 {
		t.Fatal("Expected two chunks, got:", len(chunks))
	}
	if chunks[0] != strings.Repeat("a", 10) {
		t.Fatal("Expected the first chunk to end at the newline, got:", chunks[0])
	}
}

func TestTextChunker_HardCutWithoutBoundaries(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("a", 5000)

	chunks := chunker.Chunk(text, 4096)
	if len(chunks) != 2 {
		t.Fatal("Expected two chunks, got:", len(chunks))
	}
	if len(chunks[0]) != 4096 {
		t.Fatal("Expected a hard cut at exactly 4096 characters, got:", len(chunks[0]))
	}
	if len(chunks[1]) != 904 {
		t.Fatal("Unexpected remainder length:", len(chunks[1]))
	}
}

func TestTextChunker_ExactLimitIsSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.Chunk(strings.Repeat("a", 4096), 4096)
	if len(chunks) != 1 {
		t.Fatal("Expected a single chunk at the exact limit, got:", len(chunks))
	}
}

func TestTextChunker_BoundAndReconstruction(t *testing.T) {
	chunker := NewTextChunker()

	inputs := []string{
		"In the beginning God created the heavens and the earth. The earth was formless and empty.",
		strings.Repeat("The Lord is my shepherd. I shall not want. ", 40),
		strings.Repeat("word ", 300) + "\n\n" + strings.Repeat("verse ", 300),
		strings.Repeat("x", 777),
	}

	for _, maxChars := range []int{1, 7, 50, 256, 4096} {
		for _, input := range inputs {
			chunks := chunker.Chunk(input, maxChars)

			var joined strings.Builder
			for _, chunk := range chunks {
				if chunk == "" || strings.TrimSpace(chunk) == "" {
					t.Fatal("Got an empty chunk for maxChars", maxChars)
				}
				if len(chunk) > maxChars {
					t.Fatal("Chunk exceeds maxChars", maxChars, ":", len(chunk))
				}
				joined.WriteString(chunk)
				joined.WriteString(" ")
			}

			if stripWhitespace(joined.String()) != stripWhitespace(input) {
				t.Fatal("Chunks do not reconstruct the input for maxChars", maxChars)
			}
		}
	}
}

func TestTextChunker_WhitespaceOnlyInputYieldsNothing(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.Chunk("   \n\n   ", 4096)
	if len(chunks) != 0 {
		t.Fatal("Expected no chunks for whitespace-only input, got:", len(chunks))
	}
}
