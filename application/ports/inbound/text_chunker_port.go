package inbound

type TextChunkerPort interface {
	Chunk(text string, maxChars int) []string
}
