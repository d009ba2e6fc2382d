package ingest

import (
	"strings"
	"unicode"
)

// splitSentences 在句末标点(. ! ?)后跟空白处切分文本。
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if (runes[i] == '.' || runes[i] == '!' || runes[i] == '?') &&
			i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, string(runes[start:i+1]))
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

// ChunkText 把文本按句子边界聚合成不超过maxChunkSize个字符的分块。
// 单个超长句子不会被截断，而是独占一个分块。
func ChunkText(text string, maxChunkSize int) []string {
	sentences := splitSentences(text)
	chunks := make([]string, 0)
	current := ""

	for _, sentence := range sentences {
		if len(current)+len(sentence) > maxChunkSize && current != "" {
			chunks = append(chunks, strings.TrimSpace(current))
			current = sentence
		} else if current == "" {
			current = sentence
		} else {
			current += " " + sentence
		}
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}
	return chunks
}
