package practice

import "strings"

// Tokenize splits text on runs of whitespace and lowercases every token.
// Punctuation stays attached to its word ("Hello," stays "hello,").
// Empty or whitespace-only input yields an empty slice.
func Tokenize(text string) []string {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}
	return tokens
}

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
