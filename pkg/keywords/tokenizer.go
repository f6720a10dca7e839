package keywords

import (
	"regexp"
	"strings"
)

// stopWords are common English words (plus navigation boilerplate) that
// never count as keywords on their own
var stopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
		"by", "from", "up", "about", "into", "through", "during", "before", "after",
		"above", "below", "between", "under", "again", "further", "then", "once",
		"here", "there", "when", "where", "why", "how", "all", "each", "few", "more",
		"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same",
		"so", "than", "too", "very", "can", "will", "just", "should", "now", "also",
		"is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
		"do", "does", "did", "would", "could", "might", "must", "shall", "get",
		"this", "that", "these", "those", "i", "you", "he", "she", "it", "we", "they",
		"what", "which", "who", "whom", "its", "your", "their", "our", "my", "his", "her",
		"as", "if", "while", "because", "until", "unless", "although", "though",
		"since", "however", "therefore", "thus", "hence", "yet", "still", "even",
		"click", "read", "learn", "view", "see", "go", "back", "next", "previous",
		"home", "menu", "contact", "us", "me", "submit", "send", "email", "phone",
	} {
		stopWords[w] = true
	}
}

var nonKeywordChars = regexp.MustCompile(`[^a-z0-9\s-]`)

// splitWords lowercases the text, strips everything outside [a-z0-9 -],
// and splits on whitespace. minLen filters out short fragments
func splitWords(text string, minLen int) []string {
	cleaned := nonKeywordChars.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)
	words := fields[:0]
	for _, w := range fields {
		if len(w) > minLen {
			words = append(words, w)
		}
	}
	return words
}

// singleWordFrequencies counts single-word keywords, dropping stop words
// and words of two characters or fewer
func singleWordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, word := range splitWords(text, 2) {
		if !stopWords[word] {
			freq[word]++
		}
	}
	return freq
}

// ngramFrequencies counts n-word phrases. A phrase is kept only when at
// least half its words (rounded up) are not stop words, so phrases like
// "of the and" never surface
func ngramFrequencies(text string, n int) map[string]int {
	words := splitWords(text, 1)
	freq := make(map[string]int)

	minNonStop := (n + 1) / 2
	for i := 0; i+n <= len(words); i++ {
		gram := words[i : i+n]
		nonStop := 0
		for _, w := range gram {
			if !stopWords[w] {
				nonStop++
			}
		}
		if nonStop >= minNonStop {
			freq[strings.Join(gram, " ")]++
		}
	}
	return freq
}
