// pkg/parser/parser.go
package parser

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// ParseWordBank extracts whitespace-separated words from a plain-text word list
func ParseWordBank(content []byte) []string {
	fields := strings.Fields(string(content))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		words = append(words, strings.ToLower(field))
	}
	return words
}

// ParseHTMLWordBank extracts the visible words of an HTML page. Script and
// style contents are ignored, and only purely alphabetic words are kept.
func ParseHTMLWordBank(content []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var words []string
	for _, field := range strings.Fields(doc.Text()) {
		word := cleanWord(field)
		if word != "" && IsAlphabetic(word) {
			words = append(words, word)
		}
	}
	return words, nil
}

// cleanWord lowercases a word and trims non-letter characters from both ends
func cleanWord(word string) string {
	word = strings.ToLower(word)
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// IsAlphabetic checks if a string contains only alphabetic characters
func IsAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
