package wordbank

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/NivBraz/shiftcipher/pkg/parser"
)

// Punctuation is stripped from both ends of a word before lookup.
const Punctuation = `!@#$%^&*()-_+={}[]|\:;'<>?,./"`

var (
	// ErrIO is returned when a dictionary source cannot be read.
	ErrIO = errors.New("dictionary unavailable")

	// ErrEmpty is returned when a dictionary source holds no words.
	ErrEmpty = fmt.Errorf("%w: no words found", ErrIO)
)

//go:embed words.txt
var defaultWords string

// WordBank is an immutable set of lowercase words. It is safe for concurrent
// use.
type WordBank struct {
	words map[string]struct{}
}

// New builds a word bank from words. Entries are lowercased and trimmed;
// blank entries are skipped.
func New(words ...string) *WordBank {
	wb := &WordBank{
		words: make(map[string]struct{}, len(words)),
	}
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			wb.words[word] = struct{}{}
		}
	}
	return wb
}

// Load reads whitespace-separated words from r.
func Load(r io.Reader) (*WordBank, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return FromWords(parser.ParseWordBank(content))
}

// LoadFile reads a word list from the file at path.
func LoadFile(path string) (*WordBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	wb, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return wb, nil
}

// FromWords builds a word bank and fails with ErrEmpty if none of the words
// survive normalization.
func FromWords(words []string) (*WordBank, error) {
	wb := New(words...)
	if wb.Len() == 0 {
		return nil, ErrEmpty
	}
	return wb, nil
}

// Default returns the word bank built from the embedded list of common
// English words.
func Default() *WordBank {
	return New(parser.ParseWordBank([]byte(defaultWords))...)
}

// Contains reports whether word is in the bank, ignoring case and any
// surrounding whitespace or punctuation.
func (wb *WordBank) Contains(word string) bool {
	_, exists := wb.words[Normalize(word)]
	return exists
}

// Len returns the number of distinct words.
func (wb *WordBank) Len() int {
	return len(wb.words)
}

// Words returns the words in sorted order.
func (wb *WordBank) Words() []string {
	out := make([]string, 0, len(wb.words))
	for word := range wb.words {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// Normalize lowercases word and trims whitespace and Punctuation from both
// ends.
func Normalize(word string) string {
	return strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(Punctuation, r)
	})
}
