// Package caesar implements the classic shift (Caesar) cipher together with a
// brute-force decoder that picks the shift producing the most dictionary words.
//
// The cipher rotates each ASCII letter within its own case; every other
// character (digits, whitespace, punctuation, non-ASCII runes) passes through
// untouched. It offers no security at all.
package caesar

import (
	"strings"
	"unicode/utf8"
)

// AlphabetSize is the number of letters in each case of the Latin alphabet.
const AlphabetSize = 26

// SubstitutionMap maps each of the 52 ASCII letters to its shifted letter of
// the same case.
type SubstitutionMap map[rune]rune

// NormalizeShift reduces any integer shift into [0, 25].
func NormalizeShift(shift int) int {
	shift %= AlphabetSize
	if shift < 0 {
		shift += AlphabetSize
	}
	return shift
}

// BuildMap returns the substitution map for shift. A shift of 0 (or any
// multiple of 26) yields the identity map.
func BuildMap(shift int) SubstitutionMap {
	shift = NormalizeShift(shift)
	m := make(SubstitutionMap, 2*AlphabetSize)
	for i := 0; i < AlphabetSize; i++ {
		j := rune((i + shift) % AlphabetSize)
		m['a'+rune(i)] = 'a' + j
		m['A'+rune(i)] = 'A' + j
	}
	return m
}

// Apply shifts every letter of text by shift positions.
func Apply(text string, shift int) string {
	return BuildMap(shift).Apply(text)
}

// Apply substitutes the letters of text. Bytes outside the map, including
// every byte of a multi-byte UTF-8 sequence, are copied as is.
func (m SubstitutionMap) Apply(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < utf8.RuneSelf {
			if mapped, ok := m[rune(c)]; ok {
				b.WriteByte(byte(mapped))
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Clone returns an independent copy of m.
func (m SubstitutionMap) Clone() SubstitutionMap {
	out := make(SubstitutionMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Inverse returns the map that undoes m.
func (m SubstitutionMap) Inverse() SubstitutionMap {
	out := make(SubstitutionMap, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
