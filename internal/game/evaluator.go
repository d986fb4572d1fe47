package game

import "strings"

// Normalize reduces a string to its lowercase ASCII letters, dropping
// everything else. Words and guesses go through the same normalization, so
// comparison is exact equality with no case or punctuation sensitivity.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// MatchesWord reports whether rawGuess, once normalized, equals word. The
// word is expected to be normalized already. An empty word never matches:
// a guess that normalizes to "" is simply wrong, not an error.
func MatchesWord(word, rawGuess string) bool {
	return word != "" && Normalize(rawGuess) == word
}
