package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc     string
		input    string
		expected string
	}{
		{desc: "already normalized", input: "cat", expected: "cat"},
		{desc: "uppercase", input: "CAT", expected: "cat"},
		{desc: "trailing space", input: "CAT ", expected: "cat"},
		{desc: "inner punctuation", input: "C!at", expected: "cat"},
		{desc: "digits stripped", input: "c4t9", expected: "ct"},
		{desc: "mixed everything", input: " Fire-Truck!! ", expected: "firetruck"},
		{desc: "only punctuation", input: "?!...", expected: ""},
		{desc: "empty", input: "", expected: ""},
		{desc: "non ascii stripped", input: "héllo", expected: "hllo"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"C!at", "cat", "CAT ", "Fire Truck", "123"} {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestMatchesWord(t *testing.T) {
	t.Parallel()
	assert.True(t, MatchesWord("cat", "cat"))
	assert.True(t, MatchesWord("cat", "C!at"))
	assert.True(t, MatchesWord("cat", "CAT "))
	assert.False(t, MatchesWord("cat", "dog"))
	assert.False(t, MatchesWord("cat", "ca"))

	// Before the first round the session has no word; nothing matches it,
	// not even a guess that normalizes to the empty string.
	assert.False(t, MatchesWord("", ""))
	assert.False(t, MatchesWord("", "?!"))
}
