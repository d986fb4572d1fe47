package game

import (
	"bufio"
	"errors"
	"math/rand"
	"os"
)

// WordSource supplies the secret word for each round. Implementations must
// return already-normalized words.
type WordSource interface {
	RandomWord() string
}

// WordList is a fixed in-memory word source.
type WordList struct {
	words []string
}

var ErrEmptyWordList = errors.New("empty-word-list")

// NewWordList normalizes the given words and drops any that normalize to the
// empty string.
func NewWordList(words []string) (*WordList, error) {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if n := Normalize(w); n != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptyWordList
	}
	return &WordList{words: kept}, nil
}

// LoadWordList reads a newline-delimited word file.
func LoadWordList(path string) (*WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewWordList(words)
}

func (l *WordList) RandomWord() string {
	return l.words[rand.Intn(len(l.words))]
}

func (l *WordList) Len() int {
	return len(l.words)
}

// defaultWords backs the server when no words file is configured.
var defaultWords = []string{
	"apple", "banana", "bridge", "butterfly", "camera", "candle", "castle",
	"cat", "chair", "cloud", "dog", "dolphin", "dragon", "drum", "elephant",
	"fire", "fish", "flower", "guitar", "hammer", "house", "island", "kite",
	"ladder", "lighthouse", "lion", "moon", "mountain", "mushroom", "ocean",
	"pencil", "piano", "pirate", "pizza", "rainbow", "robot", "rocket",
	"snowman", "spider", "sun", "train", "tree", "turtle", "umbrella",
	"violin", "volcano", "whale", "window", "wizard", "zebra",
}

// DefaultWordList returns the compiled-in word list.
func DefaultWordList() *WordList {
	list, err := NewWordList(defaultWords)
	if err != nil {
		// defaultWords is a non-empty literal of plain letters.
		panic(err)
	}
	return list
}
