package mnemonic

import (
	"fmt"
	"math"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordList is an immutable ordered vocabulary. A word's position is its index.
// Lookups are case-insensitive. A nil *WordList behaves as an empty vocabulary.
type WordList struct {
	words []string
	index map[string]int
}

// NewWordList builds a vocabulary from words in index order.
func NewWordList(words []string) (*WordList, error) {
	if len(words) < 2 {
		return nil, fmt.Errorf("word list needs at least 2 words, got %d", len(words))
	}
	wl := &WordList{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, w := range words {
		key := strings.ToLower(w)
		if key == "" {
			return nil, fmt.Errorf("word list entry %d is empty", i)
		}
		if prev, dup := wl.index[key]; dup {
			return nil, fmt.Errorf("word list entry %d (%q) duplicates entry %d", i, w, prev)
		}
		wl.words[i] = w
		wl.index[key] = i
	}
	return wl, nil
}

var standardWordList = func() *WordList {
	wl, err := NewWordList(wordlists.English)
	if err != nil {
		panic(fmt.Sprintf("mnemonic: bip39 english word list: %v", err))
	}
	return wl
}()

// StandardWordList returns the BIP-39 English vocabulary (2048 words).
func StandardWordList() *WordList {
	return standardWordList
}

// Len returns the number of words.
func (wl *WordList) Len() int {
	if wl == nil {
		return 0
	}
	return len(wl.words)
}

// Word returns the word at index i.
func (wl *WordList) Word(i int) string {
	return wl.words[i]
}

// Index returns the position of word, ignoring case.
func (wl *WordList) Index(word string) (int, bool) {
	if wl == nil {
		return 0, false
	}
	i, ok := wl.index[strings.ToLower(word)]
	return i, ok
}

// Contains reports whether word is part of the vocabulary.
func (wl *WordList) Contains(word string) bool {
	_, ok := wl.Index(word)
	return ok
}

// BitsPerWord returns log2 of the vocabulary size.
func (wl *WordList) BitsPerWord() float64 {
	return math.Log2(float64(wl.Len()))
}

// LegacyWordCount returns how many words a legacy phrase over this
// vocabulary carries: enough to hold 256 bits of entropy plus the 8-bit crc.
func (wl *WordList) LegacyWordCount() int {
	return int(math.Ceil(float64(EntropyBits+legacyChecksumBits) / wl.BitsPerWord()))
}

// indices maps words to their positions, stopping at the first unknown word.
func (wl *WordList) indices(words []string) ([]int, error) {
	out := make([]int, len(words))
	for i, w := range words {
		idx, ok := wl.Index(w)
		if !ok {
			return nil, &WordError{Word: w, Index: i}
		}
		out[i] = idx
	}
	return out, nil
}

// unknown returns the positions of every word missing from the vocabulary.
func (wl *WordList) unknown(words []string) []int {
	var out []int
	for i, w := range words {
		if !wl.Contains(w) {
			out = append(out, i)
		}
	}
	return out
}
