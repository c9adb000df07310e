package mnemonic

import (
	"fmt"
	"strings"
	"testing"
)

// testLegacyWordList returns a 4096-word stand-in for the legacy vocabulary:
// word0000 ... word4095.
func testLegacyWordList(t *testing.T) *WordList {
	t.Helper()
	words := make([]string, 4096)
	for i := range words {
		words[i] = fmt.Sprintf("word%04d", i)
	}
	wl, err := NewWordList(words)
	if err != nil {
		t.Fatalf("NewWordList() error: %v", err)
	}
	return wl
}

func repeatWords(word string, n int) []string {
	return strings.Fields(strings.Repeat(word+" ", n))
}

const (
	// BIP-39 phrases for 32 zero bytes and 32 0xff bytes.
	zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	onesPhrase = "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote"

	// Legacy phrases over testLegacyWordList for 32 zero bytes and for 0x00..0x1f.
	legacyZeroPhrase     = "word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562 word0803 word0562"
	legacyCountingPhrase = "word2971 word2235 word2987 word3516 word3067 word3761 word2827 word0946 word2907 word1207 word2922 word2472 word2746 word2733 word2762 word4014 word2586 word0163 word2602 word1444 word2682 word1721"
)

func countingEntropy() []byte {
	b := make([]byte, EntropySize)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
