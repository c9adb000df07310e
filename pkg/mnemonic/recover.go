package mnemonic

import (
	"fmt"
)

// Entropy and phrase sizes shared by both formats.
const (
	// EntropySize is the length of recovered entropy in bytes.
	EntropySize = 32
	// EntropyBits is EntropySize in bits.
	EntropyBits = EntropySize * 8

	// StandardWordCount is the length of a standard (BIP-39) phrase.
	StandardWordCount = 24
	// LegacyWordCount is the length of a legacy phrase over the 4096-word
	// legacy vocabulary.
	LegacyWordCount = 22

	// legacyDataSize is masked entropy plus the crc byte.
	legacyDataSize = EntropySize + 1
)

// RecoverLegacyEntropy decodes a legacy phrase back into its 32 bytes of
// entropy. The phrase length must match what the vocabulary size implies.
func RecoverLegacyEntropy(words []string, wl *WordList) ([]byte, error) {
	if wl.Len() == 0 {
		return nil, ErrNoLegacyWordList
	}
	if want := wl.LegacyWordCount(); len(words) != want {
		return nil, fmt.Errorf("%w: legacy phrase has %d words, a %d-word vocabulary needs %d",
			ErrBadLength, len(words), wl.Len(), want)
	}

	indices, err := wl.indices(words)
	if err != nil {
		return nil, err
	}

	data := digitsToBytes(convertRadix(indices, wl.Len(), 256, legacyDataSize))
	return verifyLegacyChecksum(data)
}

// RecoverStandardEntropy decodes a 24-word standard phrase into the 32 bytes
// of entropy the legacy key derivation expects.
func RecoverStandardEntropy(words []string, wl *WordList) ([]byte, error) {
	indices, err := wl.indices(words)
	if err != nil {
		return nil, err
	}
	if len(indices) != StandardWordCount {
		return nil, fmt.Errorf("%w: standard phrase has %d words, want %d",
			ErrBadLength, len(indices), StandardWordCount)
	}
	return verifyStandardChecksum(packBits(indices, standardBitsPerWord))
}

// EncodeLegacy turns 32 bytes of entropy into a legacy phrase over wl. It is
// the inverse of RecoverLegacyEntropy.
func EncodeLegacy(entropy []byte, wl *WordList) ([]string, error) {
	if wl.Len() == 0 {
		return nil, ErrNoLegacyWordList
	}
	if len(entropy) != EntropySize {
		return nil, fmt.Errorf("%w: entropy is %d bytes, want %d", ErrBadLength, len(entropy), EntropySize)
	}

	crc := crc8(entropy)
	data := make([]byte, legacyDataSize)
	for i, b := range entropy {
		data[i] = b ^ crc
	}
	data[EntropySize] = crc

	return legacyWords(data, wl), nil
}

// legacyWords re-encodes masked legacy data as words without touching the crc.
func legacyWords(data []byte, wl *WordList) []string {
	digits := convertRadix(bytesToDigits(data), 256, wl.Len(), wl.LegacyWordCount())
	words := make([]string, len(digits))
	for i, d := range digits {
		words[i] = wl.Word(d)
	}
	return words
}
