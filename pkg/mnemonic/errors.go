package mnemonic

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by entropy recovery and key derivation.
var (
	// ErrBadLength means the phrase does not have the word count its format requires.
	ErrBadLength = errors.New("mnemonic has wrong number of words")

	// ErrWordNotFound means a word is not part of the vocabulary it was looked up in.
	ErrWordNotFound = errors.New("word not found in word list")

	// ErrChecksumMismatch means the checksum embedded in the phrase does not match its entropy.
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

	// ErrContractViolation means a format-specific operation was called on the other format.
	ErrContractViolation = errors.New("operation not supported for this mnemonic format")

	// ErrNoLegacyWordList means a legacy phrase was processed without a legacy vocabulary.
	ErrNoLegacyWordList = errors.New("legacy word list not configured")
)

// WordError reports the first word of a phrase that failed lookup.
type WordError struct {
	Word  string
	Index int
}

func (e *WordError) Error() string {
	return fmt.Sprintf("word %d (%q): %v", e.Index, e.Word, ErrWordNotFound)
}

// Unwrap lets errors.Is match ErrWordNotFound.
func (e *WordError) Unwrap() error {
	return ErrWordNotFound
}
