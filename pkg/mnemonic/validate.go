package mnemonic

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Status is the outcome of validating a phrase.
type Status int

const (
	StatusOK Status = iota
	StatusBadLength
	StatusUnknownWords
	StatusUnknownLegacyWords
	StatusChecksumMismatch
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBadLength:
		return "bad length"
	case StatusUnknownWords:
		return "unknown words"
	case StatusUnknownLegacyWords:
		return "unknown legacy words"
	case StatusChecksumMismatch:
		return "checksum mismatch"
	default:
		return "unknown status"
	}
}

// ValidationResult is the structured outcome of Mnemonic.Validate.
// UnknownIndices lists every word position that failed lookup and is only
// set for StatusUnknownWords and StatusUnknownLegacyWords.
type ValidationResult struct {
	Status         Status
	UnknownIndices []int
}

// OK reports whether the phrase passed every rule.
func (r ValidationResult) OK() bool {
	return r.Status == StatusOK
}

// validateStandard runs the 24-word rule chain. The first failing rule wins.
func validateStandard(words []string, wl *WordList) ValidationResult {
	if len(words) != StandardWordCount {
		return ValidationResult{Status: StatusBadLength}
	}
	if unknown := wl.unknown(words); len(unknown) > 0 {
		return ValidationResult{Status: StatusUnknownWords, UnknownIndices: unknown}
	}
	// go-bip39 matches words exactly against its lower-case English list.
	if !bip39.IsMnemonicValid(strings.ToLower(strings.Join(words, " "))) {
		return ValidationResult{Status: StatusChecksumMismatch}
	}
	return ValidationResult{Status: StatusOK}
}

// validateLegacy runs the 22-word rule chain. Any recovery failure after the
// word lookup, length included, is reported as a checksum mismatch.
func validateLegacy(words []string, wl *WordList) ValidationResult {
	if unknown := wl.unknown(words); len(unknown) > 0 {
		return ValidationResult{Status: StatusUnknownLegacyWords, UnknownIndices: unknown}
	}
	if _, err := RecoverLegacyEntropy(words, wl); err != nil {
		return ValidationResult{Status: StatusChecksumMismatch}
	}
	return ValidationResult{Status: StatusOK}
}
