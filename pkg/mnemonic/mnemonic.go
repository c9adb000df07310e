// Package mnemonic recovers, validates and generates Hedera recovery phrases.
//
// Two encodings are supported. Standard phrases are 24 BIP-39 English words
// with a SHA-256 checksum. Legacy phrases are 22 words from the first-generation
// mobile wallet vocabulary, carried as a base-|vocabulary| number that decodes
// to 32 bytes of crc-masked entropy and a crc8 checksum byte.
//
// The format of a Mnemonic is fixed by its word count when it is built and
// every format-specific operation dispatches on it once.
package mnemonic

import (
	"fmt"
	"strings"

	"github.com/theekrystallee/hedera-mnemonic/pkg/crypto"
	"github.com/tyler-smith/go-bip39"
)

// Format identifies which encoding a phrase uses.
type Format uint8

const (
	FormatStandard Format = iota
	FormatLegacy
)

func (f Format) String() string {
	if f == FormatLegacy {
		return "legacy"
	}
	return "standard"
}

// Derivation indices passed to crypto.DeriveLegacyChildKey. Legacy phrases
// were derived at -1 by the mobile wallets, standard phrases imported into
// them at 0. Changing either selects different keys for existing phrases.
const (
	LegacyPhraseIndex   int64 = -1
	StandardPhraseIndex int64 = 0
)

// Mnemonic is an immutable recovery phrase.
type Mnemonic struct {
	words    []string
	format   Format
	standard *WordList
	legacy   *WordList
}

// Option configures a Mnemonic at construction.
type Option func(*Mnemonic)

// WithLegacyWordList sets the vocabulary used for legacy phrases.
func WithLegacyWordList(wl *WordList) Option {
	return func(m *Mnemonic) {
		m.legacy = wl
	}
}

// Generate creates a new random 24-word standard phrase.
func Generate(opts ...Option) (*Mnemonic, error) {
	entropy, err := bip39.NewEntropy(EntropyBits)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	return FromString(phrase, opts...), nil
}

// FromString splits text on whitespace. The phrase is not validated.
func FromString(text string, opts ...Option) *Mnemonic {
	return FromWords(strings.Fields(text), opts...)
}

// FromWords builds a phrase from words in order. The phrase is not validated.
func FromWords(words []string, opts ...Option) *Mnemonic {
	m := &Mnemonic{
		words:    append([]string(nil), words...),
		format:   FormatStandard,
		standard: standardWordList,
	}
	if len(words) == LegacyWordCount {
		m.format = FormatLegacy
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Words returns a copy of the phrase.
func (m *Mnemonic) Words() []string {
	return append([]string(nil), m.words...)
}

// Format returns the encoding selected by the word count.
func (m *Mnemonic) Format() Format {
	return m.format
}

// IsLegacy reports whether this is a 22-word legacy phrase.
func (m *Mnemonic) IsLegacy() bool {
	return m.format == FormatLegacy
}

// String joins the words with single spaces.
func (m *Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

// Validate checks the phrase against the rules of its format.
func (m *Mnemonic) Validate() ValidationResult {
	switch m.format {
	case FormatLegacy:
		return validateLegacy(m.words, m.legacy)
	default:
		return validateStandard(m.words, m.standard)
	}
}

// LegacyEntropy recovers the 32 bytes the legacy key derivation starts from:
// the decoded legacy entropy, or the entropy bits of a standard phrase.
func (m *Mnemonic) LegacyEntropy() ([]byte, error) {
	switch m.format {
	case FormatLegacy:
		return RecoverLegacyEntropy(m.words, m.legacy)
	default:
		return RecoverStandardEntropy(m.words, m.standard)
	}
}

// LegacyDerivationIndex returns the index ToLegacyPrivateKey derives at.
func (m *Mnemonic) LegacyDerivationIndex() int64 {
	if m.format == FormatLegacy {
		return LegacyPhraseIndex
	}
	return StandardPhraseIndex
}

// ToLegacyPrivateKey derives the Ed25519 key a legacy mobile wallet would
// have produced from this phrase.
func (m *Mnemonic) ToLegacyPrivateKey() (*crypto.PrivateKey, error) {
	entropy, err := m.LegacyEntropy()
	if err != nil {
		return nil, fmt.Errorf("recover entropy: %w", err)
	}
	keyData := crypto.DeriveLegacyChildKey(entropy, m.LegacyDerivationIndex())
	return crypto.PrivateKeyFromBytes(keyData)
}

// Seed derives the 64-byte BIP-39 seed of a standard phrase.
func (m *Mnemonic) Seed(passphrase string) ([]byte, error) {
	if m.format == FormatLegacy {
		return nil, fmt.Errorf("%w: legacy phrases have no BIP-39 seed", ErrContractViolation)
	}
	return bip39.NewSeed(m.String(), passphrase), nil
}

// ToPrivateKey derives the Ed25519 key at m/44'/3030'/0'/0' from the BIP-39
// seed of a standard phrase.
func (m *Mnemonic) ToPrivateKey(passphrase string) (*crypto.PrivateKey, error) {
	seed, err := m.Seed(passphrase)
	if err != nil {
		return nil, err
	}
	return crypto.PrivateKeyFromSeed(seed)
}

// ToStandardEd25519PrivateKey derives the Ed25519 key at
// m/44'/3030'/0'/0'/index'.
func (m *Mnemonic) ToStandardEd25519PrivateKey(passphrase string, index uint32) (*crypto.PrivateKey, error) {
	key, err := m.ToPrivateKey(passphrase)
	if err != nil {
		return nil, err
	}
	return key.Derive(index)
}

// ToStandardECDSASecp256k1PrivateKey derives the secp256k1 key at
// m/44'/3030'/0'/0/index.
func (m *Mnemonic) ToStandardECDSASecp256k1PrivateKey(passphrase string, index uint32) (*crypto.ECDSAPrivateKey, error) {
	seed, err := m.Seed(passphrase)
	if err != nil {
		return nil, err
	}
	return crypto.ECDSAPrivateKeyFromSeed(seed, index)
}
