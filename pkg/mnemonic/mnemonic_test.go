package mnemonic

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/theekrystallee/hedera-mnemonic/pkg/crypto"
)

func TestGenerate(t *testing.T) {
	m, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(m.Words()) != StandardWordCount {
		t.Errorf("word count = %d, want %d", len(m.Words()), StandardWordCount)
	}
	if m.IsLegacy() || m.Format() != FormatStandard {
		t.Error("generated phrase should be standard")
	}
	if got := m.Validate(); !got.OK() {
		t.Errorf("generated phrase: Status = %v", got.Status)
	}
}

func TestGenerate_Unique(t *testing.T) {
	m1, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	m2, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if m1.String() == m2.String() {
		t.Error("two generated phrases should not be identical")
	}
}

func TestFromString_RoundTrip(t *testing.T) {
	for i := 0; i < 20; i++ {
		m, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		again := FromString(m.String())
		if again.String() != m.String() {
			t.Errorf("String() = %q, want %q", again.String(), m.String())
		}
		if got := again.Validate(); !got.OK() {
			t.Errorf("round trip: Status = %v", got.Status)
		}
	}
}

func TestFromString_Whitespace(t *testing.T) {
	m := FromString("  alpha\tbravo \n charlie  ")
	if got := m.String(); got != "alpha bravo charlie" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormat_SelectedByWordCount(t *testing.T) {
	tests := []struct {
		count int
		want  Format
	}{
		{22, FormatLegacy},
		{24, FormatStandard},
		{12, FormatStandard},
		{21, FormatStandard},
		{23, FormatStandard},
	}
	for _, tt := range tests {
		m := FromWords(repeatWords("abandon", tt.count))
		if m.Format() != tt.want {
			t.Errorf("%d words: Format() = %v, want %v", tt.count, m.Format(), tt.want)
		}
	}
	if FormatLegacy.String() != "legacy" || FormatStandard.String() != "standard" {
		t.Error("unexpected Format names")
	}
}

func TestMnemonic_Immutable(t *testing.T) {
	words := strings.Fields(zeroPhrase)
	m := FromWords(words)

	words[0] = "zoo"
	if m.Words()[0] != "abandon" {
		t.Error("FromWords should copy its input")
	}

	out := m.Words()
	out[1] = "zoo"
	if m.Words()[1] != "abandon" {
		t.Error("Words() should return a copy")
	}
}

func TestToLegacyPrivateKey_Legacy(t *testing.T) {
	wl := testLegacyWordList(t)
	m := FromString(legacyCountingPhrase, WithLegacyWordList(wl))

	if got := m.Validate(); !got.OK() {
		t.Fatalf("Status = %v", got.Status)
	}
	if m.LegacyDerivationIndex() != -1 {
		t.Errorf("LegacyDerivationIndex() = %d, want -1", m.LegacyDerivationIndex())
	}

	key, err := m.ToLegacyPrivateKey()
	if err != nil {
		t.Fatalf("ToLegacyPrivateKey() error: %v", err)
	}
	if got := hex.EncodeToString(key.Bytes()); got != "da85e7e8a1e01237118fee713024f28bdd096626329302c3b20a00ab19b8a57a" {
		t.Errorf("key = %s", got)
	}

	want, err := crypto.PrivateKeyFromBytes(crypto.DeriveLegacyChildKey(countingEntropy(), -1))
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}
	if !bytes.Equal(key.PublicKey(), want.PublicKey()) {
		t.Error("legacy key should be derived at index -1")
	}
}

func TestToLegacyPrivateKey_Standard(t *testing.T) {
	m := FromString(zeroPhrase)
	if m.LegacyDerivationIndex() != 0 {
		t.Errorf("LegacyDerivationIndex() = %d, want 0", m.LegacyDerivationIndex())
	}

	key, err := m.ToLegacyPrivateKey()
	if err != nil {
		t.Fatalf("ToLegacyPrivateKey() error: %v", err)
	}
	if got := hex.EncodeToString(key.Bytes()); got != "0daa6c06adfa07030f36c9dc42114d7f49861f7d903b01b013be07a64f7a5f4e" {
		t.Errorf("key = %s", got)
	}
}

func TestToLegacyPrivateKey_Errors(t *testing.T) {
	if _, err := FromString(strings.Repeat("abandon ", 24)).ToLegacyPrivateKey(); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("bad standard checksum: err = %v, want ErrChecksumMismatch", err)
	}

	words := strings.Fields(legacyZeroPhrase)
	words[0] = "word0804"
	m := FromWords(words, WithLegacyWordList(testLegacyWordList(t)))
	if _, err := m.ToLegacyPrivateKey(); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("bad legacy checksum: err = %v, want ErrChecksumMismatch", err)
	}

	if _, err := FromString(legacyZeroPhrase).ToLegacyPrivateKey(); !errors.Is(err, ErrNoLegacyWordList) {
		t.Errorf("no legacy word list: err = %v, want ErrNoLegacyWordList", err)
	}
}

func TestToPrivateKey(t *testing.T) {
	m := FromString(zeroPhrase)

	key, err := m.ToPrivateKey("")
	if err != nil {
		t.Fatalf("ToPrivateKey() error: %v", err)
	}
	if got := hex.EncodeToString(key.Bytes()); got != "5bdc8d4c77debdc53fd1f2e2a3f89f1a02056007a2a72aad87ba58d871deb904" {
		t.Errorf("m/44'/3030'/0'/0' key = %s", got)
	}

	child, err := m.ToStandardEd25519PrivateKey("", 0)
	if err != nil {
		t.Fatalf("ToStandardEd25519PrivateKey() error: %v", err)
	}
	if got := hex.EncodeToString(child.Bytes()); got != "9f575af0ded30d60f72fe147bb61e8bc359e32d337c65d78b5cd9ab1c34ca5c9" {
		t.Errorf("m/44'/3030'/0'/0'/0' key = %s", got)
	}

	withPass, err := m.ToPrivateKey("hedera")
	if err != nil {
		t.Fatalf("ToPrivateKey() error: %v", err)
	}
	if bytes.Equal(withPass.Bytes(), key.Bytes()) {
		t.Error("passphrase should change the derived key")
	}
}

func TestToStandardECDSASecp256k1PrivateKey(t *testing.T) {
	m := FromString(zeroPhrase)

	k0, err := m.ToStandardECDSASecp256k1PrivateKey("", 0)
	if err != nil {
		t.Fatalf("ToStandardECDSASecp256k1PrivateKey() error: %v", err)
	}
	seed, err := m.Seed("")
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	want, err := crypto.ECDSAPrivateKeyFromSeed(seed, 0)
	if err != nil {
		t.Fatalf("ECDSAPrivateKeyFromSeed() error: %v", err)
	}
	if !bytes.Equal(k0.Bytes(), want.Bytes()) {
		t.Error("ECDSA key should come from the BIP-39 seed")
	}
}

func TestStandardOnlyOperations_RejectLegacy(t *testing.T) {
	m := FromString(legacyZeroPhrase, WithLegacyWordList(testLegacyWordList(t)))

	if _, err := m.ToPrivateKey(""); !errors.Is(err, ErrContractViolation) {
		t.Errorf("ToPrivateKey: err = %v, want ErrContractViolation", err)
	}
	if _, err := m.ToStandardEd25519PrivateKey("", 0); !errors.Is(err, ErrContractViolation) {
		t.Errorf("ToStandardEd25519PrivateKey: err = %v, want ErrContractViolation", err)
	}
	if _, err := m.ToStandardECDSASecp256k1PrivateKey("", 0); !errors.Is(err, ErrContractViolation) {
		t.Errorf("ToStandardECDSASecp256k1PrivateKey: err = %v, want ErrContractViolation", err)
	}
	if _, err := m.Seed(""); !errors.Is(err, ErrContractViolation) {
		t.Errorf("Seed: err = %v, want ErrContractViolation", err)
	}
}

func TestMnemonic_ConcurrentUse(t *testing.T) {
	wl := testLegacyWordList(t)
	legacy := FromString(legacyCountingPhrase, WithLegacyWordList(wl))
	standard := FromString(zeroPhrase)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !legacy.Validate().OK() || !standard.Validate().OK() {
				errs <- errors.New("validation failed")
				return
			}
			if _, err := legacy.ToLegacyPrivateKey(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
