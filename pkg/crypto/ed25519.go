package crypto

import (
	"crypto/ed25519"
	"fmt"
)

// HederaCoinType is the SLIP-44 coin type registered for Hedera.
const HederaCoinType = 3030

// ed25519RootPath is m/44'/3030'/0'/0'. Every index is hardened.
var ed25519RootPath = []uint32{44, HederaCoinType, 0, 0}

// PrivateKey is an Ed25519 private key. Keys derived from a seed also carry
// the SLIP-10 chain code needed for further derivation.
type PrivateKey struct {
	key       ed25519.PrivateKey
	chainCode []byte
}

// PrivateKeyFromBytes builds a key from a 32-byte seed or a 64-byte
// seed||public key encoding.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	switch len(b) {
	case ed25519.SeedSize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(b)}, nil
	case ed25519.PrivateKeySize:
		key := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
		if !key.Public().(ed25519.PublicKey).Equal(ed25519.PublicKey(b[ed25519.SeedSize:])) {
			return nil, fmt.Errorf("public key half does not match private key")
		}
		return &PrivateKey{key: key}, nil
	default:
		return nil, fmt.Errorf("private key must be %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(b))
	}
}

// PrivateKeyFromSeed derives the key at m/44'/3030'/0'/0' from a BIP-39 seed.
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, fmt.Errorf("seed must be 16 to 64 bytes, got %d", len(seed))
	}
	key, chainCode := slip10Master(seed)
	for _, idx := range ed25519RootPath {
		key, chainCode = slip10Child(key, chainCode, idx)
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(key), chainCode: chainCode}, nil
}

// Derive returns the hardened child at index. Only keys created from a seed
// can derive.
func (k *PrivateKey) Derive(index uint32) (*PrivateKey, error) {
	if k.chainCode == nil {
		return nil, fmt.Errorf("key has no chain code and cannot derive children")
	}
	key, chainCode := slip10Child(k.key.Seed(), k.chainCode, index)
	return &PrivateKey{key: ed25519.NewKeyFromSeed(key), chainCode: chainCode}, nil
}

// Bytes returns the 32-byte private key seed.
func (k *PrivateKey) Bytes() []byte {
	return k.key.Seed()
}

// PublicKey returns the 32-byte public key.
func (k *PrivateKey) PublicKey() []byte {
	return append([]byte(nil), k.key.Public().(ed25519.PublicKey)...)
}

// ChainCode returns the SLIP-10 chain code, or nil for keys built from bytes.
func (k *PrivateKey) ChainCode() []byte {
	if k.chainCode == nil {
		return nil
	}
	return append([]byte(nil), k.chainCode...)
}

// Fingerprint returns the fingerprint of the public key.
func (k *PrivateKey) Fingerprint() Fingerprint {
	return FingerprintOf(k.PublicKey())
}

// Sign signs message with Ed25519.
func (k *PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(k.key, message)
}

// Zero overwrites the key material.
func (k *PrivateKey) Zero() {
	for i := range k.key {
		k.key[i] = 0
	}
	for i := range k.chainCode {
		k.chainCode[i] = 0
	}
}

// Verify checks an Ed25519 signature. Returns false on malformed input.
func Verify(publicKey, message, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(publicKey, message, signature)
}
