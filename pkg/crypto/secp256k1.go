package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/tyler-smith/go-bip32"
)

// ECDSAPrivateKey wraps a secp256k1 private key for ECDSA signing.
type ECDSAPrivateKey struct {
	key *secp256k1.PrivateKey
}

// ECDSAPrivateKeyFromBytes creates a key from a 32-byte secret.
func ECDSAPrivateKeyFromBytes(b []byte) (*ECDSAPrivateKey, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(b))
	}
	return &ECDSAPrivateKey{key: secp256k1.PrivKeyFromBytes(b)}, nil
}

// ECDSAPrivateKeyFromSeed derives the key at m/44'/3030'/0'/0/index from a
// BIP-39 seed.
func ECDSAPrivateKeyFromSeed(seed []byte, index uint32) (*ECDSAPrivateKey, error) {
	master, err := NewMasterHDKey(seed)
	if err != nil {
		return nil, err
	}
	child, err := master.DerivePath(
		bip32.FirstHardenedChild+44,
		bip32.FirstHardenedChild+HederaCoinType,
		bip32.FirstHardenedChild,
		0,
		index,
	)
	if err != nil {
		return nil, err
	}
	return child.ECDSAPrivateKey()
}

// Bytes returns the 32-byte private key scalar.
func (k *ECDSAPrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// PublicKey returns the compressed 33-byte public key.
func (k *ECDSAPrivateKey) PublicKey() []byte {
	return k.key.PubKey().SerializeCompressed()
}

// Fingerprint returns the fingerprint of the compressed public key.
func (k *ECDSAPrivateKey) Fingerprint() Fingerprint {
	return FingerprintOf(k.PublicKey())
}

// Sign produces a DER-encoded ECDSA signature over a 32-byte hash.
func (k *ECDSAPrivateKey) Sign(hash []byte) ([]byte, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("hash must be 32 bytes, got %d", len(hash))
	}
	return ecdsa.Sign(k.key, hash).Serialize(), nil
}

// Zero securely zeroes the private key memory.
func (k *ECDSAPrivateKey) Zero() {
	k.key.Zero()
}

// VerifyECDSA checks a DER signature against a 32-byte hash and a compressed
// public key. Returns false on any error.
func VerifyECDSA(hash, signature, publicKey []byte) bool {
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}
	return sig.Verify(hash, pub)
}
