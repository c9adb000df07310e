// Package crypto provides the key material operations behind Hedera recovery
// phrases: Ed25519 and secp256k1 key handles, SLIP-10 and BIP-32 derivation,
// the legacy mobile wallet child derivation, and key fingerprints.
package crypto

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// FingerprintSize is the length of a key fingerprint in bytes.
const FingerprintSize = 20

// Fingerprint identifies a public key without revealing it.
type Fingerprint [FingerprintSize]byte

// FingerprintOf returns the first 20 bytes of BLAKE3(publicKey).
func FingerprintOf(publicKey []byte) Fingerprint {
	h := blake3.Sum256(publicKey)
	var fp Fingerprint
	copy(fp[:], h[:FingerprintSize])
	return fp
}

// String returns the fingerprint as lower-case hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// IsZero reports whether the fingerprint is unset.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}
