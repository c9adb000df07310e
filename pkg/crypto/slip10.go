package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
)

// slip10Curve is the HMAC key SLIP-10 assigns to ed25519.
var slip10Curve = []byte("ed25519 seed")

// hardenedOffset marks an index as hardened. Ed25519 only supports hardened
// derivation.
const hardenedOffset = 0x80000000

// slip10Master returns the master key and chain code for seed.
func slip10Master(seed []byte) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, slip10Curve)
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// slip10Child derives the hardened child at index.
func slip10Child(key, chainCode []byte, index uint32) (childKey, childChainCode []byte) {
	data := make([]byte, 0, 1+len(key)+4)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index|hardenedOffset)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}
