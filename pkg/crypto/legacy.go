package crypto

import (
	"crypto/sha512"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"
)

// Legacy child derivation parameters used by the first-generation mobile wallets.
const (
	legacyRounds  = 2048
	legacyKeySize = 32

	// legacyMaxIndex has its own encoding in the mobile wallets.
	legacyMaxIndex int64 = 0xffffffffff
)

var legacySalt = []byte{0xff}

// DeriveLegacyChildKey derives 32 bytes of Ed25519 key material from recovered
// entropy and an index using PBKDF2-HMAC-SHA512 over entropy||index.
//
// The index is encoded in 8 bytes: the high word is all ones for negative
// indices and zero otherwise, the low word is the index as a big-endian
// int32. 0xffffffffff encodes as 00 00 00 ff ff ff ff ff.
func DeriveLegacyChildKey(entropy []byte, index int64) []byte {
	password := make([]byte, len(entropy)+8)
	copy(password, entropy)
	encodeLegacyIndex(password[len(entropy):], index)
	return pbkdf2.Key(password, legacySalt, legacyRounds, legacyKeySize, sha512.New)
}

func encodeLegacyIndex(dst []byte, index int64) {
	if index == legacyMaxIndex {
		binary.BigEndian.PutUint32(dst[:4], 0xff)
		binary.BigEndian.PutUint32(dst[4:], 0xffffffff)
		return
	}
	var high uint32
	if index < 0 {
		high = 0xffffffff
	}
	binary.BigEndian.PutUint32(dst[:4], high)
	binary.BigEndian.PutUint32(dst[4:], uint32(int32(index)))
}
