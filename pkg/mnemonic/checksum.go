package mnemonic

import (
	"crypto/sha256"
	"fmt"
)

// Legacy crc parameters. The register shifts right and is reflected, so the
// taps are 0xB2 (polynomial 0x4D).
const (
	legacyCRCInit  = 0xff
	legacyCRCTaps  = 0xb2
	legacyCRCFinal = 0xff

	legacyChecksumBits = 8
)

// crc8 is the checksum the legacy mobile wallets append to their entropy.
func crc8(data []byte) byte {
	crc := byte(legacyCRCInit)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			shifted := crc & 1
			crc >>= 1
			if shifted == 1 {
				crc ^= legacyCRCTaps
			}
		}
	}
	return crc ^ legacyCRCFinal
}

// verifyLegacyChecksum unmasks legacy data (entropy XOR crc, then crc) and
// checks the crc against the unmasked entropy.
func verifyLegacyChecksum(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: legacy data is %d bytes", ErrBadLength, len(data))
	}
	stored := data[len(data)-1]
	entropy := make([]byte, len(data)-1)
	for i := range entropy {
		entropy[i] = data[i] ^ stored
	}
	if computed := crc8(entropy); computed != stored {
		return nil, fmt.Errorf("%w: legacy crc is %#02x, computed %#02x", ErrChecksumMismatch, stored, computed)
	}
	return entropy, nil
}

// verifyStandardChecksum splits packed word bits into entropy and checksum
// (one checksum bit per 32 entropy bits) and checks the checksum against the
// leading bits of SHA-256 over the entropy.
func verifyStandardChecksum(bits []bool) ([]byte, error) {
	checksumBits := len(bits) / 33
	entropyBits := len(bits) - checksumBits
	if checksumBits == 0 || entropyBits%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits cannot hold entropy and checksum", ErrBadLength, len(bits))
	}

	entropy := bitsToBytes(bits[:entropyBits])
	digest := sha256.Sum256(entropy)
	want := bytesToBits(digest[:])[:checksumBits]
	got := bits[entropyBits:]
	for i := range want {
		if want[i] != got[i] {
			return nil, fmt.Errorf("%w: standard checksum bits differ at bit %d", ErrChecksumMismatch, i)
		}
	}
	return entropy, nil
}
