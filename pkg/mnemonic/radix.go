package mnemonic

import "math/big"

// convertRadix re-expresses the number whose base-fromRadix digits are given
// (most significant first) as exactly outputLength base-toRadix digits.
//
// Values that need more than outputLength digits lose their high digits. The
// mobile wallet encoder behaves the same way, so this is not guarded.
func convertRadix(digits []int, fromRadix, toRadix, outputLength int) []int {
	value := new(big.Int)
	from := big.NewInt(int64(fromRadix))
	d := new(big.Int)
	for _, digit := range digits {
		value.Mul(value, from)
		value.Add(value, d.SetInt64(int64(digit)))
	}

	to := big.NewInt(int64(toRadix))
	rem := new(big.Int)
	out := make([]int, outputLength)
	for i := outputLength - 1; i >= 0; i-- {
		value.DivMod(value, to, rem)
		out[i] = int(rem.Int64())
	}
	return out
}

// digitsToBytes narrows base-256 digits to bytes.
func digitsToBytes(digits []int) []byte {
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = byte(d)
	}
	return out
}

// bytesToDigits widens bytes to base-256 digits.
func bytesToDigits(data []byte) []int {
	out := make([]int, len(data))
	for i, b := range data {
		out[i] = int(b)
	}
	return out
}
