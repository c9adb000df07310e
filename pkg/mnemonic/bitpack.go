package mnemonic

import "fmt"

// standardBitsPerWord is the width of one BIP-39 word index (2048 = 2^11).
const standardBitsPerWord = 11

// packBits writes each index high bit first as exactly width bits, in order.
func packBits(indices []int, width int) []bool {
	bits := make([]bool, 0, len(indices)*width)
	for _, idx := range indices {
		for i := width - 1; i >= 0; i-- {
			bits = append(bits, (idx>>uint(i))&1 == 1)
		}
	}
	return bits
}

// unpackBits is the inverse of packBits. len(bits) must be a multiple of width.
func unpackBits(bits []bool, width int) []int {
	if len(bits)%width != 0 {
		panic(fmt.Sprintf("mnemonic: %d bits is not a multiple of %d", len(bits), width))
	}
	out := make([]int, 0, len(bits)/width)
	for i := 0; i < len(bits); i += width {
		idx := 0
		for _, b := range bits[i : i+width] {
			idx <<= 1
			if b {
				idx |= 1
			}
		}
		out = append(out, idx)
	}
	return out
}

// bitsToBytes packs a bit sequence into bytes, most significant bit first.
func bitsToBytes(bits []bool) []byte {
	if len(bits)%8 != 0 {
		panic(fmt.Sprintf("mnemonic: %d bits is not a whole number of bytes", len(bits)))
	}
	out := make([]byte, len(bits)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}

// bytesToBits expands data into bits, most significant bit first.
func bytesToBits(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}
	return bits
}
