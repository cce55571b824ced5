package utils

import (
	"math/bits"
)

// Word level helpers for 64 bit masks. Everything here is expected to inline.

// LowestSetBit returns the position of the least significant set bit. Returns 64 for a zero word.
func LowestSetBit(word uint64) int {
	return bits.TrailingZeros64(word)
}

// HighestSetBit returns the position of the most significant set bit. Returns -1 for a zero word.
func HighestSetBit(word uint64) int {
	return bits.Len64(word) - 1
}

// ClearBit returns the word with bit pos cleared.
func ClearBit(word uint64, pos int) uint64 {
	return word &^ (1 << uint(pos))
}

// SetBit returns the word with bit pos set.
func SetBit(word uint64, pos int) uint64 {
	return word | (1 << uint(pos))
}

// Log2Floor is floor(log2(x)) for x > 0, and -1 for x <= 0.
func Log2Floor(x int) int {
	if x <= 0 {
		return -1
	}
	return bits.Len64(uint64(x)) - 1
}
