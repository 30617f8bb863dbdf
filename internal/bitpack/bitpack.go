// Package bitpack packs fixed-length bit vectors into 64-bit words.
//
// Bit i of the vector lands in word i/64 at position 63 - i%64 (most
// significant bit first), so packing is injective for a fixed length and
// the words compare in the same order as the vectors read left to right.
package bitpack

import "encoding/binary"

// Words returns the number of words needed for n bits.
func Words(n int) int {
	return (n + 63) / 64
}

// Pack packs v into words; padding bits of the last word are zero.
func Pack(v []bool) []uint64 {
	out := make([]uint64, Words(len(v)))
	for i, b := range v {
		if b {
			out[i>>6] |= 1 << (63 - uint(i&63))
		}
	}
	return out
}

// Unpack expands the first n bits of words.
func Unpack(words []uint64, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = words[i>>6]>>(63-uint(i&63))&1 == 1
	}
	return out
}

// Bit reports bit i of packed words.
func Bit(words []uint64, i int) bool {
	return words[i>>6]>>(63-uint(i&63))&1 == 1
}

// Key encodes packed words as a string usable as a map key.
func Key(words []uint64) string {
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint64(buf[8*i:], w)
	}
	return string(buf)
}

// Weight counts the set bits of v.
func Weight(v []bool) int {
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}
	return n
}
