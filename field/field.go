// Package field defines the prime-field capability the accumulator is generic over.
//
// Elements are handled by value. Implementations must be safe for concurrent
// use since a single Field is shared by every parameter set and accumulator
// built on it.
package field

// Field exposes arithmetic over a prime field whose elements have type E.
//
// Cmp and BitLen operate on the canonical unsigned integer representation of
// an element (the value in [0, q)), never on any internal encoding such as
// Montgomery form.
type Field[E any] interface {
	// Name identifies the field in descriptors and logs (e.g. "bn254").
	Name() string

	Zero() E
	One() E
	FromUint64(v uint64) E

	Add(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	Square(a E) E

	Equal(a, b E) bool
	IsZero(a E) bool
	// Cmp returns -1, 0 or +1 comparing the canonical integers of a and b.
	Cmp(a, b E) int
	// BitLen is the number of bits of the canonical integer of a.
	BitLen(a E) int

	// Capacity is the number of bits that always fit below the modulus,
	// i.e. bitlen(q) - 1.
	Capacity() int
	// ReprBytes is the width of the little-endian representation.
	ReprBytes() int
	// SetCanonicalLE decodes the first ReprBytes bytes of b as a
	// little-endian integer. ok is false when the integer is not below the
	// modulus or b is too short.
	SetCanonicalLE(b []byte) (e E, ok bool)
	// Bytes returns the canonical little-endian encoding of a (ReprBytes long).
	Bytes(a E) []byte
	String(a E) string
}

// Sum adds all elements of xs.
func Sum[E any](f Field[E], xs []E) E {
	acc := f.Zero()
	for _, x := range xs {
		acc = f.Add(acc, x)
	}
	return acc
}

// AddVec returns a + b elementwise. It panics when the lengths differ.
func AddVec[E any](f Field[E], a, b []E) []E {
	if len(a) != len(b) {
		panic("field: AddVec length mismatch")
	}
	out := make([]E, len(a))
	for i := range a {
		out[i] = f.Add(a[i], b[i])
	}
	return out
}

// ZeroVec returns a vector of n zero elements.
func ZeroVec[E any](f Field[E], n int) []E {
	out := make([]E, n)
	z := f.Zero()
	for i := range out {
		out[i] = z
	}
	return out
}

// Uint64 returns the canonical integer of a when it fits in 64 bits.
func Uint64[E any](f Field[E], a E) (uint64, bool) {
	if f.BitLen(a) > 64 {
		return 0, false
	}
	b := f.Bytes(a)
	var v uint64
	for i := min(len(b), 8) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v, true
}
