package params

import (
	"encoding/binary"
	"fmt"

	"SIS-Accumulator/field"
	"SIS-Accumulator/hasher"
)

// MaxNonces bounds the rejection sampling loop of a single matrix cell.
const MaxNonces = 2048

// CellSeed returns H(personalization || le32(row) || le32(column)).
func CellSeed(h hasher.Hasher, personalization []byte, row, column uint32) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], row)
	binary.LittleEndian.PutUint32(buf[4:], column)
	st := h.New(personalization)
	st.Write(buf[:])
	return st.Sum(nil)
}

// SampleElement rejection-samples a field element from seed: the first
// H(seed || le64(nonce)) whose little-endian value is below the modulus.
func SampleElement[E any](f field.Field[E], h hasher.Hasher, seed []byte) (E, error) {
	var nonceBuf [8]byte
	for nonce := uint64(0); nonce < MaxNonces; nonce++ {
		binary.LittleEndian.PutUint64(nonceBuf[:], nonce)
		st := h.New(seed)
		st.Write(nonceBuf[:])
		if e, ok := f.SetCanonicalLE(st.Sum(nil)); ok {
			return e, nil
		}
	}
	var zero E
	return zero, fmt.Errorf("%w after %d nonces", ErrSamplingExhausted, MaxNonces)
}

// Cell derives matrix entry (row, column) from scratch.
func Cell[E any](f field.Field[E], h hasher.Hasher, personalization []byte, row, column uint32) (E, error) {
	e, err := SampleElement(f, h, CellSeed(h, personalization, row, column))
	if err != nil {
		return e, fmt.Errorf("cell (%d,%d): %w", row, column, err)
	}
	return e, nil
}
