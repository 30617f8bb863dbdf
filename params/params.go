// Package params derives the public parameter set of the binary SIS
// accumulator: an N×M matrix over a prime field, pinned to a personalization
// string through iterated hashing, and the squared norm thresholds that make
// membership proofs binding.
//
// Layout: the matrix has N rows (digest coordinates) and M columns (input
// bits) and is stored row-major, entry (row, column) at index row*M + column.
// Every reader goes through At.
package params

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"

	"SIS-Accumulator/field"
	"SIS-Accumulator/hasher"
)

var log = logger.GetOrCreate("params")

// Set is an immutable parameter set. It may be shared read-only by any number
// of accumulators.
type Set[E any] struct {
	M        uint32
	N        uint32
	Capacity int

	field           field.Field[E]
	hasher          hasher.Hasher
	personalization []byte
	matrix          []E
	thresholds      Thresholds[E]
}

// New generates the parameter set for (personalization, m, n, capacity).
// Any error is a configuration error: the tuple cannot be used as is.
func New[E any](f field.Field[E], h hasher.Hasher, personalization []byte, m, n uint32, capacity int) (*Set[E], error) {
	if f == nil || h == nil {
		return nil, fmt.Errorf("%w: nil field or hasher", ErrInvalidParameters)
	}
	if m == 0 || n == 0 {
		return nil, fmt.Errorf("%w: m=%d n=%d must be positive", ErrInvalidParameters, m, n)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity=%d must be positive", ErrInvalidParameters, capacity)
	}
	if h.Size() < f.ReprBytes() {
		return nil, fmt.Errorf("%w: %s gives %d bytes, %s needs %d",
			ErrDigestTooShort, h.Name(), h.Size(), f.Name(), f.ReprBytes())
	}
	// bounds first: they are cheap and reject the tuple before the matrix is built
	th, err := deriveThresholds(f, m, capacity)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log.Debug("generating parameter matrix", "field", f.Name(), "hasher", h.Name(),
		"m", m, "n", n, "capacity", capacity)

	matrix := make([]E, int(m)*int(n))
	for row := uint32(0); row < n; row++ {
		for column := uint32(0); column < m; column++ {
			e, err := Cell(f, h, personalization, row, column)
			if err != nil {
				return nil, err
			}
			matrix[int(row)*int(m)+int(column)] = e
		}
		log.Trace("matrix row done", "row", row)
	}

	log.Debug("parameter matrix generated", "cells", len(matrix), "elapsed", time.Since(start))

	return &Set[E]{
		M:               m,
		N:               n,
		Capacity:        capacity,
		field:           f,
		hasher:          h,
		personalization: append([]byte(nil), personalization...),
		matrix:          matrix,
		thresholds:      th,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[E any](f field.Field[E], h hasher.Hasher, personalization []byte, m, n uint32, capacity int) *Set[E] {
	s, err := New(f, h, personalization, m, n, capacity)
	if err != nil {
		panic(fmt.Sprintf("params: %v", err))
	}
	return s
}

// Field returns the field the matrix lives in.
func (s *Set[E]) Field() field.Field[E] { return s.field }

// Hasher returns the construction the matrix was derived with.
func (s *Set[E]) Hasher() hasher.Hasher { return s.hasher }

// Personalization returns a copy of the personalization string.
func (s *Set[E]) Personalization() []byte {
	return append([]byte(nil), s.personalization...)
}

// At returns matrix entry (row, column), row < N, column < M.
func (s *Set[E]) At(row, column int) E {
	return s.matrix[row*int(s.M)+column]
}

// Row returns the M entries of one row. The slice aliases the matrix and
// must not be modified.
func (s *Set[E]) Row(row int) []E {
	m := int(s.M)
	return s.matrix[row*m : (row+1)*m : (row+1)*m]
}

// Matrix returns a copy of the row-major matrix.
func (s *Set[E]) Matrix() []E {
	return append([]E(nil), s.matrix...)
}

// Thresholds returns the squared norm bounds.
func (s *Set[E]) Thresholds() Thresholds[E] { return s.thresholds }

// ElementNormSquared bounds the weight of an accumulated element.
func (s *Set[E]) ElementNormSquared() E { return s.thresholds.ElementNormSquared }

// WitnessElementSquared bounds the square of each witness coordinate.
func (s *Set[E]) WitnessElementSquared() E { return s.thresholds.WitnessElementSquared }

// WitnessNormSquared bounds the sum of squared witness coordinates.
func (s *Set[E]) WitnessNormSquared() E { return s.thresholds.WitnessNormSquared }

// Fingerprint is a Keccak-256 digest over the tuple, the matrix and the
// thresholds, hex encoded. Equal fingerprints mean bit-identical sets.
func (s *Set[E]) Fingerprint() string {
	st := hasher.Keccak256().New([]byte("sis-accumulator/params"))
	var hdr [16]byte
	binary.LittleEndian.PutUint32(hdr[0:], s.M)
	binary.LittleEndian.PutUint32(hdr[4:], s.N)
	binary.LittleEndian.PutUint64(hdr[8:], uint64(s.Capacity))
	st.Write(hdr[:])
	for _, b := range [][]byte{[]byte(s.field.Name()), []byte(s.hasher.Name()), s.personalization} {
		var l [4]byte
		binary.LittleEndian.PutUint32(l[:], uint32(len(b)))
		st.Write(l[:])
		st.Write(b)
	}
	for _, e := range s.matrix {
		st.Write(s.field.Bytes(e))
	}
	st.Write(s.field.Bytes(s.thresholds.ElementNormSquared))
	st.Write(s.field.Bytes(s.thresholds.WitnessElementSquared))
	st.Write(s.field.Bytes(s.thresholds.WitnessNormSquared))
	return hex.EncodeToString(st.Sum(nil))
}
