// Package smallq implements a word-sized prime field on top of lattigo's
// Barrett arithmetic. It is meant for toy parameter sets and fast tests;
// with a ~61-bit modulus the norm bounds only admit small (m, capacity).
package smallq

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/tuneinsight/lattigo/v4/ring"

	"SIS-Accumulator/field"
)

// DefaultModulus is the Mersenne prime 2^61 - 1.
const DefaultModulus uint64 = 1<<61 - 1

// reprBytes is the width of the little-endian representation.
const reprBytes = 8

// Field is F_q for a prime q < 2^62.
type Field struct {
	q    uint64
	bred []uint64
	bits int
}

var _ field.Field[uint64] = (*Field)(nil)

// New constructs F_q. q must be an odd prime below 2^62 so that the sum of
// two reduced elements never overflows a word.
func New(q uint64) (*Field, error) {
	if q < 3 || q >= 1<<62 {
		return nil, fmt.Errorf("smallq: modulus %d out of range [3, 2^62)", q)
	}
	if !ring.IsPrime(q) {
		return nil, errors.New("smallq: modulus is not prime")
	}
	return &Field{q: q, bred: ring.BRedParams(q), bits: bits.Len64(q)}, nil
}

// Default returns F_q for DefaultModulus.
func Default() *Field {
	f, err := New(DefaultModulus)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns q.
func (f *Field) Modulus() uint64 { return f.q }

func (f *Field) Name() string { return "smallq-" + strconv.FormatUint(f.q, 10) }

func (f *Field) Zero() uint64 { return 0 }

func (f *Field) One() uint64 { return 1 }

func (f *Field) FromUint64(v uint64) uint64 { return v % f.q }

func (f *Field) Add(a, b uint64) uint64 { return ring.CRed(a+b, f.q) }

func (f *Field) Mul(a, b uint64) uint64 { return ring.BRed(a, b, f.q, f.bred) }

func (f *Field) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.q - a
}

func (f *Field) Square(a uint64) uint64 { return ring.BRed(a, a, f.q, f.bred) }

func (f *Field) Equal(a, b uint64) bool { return a == b }

func (f *Field) IsZero(a uint64) bool { return a == 0 }

func (f *Field) Cmp(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (f *Field) BitLen(a uint64) int { return bits.Len64(a) }

func (f *Field) Capacity() int { return f.bits - 1 }

func (f *Field) ReprBytes() int { return reprBytes }

func (f *Field) SetCanonicalLE(b []byte) (uint64, bool) {
	if len(b) < reprBytes {
		return 0, false
	}
	v := binary.LittleEndian.Uint64(b[:reprBytes])
	if v >= f.q {
		return 0, false
	}
	return v, true
}

func (f *Field) Bytes(a uint64) []byte {
	out := make([]byte, reprBytes)
	binary.LittleEndian.PutUint64(out, a)
	return out
}

func (f *Field) String(a uint64) string { return strconv.FormatUint(a, 10) }
