// Package bls12381 provides the scalar field of the BLS12-381 curve.
package bls12381

import (
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"SIS-Accumulator/field"
)

// Field is the BLS12-381 scalar field Fr. The zero value is ready to use.
type Field struct{}

var _ field.Field[fr.Element] = Field{}

// New returns the BLS12-381 scalar field.
func New() Field { return Field{} }

func (Field) Name() string { return "bls12381" }

func (Field) Zero() fr.Element { return fr.Element{} }

func (Field) One() fr.Element {
	var e fr.Element
	e.SetOne()
	return e
}

func (Field) FromUint64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

func (Field) Add(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Add(&a, &b)
	return r
}

func (Field) Mul(a, b fr.Element) fr.Element {
	var r fr.Element
	r.Mul(&a, &b)
	return r
}

func (Field) Neg(a fr.Element) fr.Element {
	var r fr.Element
	r.Neg(&a)
	return r
}

func (Field) Square(a fr.Element) fr.Element {
	var r fr.Element
	r.Square(&a)
	return r
}

func (Field) Equal(a, b fr.Element) bool { return a.Equal(&b) }

func (Field) IsZero(a fr.Element) bool { return a.IsZero() }

// Cmp compares the regular (non-Montgomery) values.
func (Field) Cmp(a, b fr.Element) int { return a.Cmp(&b) }

// BitLen counts the bits of the regular value; fr.Element.BitLen reads the
// Montgomery limbs.
func (Field) BitLen(a fr.Element) int {
	limbs := a.Bits()
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] != 0 {
			return i*64 + bits.Len64(limbs[i])
		}
	}
	return 0
}

func (Field) Capacity() int { return fr.Bits - 1 }

func (Field) ReprBytes() int { return fr.Bytes }

func (Field) SetCanonicalLE(b []byte) (fr.Element, bool) {
	if len(b) < fr.Bytes {
		return fr.Element{}, false
	}
	var buf [fr.Bytes]byte
	copy(buf[:], b[:fr.Bytes])
	e, err := fr.LittleEndian.Element(&buf)
	if err != nil {
		return fr.Element{}, false
	}
	return e, true
}

func (Field) Bytes(a fr.Element) []byte {
	var buf [fr.Bytes]byte
	fr.LittleEndian.PutElement(&buf, a)
	return buf[:]
}

func (Field) String(a fr.Element) string { return a.String() }
