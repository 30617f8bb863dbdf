package params

import (
	"fmt"
	"math/bits"

	"SIS-Accumulator/field"
)

// Thresholds are the squared norm bounds checked by the accumulator.
type Thresholds[E any] struct {
	ElementNormSquared    E
	WitnessElementSquared E
	WitnessNormSquared    E
}

// CeilLog2 returns ceil(log2(v)) for v >= 1 and 0 for v == 0.
func CeilLog2(v uint64) int {
	if v <= 1 {
		return 0
	}
	return bits.Len64(v - 1)
}

// deriveThresholds computes element norm m, witness element norm capacity and
// witness norm m*capacity, checks their bit lengths against half the field
// capacity and squares them.
func deriveThresholds[E any](f field.Field[E], m uint32, capacity int) (Thresholds[E], error) {
	elementNorm := f.FromUint64(uint64(m))
	witnessElement := f.FromUint64(uint64(capacity))
	witnessNorm := f.Mul(elementNorm, witnessElement)

	half := f.Capacity() / 2
	logM := CeilLog2(uint64(m))
	logC := CeilLog2(uint64(capacity))

	checks := []struct {
		name  string
		value E
		limit int
	}{
		{"element norm", elementNorm, half - logM - logC},
		{"witness element norm", witnessElement, half - logC},
		{"witness norm", witnessNorm, half},
	}
	for _, c := range checks {
		if got := f.BitLen(c.value); got > c.limit {
			return Thresholds[E]{}, fmt.Errorf("%w: %s needs %d bits, limit %d for field %s",
				ErrNormBound, c.name, got, c.limit, f.Name())
		}
	}

	return Thresholds[E]{
		ElementNormSquared:    f.Square(elementNorm),
		WitnessElementSquared: f.Square(witnessElement),
		WitnessNormSquared:    f.Square(witnessNorm),
	}, nil
}
