// Package accumulator implements an additively homomorphic accumulator over
// fixed-length binary vectors, binding under the SIS assumption.
//
// An element v of length M is hashed to A·v (N field elements) and added to a
// running digest. A witness for v lives in pre-image space: it is the
// M-length vector w with w[c] counting the other distinct accumulated
// elements that have bit c set, so that A·v + A·w equals the digest. Witness
// coordinates are checked against norm bounds before the linear equation;
// without those checks any linear solution would be accepted.
//
// An Accumulator is not safe for concurrent mutation. Readers (Hash,
// CalculateWitness, CheckInclusion) may run concurrently once Accumulate
// calls have stopped.
package accumulator

import (
	"fmt"
	"maps"
	"slices"

	logger "github.com/multiversx/mx-chain-logger-go"

	"SIS-Accumulator/commitment"
	"SIS-Accumulator/field"
	"SIS-Accumulator/internal/bitpack"
	"SIS-Accumulator/params"
)

var log = logger.GetOrCreate("accumulator")

// Accumulator holds the digest and the set of distinct accumulated elements.
type Accumulator[E any] struct {
	params   *params.Set[E]
	f        field.Field[E]
	value    []E
	elements map[string][]uint64
	count    int
	warned   bool
}

// New returns an empty accumulator bound to p.
func New[E any](p *params.Set[E]) *Accumulator[E] {
	return &Accumulator[E]{
		params:   p,
		f:        p.Field(),
		value:    field.ZeroVec(p.Field(), int(p.N)),
		elements: make(map[string][]uint64, 128),
	}
}

// Params returns the parameter set the accumulator is bound to.
func (a *Accumulator[E]) Params() *params.Set[E] { return a.params }

// Digest returns a copy of the accumulated value.
func (a *Accumulator[E]) Digest() []E {
	return append([]E(nil), a.value...)
}

// Len is the number of distinct accumulated elements.
func (a *Accumulator[E]) Len() int { return len(a.elements) }

// Count is the number of Accumulate calls, duplicates included.
func (a *Accumulator[E]) Count() int { return a.count }

// Contains reports whether value was accumulated.
func (a *Accumulator[E]) Contains(value []bool) bool {
	if len(value) != int(a.params.M) {
		return false
	}
	_, ok := a.elements[bitpack.Key(bitpack.Pack(value))]
	return ok
}

// Elements returns the distinct accumulated values, ordered by their packed
// encoding.
func (a *Accumulator[E]) Elements() [][]bool {
	out := make([][]bool, 0, len(a.elements))
	for _, key := range slices.Sorted(maps.Keys(a.elements)) {
		out = append(out, bitpack.Unpack(a.elements[key], int(a.params.M)))
	}
	return out
}

// ValidateElement returns the error Hash and Accumulate would panic with.
func (a *Accumulator[E]) ValidateElement(value []bool) error {
	if len(value) != int(a.params.M) {
		return fmt.Errorf("%w: got %d bits, want %d", ErrElementLength, len(value), a.params.M)
	}
	weight := a.f.FromUint64(uint64(bitpack.Weight(value)))
	if a.f.Cmp(weight, a.params.ElementNormSquared()) > 0 {
		return fmt.Errorf("%w: weight %s exceeds %s", ErrElementWeight,
			a.f.String(weight), a.f.String(a.params.ElementNormSquared()))
	}
	return nil
}

func (a *Accumulator[E]) mustValidate(value []bool) {
	if err := a.ValidateElement(value); err != nil {
		panic(fmt.Sprintf("accumulator: %v", err))
	}
}

// Hash maps value into digest space: row r of the result is the sum of the
// entries of row r of the matrix at the columns where value is set.
// It panics if value has the wrong length or is too heavy.
func (a *Accumulator[E]) Hash(value []bool) []E {
	a.mustValidate(value)
	h, err := commitment.CommitBinary(a.params, value)
	if err != nil {
		panic(fmt.Sprintf("accumulator: %v", err))
	}
	return h
}

// Accumulate adds Hash(value) to the digest and records value. Accumulating
// the same value twice adds it twice to the digest but stores it once.
func (a *Accumulator[E]) Accumulate(value []bool) {
	a.value = field.AddVec(a.f, a.value, a.Hash(value))
	a.count++

	packed := bitpack.Pack(value)
	key := bitpack.Key(packed)
	if _, ok := a.elements[key]; !ok {
		a.elements[key] = packed
	}
	if !a.warned && len(a.elements) > a.params.Capacity {
		a.warned = true
		log.Warn("accumulator over capacity, witnesses may exceed the norm bound",
			"elements", len(a.elements), "capacity", a.params.Capacity)
	}
}

// CalculateWitness returns the pre-image witness for value: for each column
// the number of other distinct elements with that bit set. Elements equal
// to value are skipped. It panics if value has the wrong length.
func (a *Accumulator[E]) CalculateWitness(value []bool) []E {
	m := int(a.params.M)
	if len(value) != m {
		panic(fmt.Sprintf("accumulator: %v: got %d bits, want %d", ErrElementLength, len(value), m))
	}
	self := bitpack.Key(bitpack.Pack(value))

	counts := make([]uint64, m)
	for key, el := range a.elements {
		if key == self {
			continue
		}
		for column := 0; column < m; column++ {
			if bitpack.Bit(el, column) {
				counts[column]++
			}
		}
	}

	w := make([]E, m)
	for column, c := range counts {
		w[column] = a.f.FromUint64(c)
	}
	return w
}

// CheckInclusion reports whether witness proves that value was accumulated.
// It returns false for non-members and for malformed or oversized witnesses,
// and panics only if value itself violates the Hash preconditions.
func (a *Accumulator[E]) CheckInclusion(value []bool, witness []E) bool {
	h := a.Hash(value)
	if len(witness) != int(a.params.M) {
		return false
	}
	if !a.withinNorm(witness) {
		return false
	}
	target := make([]E, len(h))
	for i := range h {
		target[i] = a.f.Add(a.value[i], a.f.Neg(h[i]))
	}
	return commitment.Verify(a.params, witness, target) == nil
}

// withinNorm checks each squared coordinate against the witness element
// bound and their sum against the witness norm bound.
func (a *Accumulator[E]) withinNorm(witness []E) bool {
	elemBound := a.params.WitnessElementSquared()
	squares := make([]E, len(witness))
	for i, w := range witness {
		squares[i] = a.f.Square(w)
		if a.f.Cmp(squares[i], elemBound) > 0 {
			return false
		}
	}
	return a.f.Cmp(field.Sum(a.f, squares), a.params.WitnessNormSquared()) <= 0
}
