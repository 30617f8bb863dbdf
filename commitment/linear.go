// Package commitment applies the public matrix of a parameter set to
// pre-image vectors: com = A · vec, with A the N×M matrix of params.Set.
package commitment

import (
	"fmt"

	"SIS-Accumulator/params"
)

// Commit computes com = A · vec for a field-valued vec of length M. Zero
// entries of vec are skipped.
func Commit[E any](p *params.Set[E], vec []E) ([]E, error) {
	if p == nil {
		return nil, fmt.Errorf("nil parameter set")
	}
	if len(vec) != int(p.M) {
		return nil, fmt.Errorf("dimension mismatch: cols=%d vec=%d", p.M, len(vec))
	}
	f := p.Field()
	com := make([]E, p.N)
	for i := range com {
		row := p.Row(i)
		acc := f.Zero()
		for j, v := range vec {
			if f.IsZero(v) {
				continue
			}
			acc = f.Add(acc, f.Mul(v, row[j]))
		}
		com[i] = acc
	}
	return com, nil
}

// CommitBinary computes A · bits by summing, in every row, the entries of
// the columns where bits is set. No multiplication is needed.
func CommitBinary[E any](p *params.Set[E], bits []bool) ([]E, error) {
	if p == nil {
		return nil, fmt.Errorf("nil parameter set")
	}
	if len(bits) != int(p.M) {
		return nil, fmt.Errorf("dimension mismatch: cols=%d vec=%d", p.M, len(bits))
	}
	f := p.Field()
	com := make([]E, p.N)
	for i := range com {
		row := p.Row(i)
		acc := f.Zero()
		for j, b := range bits {
			if b {
				acc = f.Add(acc, row[j])
			}
		}
		com[i] = acc
	}
	return com, nil
}

// Verify recomputes the commitment to vec and checks it matches com.
func Verify[E any](p *params.Set[E], vec, com []E) error {
	if p != nil && len(com) != int(p.N) {
		return fmt.Errorf("commitment length mismatch: got %d want %d", len(com), p.N)
	}
	recomputed, err := Commit(p, vec)
	if err != nil {
		return err
	}
	f := p.Field()
	for i := range recomputed {
		if !f.Equal(recomputed[i], com[i]) {
			return fmt.Errorf("commitment mismatch at row %d", i)
		}
	}
	return nil
}
