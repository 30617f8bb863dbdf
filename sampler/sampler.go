// Package sampler draws binary vectors for accumulation from lattigo PRNGs.
// A keyed PRNG makes a sequence of vectors reproducible from a seed.
package sampler

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Sampler produces binary vectors of a fixed length.
type Sampler struct {
	prng utils.PRNG
	m    int
}

// New returns a sampler reading from a keyed PRNG seeded with seed.
func New(seed []byte, m int) (*Sampler, error) {
	if m <= 0 {
		return nil, fmt.Errorf("sampler: length %d must be positive", m)
	}
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("sampler: keyed prng: %w", err)
	}
	return &Sampler{prng: prng, m: m}, nil
}

// NewRandom returns a sampler seeded from the system randomness source.
func NewRandom(m int) (*Sampler, error) {
	if m <= 0 {
		return nil, fmt.Errorf("sampler: length %d must be positive", m)
	}
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("sampler: prng: %w", err)
	}
	return &Sampler{prng: prng, m: m}, nil
}

// Len is the vector length.
func (s *Sampler) Len() int { return s.m }

// Binary returns the next uniformly random vector.
func (s *Sampler) Binary() ([]bool, error) {
	buf := make([]byte, (s.m+7)/8)
	if _, err := s.prng.Read(buf); err != nil {
		return nil, fmt.Errorf("sampler: read: %w", err)
	}
	out := make([]bool, s.m)
	for i := range out {
		out[i] = buf[i>>3]>>(uint(i)&7)&1 == 1
	}
	return out, nil
}

// BinaryWeight returns the next random vector with exactly weight set bits.
func (s *Sampler) BinaryWeight(weight int) ([]bool, error) {
	if weight < 0 || weight > s.m {
		return nil, fmt.Errorf("sampler: weight %d outside [0,%d]", weight, s.m)
	}
	idx := make([]int, s.m)
	for i := range idx {
		idx[i] = i
	}
	// partial Fisher-Yates over the first weight positions
	var rb [8]byte
	for i := 0; i < weight; i++ {
		if _, err := s.prng.Read(rb[:]); err != nil {
			return nil, fmt.Errorf("sampler: read: %w", err)
		}
		var r uint64
		for _, b := range rb {
			r = r<<8 | uint64(b)
		}
		j := i + int(r%uint64(s.m-i))
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := make([]bool, s.m)
	for _, k := range idx[:weight] {
		out[k] = true
	}
	return out, nil
}

// Batch returns k vectors from Binary.
func (s *Sampler) Batch(k int) ([][]bool, error) {
	out := make([][]bool, 0, k)
	for i := 0; i < k; i++ {
		v, err := s.Binary()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
