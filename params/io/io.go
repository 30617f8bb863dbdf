// Package io reads and writes parameter descriptors: the public tuple a
// parameter set is regenerated from, plus its fingerprint. The matrix itself
// is never written out; anyone can re-derive it.
package io

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"SIS-Accumulator/params"
)

// ErrDescriptorMismatch signals a descriptor that does not describe a parameter set
var ErrDescriptorMismatch = errors.New("descriptor does not match parameter set")

// Descriptor is the on-disk form of a parameter set.
type Descriptor struct {
	Personalization string `json:"personalization"` // hex
	M               uint32 `json:"m"`
	N               uint32 `json:"n"`
	Capacity        int    `json:"capacity"`
	Field           string `json:"field"`
	Hash            string `json:"hash"`
	Fingerprint     string `json:"fingerprint,omitempty"`
}

// Describe builds the descriptor of s, fingerprint included.
func Describe[E any](s *params.Set[E]) Descriptor {
	return Descriptor{
		Personalization: hex.EncodeToString(s.Personalization()),
		M:               s.M,
		N:               s.N,
		Capacity:        s.Capacity,
		Field:           s.Field().Name(),
		Hash:            s.Hasher().Name(),
		Fingerprint:     s.Fingerprint(),
	}
}

// PersonalizationBytes decodes the hex personalization.
func (d Descriptor) PersonalizationBytes() ([]byte, error) {
	b, err := hex.DecodeString(d.Personalization)
	if err != nil {
		return nil, fmt.Errorf("personalization: %w", err)
	}
	return b, nil
}

// Validate performs basic consistency checks.
func (d Descriptor) Validate() error {
	if d.M == 0 || d.N == 0 {
		return fmt.Errorf("m=%d n=%d must be positive", d.M, d.N)
	}
	if d.Capacity <= 0 {
		return fmt.Errorf("capacity=%d must be positive", d.Capacity)
	}
	if d.Field == "" || d.Hash == "" {
		return errors.New("field and hash must be set")
	}
	if _, err := d.PersonalizationBytes(); err != nil {
		return err
	}
	return nil
}

// Check verifies that s was generated from d. The fingerprint is compared
// only when d carries one.
func Check[E any](d Descriptor, s *params.Set[E]) error {
	got := Describe(s)
	if d.Fingerprint == "" {
		got.Fingerprint = ""
	}
	if got != d {
		return fmt.Errorf("%w: have %+v want %+v", ErrDescriptorMismatch, got, d)
	}
	return nil
}

// Load reads and validates a JSON descriptor.
func Load(path string) (Descriptor, error) {
	var d Descriptor
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("decode descriptor %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("descriptor %s: %w", path, err)
	}
	return d, nil
}

// Save writes d as indented JSON.
func Save(path string, d Descriptor) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
