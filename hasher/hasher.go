// Package hasher provides the personalized hash constructions used to derive
// the public matrix. A hash is started with a personalization (written as a
// prefix), fed with Write calls and finalized with Sum(nil).
package hasher

import (
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Hasher starts personalized hash computations.
type Hasher interface {
	// Name identifies the construction in descriptors and configs.
	Name() string
	// Size is the digest length in bytes.
	Size() int
	// New returns a fresh hash state already absorbing personalization.
	New(personalization []byte) hash.Hash
}

type construction struct {
	name string
	size int
	make func() hash.Hash
}

func (c construction) Name() string { return c.name }

func (c construction) Size() int { return c.size }

func (c construction) New(personalization []byte) hash.Hash {
	h := c.make()
	h.Write(personalization)
	return h
}

// Keccak256 is the legacy (pre-NIST padding) Keccak-256 used by Ethereum.
// It is the default construction.
func Keccak256() Hasher {
	return construction{name: "keccak256", size: 32, make: sha3.NewLegacyKeccak256}
}

// SHA3256 is FIPS-202 SHA3-256.
func SHA3256() Hasher {
	return construction{name: "sha3-256", size: 32, make: sha3.New256}
}

// Blake2b256 is unkeyed BLAKE2b with a 32-byte digest.
func Blake2b256() Hasher {
	return construction{name: "blake2b-256", size: blake2b.Size256, make: func() hash.Hash {
		h, err := blake2b.New256(nil)
		if err != nil {
			// only fails for oversized keys
			panic(err)
		}
		return h
	}}
}

// Blake3 is unkeyed BLAKE3 with a 32-byte digest.
func Blake3() Hasher {
	return construction{name: "blake3", size: 32, make: func() hash.Hash {
		return blake3.New(32, nil)
	}}
}

var registry = map[string]func() Hasher{
	"keccak256":   Keccak256,
	"sha3-256":    SHA3256,
	"blake2b-256": Blake2b256,
	"blake3":      Blake3,
}

// ByName returns the construction registered under name.
func ByName(name string) (Hasher, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
	return mk(), nil
}

// Names lists the registered constructions in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
