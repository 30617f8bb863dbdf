package hasher

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256_KnownAnswer(t *testing.T) {
	t.Parallel()

	h := Keccak256().New(nil)
	sum := h.Sum(nil)
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(sum))

	h = Keccak256().New([]byte("abc"))
	assert.Equal(t, "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45", hex.EncodeToString(h.Sum(nil)))
}

func TestPersonalizationIsPrefix(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		hs, err := ByName(name)
		require.NoError(t, err)

		a := hs.New([]byte("hel"))
		a.Write([]byte("lo"))
		b := hs.New([]byte("hello"))
		assert.Equal(t, a.Sum(nil), b.Sum(nil), name)
		assert.Equal(t, hs.Size(), len(b.Sum(nil)), name)

		c := hs.New([]byte("world"))
		assert.NotEqual(t, b.Sum(nil), c.Sum(nil), name)
	}
}

func TestByName_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ByName("md5")
	assert.True(t, errors.Is(err, ErrUnknownHasher))
	assert.Equal(t, []string{"blake2b-256", "blake3", "keccak256", "sha3-256"}, Names())
}
