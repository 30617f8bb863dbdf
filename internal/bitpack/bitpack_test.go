package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_BitOrder(t *testing.T) {
	t.Parallel()

	v := make([]bool, 70)
	v[0] = true
	v[63] = true
	v[64] = true
	w := Pack(v)
	require.Len(t, w, 2)
	assert.Equal(t, uint64(1<<63|1), w[0])
	assert.Equal(t, uint64(1<<63), w[1])
	assert.True(t, Bit(w, 63))
	assert.False(t, Bit(w, 62))
}

func TestPackUnpack(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 63, 64, 65, 200} {
		v := make([]bool, n)
		for i := range v {
			v[i] = i%3 == 0 || i%7 == 1
		}
		assert.Equal(t, v, Unpack(Pack(v), n), "n=%d", n)
		assert.Equal(t, Words(n), len(Pack(v)))
	}
}

func TestKey_Injective(t *testing.T) {
	t.Parallel()

	a := make([]bool, 100)
	b := make([]bool, 100)
	b[99] = true
	assert.NotEqual(t, Key(Pack(a)), Key(Pack(b)))
	a[99] = true
	assert.Equal(t, Key(Pack(a)), Key(Pack(b)))
	assert.Equal(t, 1, Weight(a))
}
