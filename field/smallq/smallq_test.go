package smallq

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadModulus(t *testing.T) {
	t.Parallel()

	_, err := New(1 << 20)
	assert.Error(t, err)
	_, err = New(1<<62 + 1)
	assert.Error(t, err)
	_, err = New(2)
	assert.Error(t, err)
	for _, composite := range []uint64{561, 12289 * 40961} {
		_, err = New(composite)
		assert.Error(t, err, "modulus %d", composite)
	}
	_, err = New(0xffffffff00000001)
	assert.Error(t, err, "above 2^62")
	_, err = New(0x3fffffffffffffff - 56)
	require.NoError(t, err)

	f, err := New(12289)
	require.NoError(t, err)
	assert.Equal(t, uint64(12289), f.Modulus())
	assert.Equal(t, 13, f.Capacity())
}

func TestField_Arithmetic(t *testing.T) {
	t.Parallel()

	f := Default()
	q := f.Modulus()
	assert.Equal(t, uint64(0), f.Add(q-1, 1))
	assert.Equal(t, q-1, f.Neg(1))
	assert.Equal(t, uint64(0), f.Neg(0))
	assert.Equal(t, uint64(1), f.Square(q-1))
	assert.Equal(t, uint64(6), f.Mul(2, 3))
	// 2^40 * 2^40 = 2^80 = 2^19 * 2^61 = 2^19 mod (2^61 - 1)
	assert.Equal(t, uint64(1<<19), f.Mul(1<<40, 1<<40))
	assert.Equal(t, 60, f.Capacity())
}

func TestField_SetCanonicalLE(t *testing.T) {
	t.Parallel()

	f := Default()
	_, ok := f.SetCanonicalLE(bytes.Repeat([]byte{0xff}, 8))
	assert.False(t, ok)
	_, ok = f.SetCanonicalLE([]byte{1, 2, 3})
	assert.False(t, ok)

	v, ok := f.SetCanonicalLE([]byte{5, 0, 0, 0, 0, 0, 0, 0, 0xaa})
	require.True(t, ok)
	assert.Equal(t, uint64(5), v)
	assert.Equal(t, []byte{5, 0, 0, 0, 0, 0, 0, 0}, f.Bytes(v))
}
