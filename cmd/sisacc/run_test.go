package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SIS-Accumulator/config"
	"SIS-Accumulator/field/bn254"
	"SIS-Accumulator/field/smallq"
	paramsio "SIS-Accumulator/params/io"
)

func toyConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Params.M = 128
	cfg.Params.N = 8
	cfg.Params.Capacity = 16
	cfg.Params.Field = "smallq"
	cfg.Demo.Elements = 5
	cfg.Demo.Outsiders = 5
	cfg.Report.OutDir = t.TempDir()
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestDispatch_ParamsWritesAndChecksDescriptor(t *testing.T) {
	cfg := toyConfig(t)
	out := filepath.Join(t.TempDir(), "params.json")

	require.NoError(t, dispatch(cfg, cmdParams, options{out: out}))
	d, err := paramsio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, uint32(128), d.M)
	assert.Equal(t, smallq.Default().Name(), d.Field)

	assert.NoError(t, dispatch(cfg, cmdParams, options{check: out}))

	cfg.Params.Personalization = "other"
	assert.Error(t, dispatch(cfg, cmdParams, options{check: out}))
}

func TestDispatch_Demo(t *testing.T) {
	assert.NoError(t, dispatch(toyConfig(t), cmdDemo, options{}))
}

func TestDispatch_Report(t *testing.T) {
	cfg := toyConfig(t)
	require.NoError(t, dispatch(cfg, cmdReport, options{}))
	entries, err := os.ReadDir(cfg.Report.OutDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".html", filepath.Ext(entries[0].Name()))
}

func TestDispatch_Errors(t *testing.T) {
	cfg := toyConfig(t)
	cfg.Params.Field = "goldilocks"
	assert.Error(t, dispatch(cfg, cmdDemo, options{}))

	cfg = toyConfig(t)
	cfg.Params.Hash = "md5"
	assert.Error(t, dispatch(cfg, cmdDemo, options{}))

	cfg = toyConfig(t)
	cfg.Params.M = 1 << 20
	assert.Error(t, dispatch(cfg, cmdParams, options{}), "norm bound")

	assert.Error(t, dispatch(toyConfig(t), "unknown", options{}))
}

func TestWitnessHistogram(t *testing.T) {
	f := smallq.Default()
	h, err := witnessHistogram[uint64](f, []uint64{0, 2, 2, 1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, h)

	_, err = witnessHistogram[uint64](f, []uint64{f.Neg(1)})
	assert.Error(t, err)
}

func TestDispatch_CurveFields(t *testing.T) {
	for _, name := range []string{"bn254", "bls12381"} {
		cfg := toyConfig(t)
		cfg.Params.Field = name

		assert.NoError(t, dispatch(cfg, cmdDemo, options{}), name)

		require.NoError(t, dispatch(cfg, cmdReport, options{}), name)
		entries, err := os.ReadDir(cfg.Report.OutDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, name)
	}
}

func TestWitnessHistogram_BN254(t *testing.T) {
	f := bn254.New()
	w := []fr.Element{f.FromUint64(3), f.Zero(), f.FromUint64(3), f.One()}
	h, err := witnessHistogram[fr.Element](f, w)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 2}, h)
}
