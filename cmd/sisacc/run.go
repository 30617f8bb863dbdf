package main

import (
	"fmt"
	"time"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"SIS-Accumulator/accumulator"
	"SIS-Accumulator/config"
	"SIS-Accumulator/field"
	"SIS-Accumulator/field/bls12381"
	"SIS-Accumulator/field/bn254"
	"SIS-Accumulator/field/smallq"
	"SIS-Accumulator/hasher"
	"SIS-Accumulator/internal/bitpack"
	"SIS-Accumulator/params"
	paramsio "SIS-Accumulator/params/io"
	"SIS-Accumulator/sampler"
)

const (
	cmdParams = "params"
	cmdDemo   = "demo"
	cmdReport = "report"
)

type options struct {
	out   string
	check string
}

func dispatch(cfg *config.Config, cmd string, opts options) error {
	switch cfg.Params.Field {
	case "bn254":
		return run[bnfr.Element](bn254.New(), cfg, cmd, opts)
	case "bls12381":
		return run[blsfr.Element](bls12381.New(), cfg, cmd, opts)
	case "smallq":
		return run[uint64](smallq.Default(), cfg, cmd, opts)
	}
	return fmt.Errorf("unknown field %q (bn254|bls12381|smallq)", cfg.Params.Field)
}

func run[E any](f field.Field[E], cfg *config.Config, cmd string, opts options) error {
	h, err := hasher.ByName(cfg.Params.Hash)
	if err != nil {
		return err
	}
	start := time.Now()
	p, err := params.New(f, h, []byte(cfg.Params.Personalization), cfg.Params.M, cfg.Params.N, cfg.Params.Capacity)
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}
	log.Info("parameters ready", "field", f.Name(), "hasher", h.Name(),
		"m", p.M, "n", p.N, "capacity", p.Capacity, "elapsed", time.Since(start))

	switch cmd {
	case cmdParams:
		return runParams(p, opts)
	case cmdDemo:
		return runDemo(p, cfg.Demo)
	case cmdReport:
		return runReport(p, cfg.Demo, cfg.Report)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func runParams[E any](p *params.Set[E], opts options) error {
	f := p.Field()
	d := paramsio.Describe(p)
	fmt.Println("field:                  ", d.Field)
	fmt.Println("hash:                   ", d.Hash)
	fmt.Println("m, n, capacity:         ", p.M, p.N, p.Capacity)
	fmt.Println("element norm squared:   ", f.String(p.ElementNormSquared()))
	fmt.Println("witness element squared:", f.String(p.WitnessElementSquared()))
	fmt.Println("witness norm squared:   ", f.String(p.WitnessNormSquared()))
	fmt.Println("fingerprint:            ", d.Fingerprint)

	if opts.check != "" {
		want, err := paramsio.Load(opts.check)
		if err != nil {
			return err
		}
		if err := paramsio.Check(want, p); err != nil {
			return err
		}
		log.Info("descriptor matches", "path", opts.check)
	}
	if opts.out != "" {
		if err := paramsio.Save(opts.out, d); err != nil {
			return fmt.Errorf("save descriptor: %w", err)
		}
		log.Info("descriptor written", "path", opts.out)
	}
	return nil
}

// populate accumulates demo.Elements vectors drawn from the demo seed.
func populate[E any](p *params.Set[E], demo config.DemoConfig) (*accumulator.Accumulator[E], [][]bool, error) {
	s, err := sampler.New([]byte(demo.Seed), int(p.M))
	if err != nil {
		return nil, nil, err
	}
	values, err := s.Batch(demo.Elements)
	if err != nil {
		return nil, nil, err
	}
	acc := accumulator.New(p)
	for _, v := range values {
		acc.Accumulate(v)
	}
	return acc, values, nil
}

// runDemo checks every distinct member against its witness, then tries the
// member witnesses on random outsiders of the same Hamming weights.
func runDemo[E any](p *params.Set[E], demo config.DemoConfig) error {
	acc, _, err := populate(p, demo)
	if err != nil {
		return err
	}

	members := acc.Elements()
	witnesses := make([][]E, len(members))
	accepted := 0
	for i, v := range members {
		witnesses[i] = acc.CalculateWitness(v)
		if acc.CheckInclusion(v, witnesses[i]) {
			accepted++
		} else {
			log.Warn("member rejected", "index", i)
		}
	}

	outsiders, err := sampler.NewRandom(int(p.M))
	if err != nil {
		return err
	}
	forged := 0
	attempts := 0
	for i := 0; i < demo.Outsiders && len(members) > 0; i++ {
		v, err := outsiders.BinaryWeight(bitpack.Weight(members[i%len(members)]))
		if err != nil {
			return err
		}
		if acc.Contains(v) {
			continue
		}
		for _, w := range witnesses {
			attempts++
			if acc.CheckInclusion(v, w) {
				forged++
			}
		}
	}

	fmt.Printf("members accepted:  %d/%d\n", accepted, len(members))
	fmt.Printf("outsider attempts: %d, accepted %d\n", attempts, forged)
	if accepted != len(members) || forged != 0 {
		return fmt.Errorf("demo failed: %d/%d members accepted, %d forged", accepted, len(members), forged)
	}
	return nil
}
