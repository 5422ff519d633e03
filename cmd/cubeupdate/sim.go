package main

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/rectpack"
	"github.com/gogpu/rectpack/cubemap"
	"github.com/gogpu/rectpack/evict"
)

// result summarizes a run.
type result struct {
	evict.Stats
	Live        int
	Utilization float64
}

// erasingPolicy clears evicted regions in the preview.
type erasingPolicy struct {
	evict.Policy
	preview *cubemap.Preview
}

func (p erasingPolicy) Victim() (rectpack.Handle, bool) {
	h, ok := p.Policy.Victim()
	if ok {
		_ = p.preview.Erase(h)
	}
	return h, ok
}

// simulate runs cfg.Frames update steps. Each step requests a random
// region up to a quarter of the face side in each dimension; a miss evicts
// the cfg.Evict oldest regions. When preview is not nil every allocation
// is painted a new random color.
func simulate(cfg config, preview *cubemap.Preview) (result, error) {
	acfg, err := cfg.atlasConfig()
	if err != nil {
		return result{}, err
	}
	atlas, err := rectpack.New(acfg)
	if err != nil {
		return result{}, err
	}
	policy, err := cfg.policy()
	if err != nil {
		return result{}, err
	}
	if preview != nil {
		policy = erasingPolicy{Policy: policy, preview: preview}
	}
	m := evict.NewManager(atlas, policy, evict.Options{Batch: cfg.Evict, Retry: cfg.Retry})

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	limit := max(1, cfg.Side/4)
	for frame := range cfg.Frames {
		w := max(1, rng.IntN(limit))
		h := max(1, rng.IntN(limit))

		handle, err := m.Allocate(w, h)
		switch {
		case errors.Is(err, rectpack.ErrAllocationFailed):
			continue
		case err != nil:
			return result{}, fmt.Errorf("frame %d: %w", frame, err)
		}

		if preview != nil {
			c := color.RGBA{R: uint8(rng.UintN(255)), G: uint8(rng.UintN(255)), B: uint8(rng.UintN(255)), A: 0xff}
			if err := preview.Fill(handle, c); err != nil {
				return result{}, fmt.Errorf("frame %d: %w", frame, err)
			}
		}
	}

	return result{
		Stats:       m.Stats(),
		Live:        m.Live(),
		Utilization: atlas.Utilization(),
	}, nil
}
