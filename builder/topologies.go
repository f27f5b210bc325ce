// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// topologies.go — deterministic constructors.
//
// Every constructor:
//   - validates its parameters before touching g,
//   - adds nodes in index order through cfg.idFn,
//   - adds links in a fixed documented order, one weight draw per link.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsviz/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// addNodes adds n nodes, reusing IDs that already exist.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i]); err != nil && !errors.Is(err, core.ErrDuplicateNode) {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link adds u→v (and v→u when symmetric) with one drawn weight.
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, core.WithWeight(w)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if cfg.symmetric {
		if _, err := g.AddEdge(v, u, core.WithWeight(w)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

func tooFew(method string, got, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, least, ErrTooFewVertices)
}

// Path builds P_n: 0→1→…→n-1. n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return tooFew(methodPath, n, 2)
		}
		ids, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: links i→(i+1)%n in ascending i. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return tooFew(methodCycle, n, 3)
		}
		ids, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub (index 0) linked to n-1 leaves. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return tooFew(methodStar, n, 2)
		}
		ids, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds a hub (index 0) linked to every node of a rim cycle over
// indices 1..n-1; rim links first, then spokes. n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 4 {
			return tooFew(methodWheel, n, 4)
		}
		ids, err := addNodes(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		rim := ids[1:]
		for i := range rim {
			if err := link(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err := link(g, cfg, methodWheel, ids[0], v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n: links i→j for all i < j in lexicographic order. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return tooFew(methodComplete, n, 1)
		}
		ids, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice in row-major index order; each cell links
// right, then down. rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 1): %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		ids, err := addNodes(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) string { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse links every pair i < j independently with probability p.
// Requires an RNG unless p is 0 or 1. n ≥ 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return tooFew(methodRandomSparse, n, 1)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				take := p == 1
				if p > 0 && p < 1 {
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
