// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// api.go — the single public entry-point of the builder package.
//
// Contract:
//   - BuildGraph(bopts, cons...) creates an empty core.Graph, resolves the
//     options once and runs every constructor in order.
//   - Constructors are composable: a node ID produced twice is reused, an
//     edge produced twice is kept once (core.AddEdge is idempotent).
//   - Determinism: same options, seed and constructor order ⇒ same graph,
//     including node order and out-list order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dsviz/core"
)

// Constructor applies one deterministic topology to g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph and applies cons in order. The first
// constructor error is returned wrapped; the partial graph is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - whatever a constructor returns (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
