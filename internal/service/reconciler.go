// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/photo-backup/internal/logger"
)

// Reconciler merges newly discovered identifiers into a persisted ordered
// sequence using only predecessor lookups.
type Reconciler struct {
	lookup   PredecessorLookup
	maxDepth int
}

// NewReconciler returns a Reconciler. A maxDepth of zero or less disables the
// depth bound; cycles are still detected.
func NewReconciler(lookup PredecessorLookup, maxDepth int) *Reconciler {
	return &Reconciler{
		lookup:   lookup,
		maxDepth: maxDepth,
	}
}

// Reconcile returns existing with every identifier of found inserted right
// after its true predecessor. Identifiers already in the sequence, either
// from the start or placed by an earlier chain, are skipped. Contiguous
// missing identifiers discovered during one walk are spliced together in
// true order. existing is not modified.
func (r *Reconciler) Reconcile(ctx context.Context, existing, found []string) ([]string, error) {
	log := logger.FromContext(ctx)

	seq := slices.Clone(existing)
	pos := positions(seq)

	for _, id := range found {
		if _, ok := pos[id]; ok {
			continue
		}

		chain, at, err := r.walk(ctx, id, pos)
		if err != nil {
			return nil, err
		}

		slices.Reverse(chain)
		seq = slices.Insert(seq, at, chain...)
		pos = positions(seq)

		log.Debug().
			Str("id", id).
			Int("chain", len(chain)).
			Int("at", at).
			Msg("merged identifiers")
	}

	return seq, nil
}

// walk follows predecessors from id until it reaches an identifier in pos or
// the head of the sequence. It returns the identifiers walked in walk order
// and the index the chain must be inserted at.
func (r *Reconciler) walk(ctx context.Context, id string, pos map[string]int) ([]string, int, error) {
	chain := []string{id}
	visited := map[string]struct{}{id: {}}

	for cur := id; ; {
		if r.maxDepth > 0 && len(chain) > r.maxDepth {
			return nil, 0, fmt.Errorf("%w: %s walked more than %d identifiers", ErrChainTooDeep, id, r.maxDepth)
		}

		prev, err := r.lookup.Predecessor(ctx, cur)
		if err != nil {
			return nil, 0, fmt.Errorf("error looking up predecessor of %s: %w", cur, err)
		}

		if prev == "" {
			return chain, 0, nil
		}
		if i, ok := pos[prev]; ok {
			return chain, i + 1, nil
		}
		if _, ok := visited[prev]; ok {
			return nil, 0, fmt.Errorf("%w: %s reached again from %s", ErrPredecessorCycle, prev, id)
		}

		visited[prev] = struct{}{}
		chain = append(chain, prev)
		cur = prev
	}
}

func positions(seq []string) map[string]int {
	pos := make(map[string]int, len(seq))
	for i, id := range seq {
		pos[id] = i
	}
	return pos
}
