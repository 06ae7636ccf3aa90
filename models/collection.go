// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// RootKey is the hierarchy key under which top-level collections are stored.
const RootKey = ""

// ErrBrokenHierarchy is returned by [CollectionHierarchy.Validate].
var ErrBrokenHierarchy = errors.New("broken collection hierarchy")

// CollectionTreeNode is one node of the tree returned by the remote
// collections listing. Children keep the remote sibling order.
type CollectionTreeNode struct {
	ID          string
	Title       string
	Description string
	SetIDs      []string
	Children    []CollectionTreeNode
}

// CollectionInfo is the extended detail fetched per collection.
type CollectionInfo struct {
	Created string
	Icons   CollectionIcons
}

// CollectionIcons describes how a collection is pictured.
//
// Mosaic maps the mosaic size name ("large", "small") to its URL; the remote
// returns it in no particular order. PhotoIDs keeps the remote order.
type CollectionIcons struct {
	Mosaic   map[string]string
	PhotoIDs []string
}

// CollectionNode is a collection recorded in a [CollectionHierarchy].
type CollectionNode struct {
	ID          string
	ParentID    string
	Title       string
	Description string
	// Created is the raw unix timestamp as sent by the remote.
	Created       string
	Icons         CollectionIcons
	SetIDs        []string
	CollectionIDs []string
}

// CreatedTime parses Created. The zero time is returned for unparsable input.
func (n CollectionNode) CreatedTime() time.Time {
	return UnixString(n.Created)
}

// CollectionHierarchy maps a parent collection id to its child collections in
// remote order. Top-level collections live under [RootKey].
type CollectionHierarchy map[string][]CollectionNode

// NewCollectionHierarchy returns an empty hierarchy.
func NewCollectionHierarchy() CollectionHierarchy {
	return make(CollectionHierarchy)
}

// Append records node as the last child of parent.
func (h CollectionHierarchy) Append(parent string, node CollectionNode) {
	h[parent] = append(h[parent], node)
}

// Children returns the child collections recorded under key.
func (h CollectionHierarchy) Children(key string) []CollectionNode {
	return h[key]
}

// Contains reports whether a collection with the given id was recorded.
func (h CollectionHierarchy) Contains(id string) bool {
	for _, nodes := range h {
		for _, n := range nodes {
			if n.ID == id {
				return true
			}
		}
	}
	return false
}

// Len returns the number of recorded collections.
func (h CollectionHierarchy) Len() int {
	total := 0
	for _, nodes := range h {
		total += len(nodes)
	}
	return total
}

// Walk visits every collection reachable from RootKey in pre-order, keeping
// sibling order. Walk stops early when fn returns false.
func (h CollectionHierarchy) Walk(fn func(CollectionNode) bool) {
	roots := h[RootKey]
	stack := make([]CollectionNode, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(node) {
			return
		}

		children := h[node.ID]
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// SetIDs returns every set id referenced by the hierarchy, deduplicated, in
// discovery order.
func (h CollectionHierarchy) SetIDs() []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	h.Walk(func(n CollectionNode) bool {
		for _, sid := range n.SetIDs {
			if _, ok := seen[sid]; ok {
				continue
			}
			seen[sid] = struct{}{}
			ids = append(ids, sid)
		}
		return true
	})
	return ids
}

// Validate checks that every listed child collection resolves to a key, that
// every key except RootKey belongs to a recorded collection and that no
// collection is reachable twice.
func (h CollectionHierarchy) Validate() error {
	known := make(map[string]struct{}, h.Len())
	for _, nodes := range h {
		for _, n := range nodes {
			known[n.ID] = struct{}{}
		}
	}

	for key, nodes := range h {
		if key != RootKey {
			if _, ok := known[key]; !ok {
				return fmt.Errorf("%w: key %q has no collection", ErrBrokenHierarchy, key)
			}
		}
		for _, n := range nodes {
			if n.ParentID != key {
				return fmt.Errorf("%w: collection %q stored under %q but has parent %q", ErrBrokenHierarchy, n.ID, key, n.ParentID)
			}
			if len(n.CollectionIDs) > 0 {
				if _, ok := h[n.ID]; !ok {
					return fmt.Errorf("%w: children of %q are missing", ErrBrokenHierarchy, n.ID)
				}
			}
			for _, cid := range n.CollectionIDs {
				if _, ok := known[cid]; !ok {
					return fmt.Errorf("%w: child %q of %q is missing", ErrBrokenHierarchy, cid, n.ID)
				}
			}
		}
	}

	visited := make(map[string]struct{}, len(known))
	var cycle error
	h.Walk(func(n CollectionNode) bool {
		if _, ok := visited[n.ID]; ok {
			cycle = fmt.Errorf("%w: collection %q reached twice", ErrBrokenHierarchy, n.ID)
			return false
		}
		visited[n.ID] = struct{}{}
		return true
	})

	if cycle != nil {
		return cycle
	}
	if len(visited) != len(known) {
		return fmt.Errorf("%w: %d collections are detached from the root", ErrBrokenHierarchy, len(known)-len(visited))
	}

	return nil
}
