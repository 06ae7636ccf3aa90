// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

// HierarchyBuilder turns the remote collection tree into a
// [models.CollectionHierarchy], fetching the extended detail of every node.
type HierarchyBuilder struct {
	remote adapter.RemoteAdapter
}

// NewHierarchyBuilder returns a HierarchyBuilder reading from remote.
func NewHierarchyBuilder(remote adapter.RemoteAdapter) *HierarchyBuilder {
	return &HierarchyBuilder{remote: remote}
}

type treeItem struct {
	node   models.CollectionTreeNode
	parent string
}

// Build fetches the tree under rootID, or the whole account tree when rootID
// is empty, and appends every node to h in pre-order. Top-level nodes of the
// fetch are recorded under [models.RootKey]; sibling order is kept.
func (b *HierarchyBuilder) Build(ctx context.Context, h models.CollectionHierarchy, rootID string) error {
	log := logger.FromContext(ctx)

	roots, err := b.remote.GetCollectionTree(ctx, rootID)
	if err != nil {
		return fmt.Errorf("error fetching collection tree: %w", err)
	}

	stack := pushTreeItems(nil, roots, models.RootKey)
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := item.node
		info, err := b.remote.GetCollectionInfo(ctx, n.ID)
		if err != nil {
			return fmt.Errorf("error fetching collection %s: %w", n.ID, err)
		}

		childIDs := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			childIDs = append(childIDs, c.ID)
		}

		h.Append(item.parent, models.CollectionNode{
			ID:            n.ID,
			ParentID:      item.parent,
			Title:         n.Title,
			Description:   n.Description,
			Created:       info.Created,
			Icons:         info.Icons,
			SetIDs:        n.SetIDs,
			CollectionIDs: childIDs,
		})

		log.Info().Str("id", n.ID).Str("title", n.Title).Msg("collection")

		stack = pushTreeItems(stack, n.Children, n.ID)
	}

	return nil
}

// pushTreeItems pushes nodes in reverse so they pop in remote order.
func pushTreeItems(stack []treeItem, nodes []models.CollectionTreeNode, parent string) []treeItem {
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, treeItem{node: nodes[i], parent: parent})
	}
	return stack
}
