package store

import (
	"context"
	"maps"
	"slices"

	"github.com/MKhiriev/photo-backup/models"
)

func (o *fileOutput) WriteCollections(ctx context.Context, hierarchy models.CollectionHierarchy) error {
	w := newXMLDocument()
	w.open("collections")
	writeCollectionTree(w, hierarchy, models.RootKey)
	w.close("collections")

	return o.write(ctx, CollectionsFile, models.KindCollections, "", w.bytes())
}

// collectionStep is a worklist entry of writeCollectionTree. A closing step
// emits the set references of node and its end tag.
type collectionStep struct {
	node    models.CollectionNode
	closing bool
}

// writeCollectionTree writes the collections stored under key and all their
// descendants. Nested collections come before the set references of their
// parent; sibling order is kept.
func writeCollectionTree(w *xmlWriter, h models.CollectionHierarchy, key string) {
	stack := pushCollections(nil, h.Children(key))

	for len(stack) > 0 {
		step := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if step.closing {
			for _, sid := range step.node.SetIDs {
				w.empty("set", attr("id", sid))
			}
			w.close("collection")
			continue
		}

		n := step.node
		children := h.Children(n.ID)
		attrs := collectionAttrs(n)

		if len(children) == 0 && len(n.SetIDs) == 0 && len(n.Icons.PhotoIDs) == 0 {
			w.empty("collection", attrs...)
			continue
		}

		w.open("collection", attrs...)
		if len(n.Icons.PhotoIDs) > 0 {
			writeCollectionIcons(w, n.Icons)
		}

		stack = append(stack, collectionStep{node: n, closing: true})
		stack = pushCollections(stack, children)
	}
}

// pushCollections pushes nodes in reverse so they pop in their stored order.
func pushCollections(stack []collectionStep, nodes []models.CollectionNode) []collectionStep {
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, collectionStep{node: nodes[i]})
	}
	return stack
}

func collectionAttrs(n models.CollectionNode) []xmlAttr {
	attrs := make([]xmlAttr, 0, 6)
	attrs = append(attrs, attr("id", n.ID))
	if n.ParentID != models.RootKey {
		attrs = append(attrs, attr("parent", n.ParentID))
	}
	return append(attrs,
		attr("title", n.Title),
		attr("description", n.Description),
		attr("ctime", n.Created),
		attr("ctimestr", models.FormatUnix(n.Created)),
	)
}

func writeCollectionIcons(w *xmlWriter, icons models.CollectionIcons) {
	w.open("icons")
	for _, name := range slices.Sorted(maps.Keys(icons.Mosaic)) {
		w.empty("mosaic", attr("url", icons.Mosaic[name]), attr("name", name))
	}
	for _, id := range icons.PhotoIDs {
		w.empty("icon", attr("id", id))
	}
	w.close("icons")
}
