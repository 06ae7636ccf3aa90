package adapter

import (
	"context"

	"github.com/MKhiriev/photo-backup/models"
)

type treeCollection struct {
	ID          flexString       `json:"id"`
	Title       flexString       `json:"title"`
	Description flexString       `json:"description"`
	Set         []idRef          `json:"set"`
	Collection  []treeCollection `json:"collection"`
}

func (c treeCollection) node() models.CollectionTreeNode {
	children := make([]models.CollectionTreeNode, 0, len(c.Collection))
	for _, child := range c.Collection {
		children = append(children, child.node())
	}

	return models.CollectionTreeNode{
		ID:          c.ID.String(),
		Title:       c.Title.String(),
		Description: c.Description.String(),
		SetIDs:      ids(c.Set),
		Children:    children,
	}
}

// GetCollectionTree implements [RemoteAdapter] via collections.getTree.
func (r *restAdapter) GetCollectionTree(ctx context.Context, rootID string) ([]models.CollectionTreeNode, error) {
	params := map[string]string{"user_id": r.userID}
	if rootID != "" {
		params["collection_id"] = rootID
	}

	var resp struct {
		Collections struct {
			Collection []treeCollection `json:"collection"`
		} `json:"collections"`
	}
	if err := r.call(ctx, "flickr.collections.getTree", params, &resp); err != nil {
		return nil, err
	}

	roots := make([]models.CollectionTreeNode, 0, len(resp.Collections.Collection))
	for _, c := range resp.Collections.Collection {
		roots = append(roots, c.node())
	}

	return roots, nil
}

// GetCollectionInfo implements [RemoteAdapter] via collections.getInfo.
func (r *restAdapter) GetCollectionInfo(ctx context.Context, id string) (models.CollectionInfo, error) {
	var resp struct {
		Collection struct {
			DateCreate flexString `json:"datecreate"`
			IconLarge  flexString `json:"iconlarge"`
			IconSmall  flexString `json:"iconsmall"`
			IconPhotos struct {
				Photo []idRef `json:"photo"`
			} `json:"iconphotos"`
		} `json:"collection"`
	}
	if err := r.call(ctx, "flickr.collections.getInfo", map[string]string{"collection_id": id}, &resp); err != nil {
		return models.CollectionInfo{}, err
	}

	c := resp.Collection
	mosaic := make(map[string]string, 2)
	if c.IconLarge != "" {
		mosaic["large"] = c.IconLarge.String()
	}
	if c.IconSmall != "" {
		mosaic["small"] = c.IconSmall.String()
	}

	return models.CollectionInfo{
		Created: c.DateCreate.String(),
		Icons: models.CollectionIcons{
			Mosaic:   mosaic,
			PhotoIDs: ids(c.IconPhotos.Photo),
		},
	}, nil
}
