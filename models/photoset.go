package models

// Photoset is an ordered album of photos ("set").
//
// PhotoIDs keeps the remote order of the set's members.
type Photoset struct {
	ID          string
	Title       string
	Description string
	PrimaryID   string
	PhotoIDs    []string
}

// Gallery is a curated list of photos, possibly owned by other members.
type Gallery struct {
	ID          string
	Owner       string
	Title       string
	Description string
	PrimaryID   string
	Created     string
	Updated     string
	Photos      []GalleryPhoto
}

// GalleryPhoto references one photo inside a gallery.
type GalleryPhoto struct {
	ID    string
	Owner string
}
