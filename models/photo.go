// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"slices"
)

// PhotoInfo is the primary detail record of a photo.
type PhotoInfo struct {
	ID             string
	Farm           string
	Server         string
	License        string
	Rotation       string
	Secret         string
	OriginalSecret string
	OriginalFormat string
	Media          string
	Views          string
	// Uploaded is the raw unix timestamp as sent by the remote.
	Uploaded string

	Title       string
	Description string

	Visibility  Visibility
	Permissions Permissions

	Notes []Note
	Tags  []Tag
}

// Visibility flags of a photo.
type Visibility struct {
	Public bool
	Friend bool
	Family bool
}

// Permissions granted on a photo to other members.
type Permissions struct {
	Comment string
	AddMeta string
}

// Note is a boxed annotation drawn over a photo.
type Note struct {
	ID     string
	Author string
	X      int
	Y      int
	W      int
	H      int
	Text   string
}

// Tag is a tag attached to a photo.
type Tag struct {
	ID     string
	Author string
	Raw    string
	Text   string
}

// Exif is one EXIF/TIFF/IPTC entry of a photo.
type Exif struct {
	TagSpace   string
	TagSpaceID string
	Tag        string
	Label      string
	Raw        string
	Clean      string
}

// SortExif orders entries by tag space, tag space id, tag and raw value so
// repeated syncs produce identical files.
func SortExif(entries []Exif) {
	slices.SortStableFunc(entries, func(a, b Exif) int {
		return cmp.Or(
			cmp.Compare(a.TagSpace, b.TagSpace),
			cmp.Compare(a.TagSpaceID, b.TagSpaceID),
			cmp.Compare(a.Tag, b.Tag),
			cmp.Compare(a.Raw, b.Raw),
		)
	})
}

// Favoriter is a member who marked a photo as favorite.
type Favoriter struct {
	NSID     string
	Username string
	// FavedAt is the raw unix timestamp as sent by the remote.
	FavedAt string
}

// Comment left on a photo.
type Comment struct {
	ID         string
	AuthorNSID string
	AuthorName string
	// Created is the raw unix timestamp as sent by the remote.
	Created string
	Text    string
}

// Location is the geotag of a photo.
type Location struct {
	Latitude  string
	Longitude string
	Accuracy  string
}

// PhotoContexts lists everything a photo belongs to.
type PhotoContexts struct {
	SetIDs     []string
	PoolIDs    []string
	GalleryIDs []string
}

// PersonTag is a member tagged on a photo, optionally with a box.
type PersonTag struct {
	NSID     string
	Username string
	RealName string
	AddedBy  string
	Box      *Box
}

// Box is a rectangle on a photo in pixel coordinates.
type Box struct {
	X string
	Y string
	W string
	H string
}

// Photo is the aggregate record written for one photo. It is built from
// scratch on every sync and never merged with an earlier copy.
type Photo struct {
	Info      PhotoInfo
	Exif      Lookup[[]Exif]
	Favorites []Favoriter
	Comments  []Comment
	Location  Lookup[Location]
	Contexts  PhotoContexts
	People    []PersonTag
}
