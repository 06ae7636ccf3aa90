// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strconv"

	"github.com/MKhiriev/photo-backup/models"
)

func (o *fileOutput) WriteContacts(ctx context.Context, contacts []models.Contact) error {
	sorted := slices.SortedFunc(slices.Values(contacts), func(a, b models.Contact) int {
		return cmp.Compare(a.NSID, b.NSID)
	})

	w := newXMLDocument()
	w.open("contacts")
	for _, c := range sorted {
		w.empty("contact",
			attr("nsid", c.NSID),
			attr("realname", c.RealName),
			attr("username", c.Username),
			attr("family", boolAttr(c.Family)),
			attr("friend", boolAttr(c.Friend)),
			attr("ignored", boolAttr(c.Ignored)),
		)
	}
	w.close("contacts")

	return o.write(ctx, ContactsFile, models.KindContacts, "", w.bytes())
}

func (o *fileOutput) WriteFavorites(ctx context.Context, favorites []models.Favorite) error {
	sorted := slices.SortedFunc(slices.Values(favorites), func(a, b models.Favorite) int {
		return cmp.Compare(a.PhotoID, b.PhotoID)
	})

	w := newXMLDocument()
	w.open("favorites")
	for _, f := range sorted {
		w.empty("favorite",
			attr("id", f.PhotoID),
			attr("owner", f.Owner),
			attr("title", f.Title),
		)
	}
	w.close("favorites")

	return o.write(ctx, FavoritesFile, models.KindFavorites, "", w.bytes())
}

func (o *fileOutput) WriteGroups(ctx context.Context, groups []models.Group) error {
	sorted := slices.SortedFunc(slices.Values(groups), func(a, b models.Group) int {
		return cmp.Compare(a.NSID, b.NSID)
	})

	w := newXMLDocument()
	w.open("groups")
	for _, g := range sorted {
		w.empty("group",
			attr("id", g.NSID),
			attr("name", g.Name),
			attr("admin", boolAttr(g.Admin)),
			attr("adult", boolAttr(g.Adult)),
		)
	}
	w.close("groups")

	return o.write(ctx, GroupsFile, models.KindGroups, "", w.bytes())
}

func (o *fileOutput) WriteSets(ctx context.Context, sets []models.Photoset) error {
	w := newXMLDocument()
	w.open("sets")
	for _, s := range sets {
		attrs := []xmlAttr{
			attr("id", s.ID),
			attr("title", s.Title),
			attr("description", s.Description),
			attr("primary", s.PrimaryID),
		}
		if len(s.PhotoIDs) == 0 {
			w.empty("set", attrs...)
			continue
		}
		w.open("set", attrs...)
		for _, id := range s.PhotoIDs {
			w.empty("photo", attr("id", id))
		}
		w.close("set")
	}
	w.close("sets")

	return o.write(ctx, SetsFile, models.KindSets, "", w.bytes())
}

func (o *fileOutput) WriteGalleries(ctx context.Context, galleries []models.Gallery) error {
	w := newXMLDocument()
	w.open("galleries")
	for _, g := range galleries {
		attrs := []xmlAttr{
			attr("id", g.ID),
			attr("title", g.Title),
			attr("description", g.Description),
			attr("primary", g.PrimaryID),
		}
		if len(g.Photos) == 0 {
			w.empty("gallery", attrs...)
			continue
		}
		w.open("gallery", attrs...)
		for _, p := range g.Photos {
			w.empty("thing", attr("id", p.ID), attr("owner", p.Owner))
		}
		w.close("gallery")
	}
	w.close("galleries")

	return o.write(ctx, GalleriesFile, models.KindGalleries, "", w.bytes())
}

func (o *fileOutput) WritePhotoIndex(ctx context.Context, ids []string) error {
	w := newXMLDocument()
	w.open("photos")
	for _, id := range ids {
		w.empty("photo", attr("id", id))
	}
	w.close("photos")

	return o.write(ctx, PhotoIndexFile, models.KindPhotos, "", w.bytes())
}

func (o *fileOutput) WritePhoto(ctx context.Context, photo models.Photo) error {
	info := photo.Info

	w := newXMLDocument()
	w.open("photo",
		attr("id", info.ID),
		attr("farm", info.Farm),
		attr("server", info.Server),
		attr("license", info.License),
		attr("rot", info.Rotation),
		attr("secret", info.Secret),
		attr("originalsecret", info.OriginalSecret),
		attr("originalformat", info.OriginalFormat),
		attr("media", info.Media),
		attr("views", info.Views),
		attr("ispublic", boolAttr(info.Visibility.Public)),
		attr("isfriend", boolAttr(info.Visibility.Friend)),
		attr("isfamily", boolAttr(info.Visibility.Family)),
		attr("permcomment", info.Permissions.Comment),
		attr("permaddmeta", info.Permissions.AddMeta),
	)

	w.text("uploaded", models.FormatUnix(info.Uploaded), attr("raw", info.Uploaded))
	w.text("title", info.Title)
	w.text("description", info.Description)

	if photo.Location.Ok() {
		loc := photo.Location.Value
		w.empty("location",
			attr("latitude", loc.Latitude),
			attr("longitude", loc.Longitude),
			attr("accuracy", loc.Accuracy),
		)
	} else {
		w.empty("location")
	}

	writePhotoExif(w, photo.Exif)
	writePhotoContexts(w, photo.Contexts)

	writeList(w, "notes", info.Notes, func(n models.Note) {
		w.text("note", n.Text,
			attr("id", n.ID),
			attr("author", n.Author),
			attr("x", strconv.Itoa(n.X)),
			attr("y", strconv.Itoa(n.Y)),
			attr("w", strconv.Itoa(n.W)),
			attr("h", strconv.Itoa(n.H)),
		)
	})

	writeList(w, "people", photo.People, func(p models.PersonTag) {
		attrs := []xmlAttr{
			attr("nsid", p.NSID),
			attr("username", p.Username),
			attr("realname", p.RealName),
			attr("added_nsid", p.AddedBy),
		}
		if p.Box != nil {
			attrs = append(attrs,
				attr("x", p.Box.X),
				attr("y", p.Box.Y),
				attr("w", p.Box.W),
				attr("h", p.Box.H),
			)
		}
		w.empty("person", attrs...)
	})

	writeList(w, "tags", info.Tags, func(t models.Tag) {
		w.text("tag", t.Text,
			attr("id", t.ID),
			attr("author", t.Author),
			attr("raw", t.Raw),
		)
	})

	writeList(w, "favorites", photo.Favorites, func(f models.Favoriter) {
		w.empty("favorite",
			attr("nsid", f.NSID),
			attr("username", f.Username),
			attr("date", f.FavedAt),
		)
	})

	writeList(w, "comments", photo.Comments, func(c models.Comment) {
		w.text("comment", c.Text,
			attr("nsid", c.AuthorNSID),
			attr("username", c.AuthorName),
			attr("date", c.Created),
		)
	})

	w.close("photo")

	return o.write(ctx, PhotoPath(info.ID), models.KindPhotos, info.ID, w.bytes())
}

func writePhotoExif(w *xmlWriter, exif models.Lookup[[]models.Exif]) {
	if !exif.Ok() {
		w.empty("exifs")
		return
	}

	writeList(w, "exifs", exif.Value, func(e models.Exif) {
		w.empty("exif",
			attr("tagspace", e.TagSpace),
			attr("tagspaceid", e.TagSpaceID),
			attr("tag", e.Tag),
			attr("raw", e.Raw),
			attr("label", e.Label),
		)
	})
}

func writePhotoContexts(w *xmlWriter, c models.PhotoContexts) {
	if len(c.SetIDs)+len(c.PoolIDs)+len(c.GalleryIDs) == 0 {
		w.empty("contexts")
		return
	}

	w.open("contexts")
	for _, id := range c.SetIDs {
		w.empty("set", attr("id", id))
	}
	for _, id := range c.PoolIDs {
		w.empty("pool", attr("id", id))
	}
	for _, id := range c.GalleryIDs {
		w.empty("gallery", attr("id", id))
	}
	w.close("contexts")
}

// writeList writes items inside a name element, or a self-closed name
// element when there are none.
func writeList[T any](w *xmlWriter, name string, items []T, each func(T)) {
	if len(items) == 0 {
		w.empty(name)
		return
	}
	w.open(name)
	for _, item := range items {
		each(item)
	}
	w.close(name)
}

func (o *fileOutput) WriteProfile(ctx context.Context, profile models.Profile) error {
	w := newXMLDocument()
	w.open("profile",
		attr("nsid", profile.NSID),
		attr("username", profile.Username),
		attr("realname", profile.RealName),
	)

	w.text("mbox", profile.MboxSHA1)
	w.text("location", profile.Location)
	w.empty("firstphoto",
		attr("date", profile.FirstPhoto),
		attr("datestr", models.FormatUnix(profile.FirstPhoto)),
	)
	w.text("numphotos", profile.PhotoCount)
	w.text("views", profile.Views)

	prefs := profile.Preferences.Map()
	prefAttrs := make([]xmlAttr, 0, len(prefs))
	for _, k := range slices.Sorted(maps.Keys(prefs)) {
		prefAttrs = append(prefAttrs, attr(k, prefs[k]))
	}
	w.empty("preferences", prefAttrs...)

	urls := profile.URLs()
	for _, k := range slices.Sorted(maps.Keys(urls)) {
		w.text("url_"+k, urls[k])
	}

	writeList(w, "tags", profile.Tags, func(t string) {
		w.empty("tag", attr("val", t))
	})

	w.close("profile")

	return o.write(ctx, ProfileFile, models.KindProfile, profile.NSID, w.bytes())
}
