package adapter

import (
	"context"

	"github.com/MKhiriev/photo-backup/models"
)

type contactsResponse struct {
	Contacts struct {
		pageInfo
		Contact []struct {
			NSID     flexString `json:"nsid"`
			Username flexString `json:"username"`
			RealName flexString `json:"realname"`
			Friend   flexBool   `json:"friend"`
			Family   flexBool   `json:"family"`
			Ignored  flexBool   `json:"ignored"`
		} `json:"contact"`
	} `json:"contacts"`
}

// ListContacts implements [RemoteAdapter] via contacts.getList.
func (r *restAdapter) ListContacts(ctx context.Context, page, perPage int) (models.Page[models.Contact], error) {
	var resp contactsResponse
	if err := r.call(ctx, "flickr.contacts.getList", pageParams(page, perPage, nil), &resp); err != nil {
		return models.Page[models.Contact]{}, err
	}

	items := make([]models.Contact, 0, len(resp.Contacts.Contact))
	for _, c := range resp.Contacts.Contact {
		items = append(items, models.Contact{
			NSID:     c.NSID.String(),
			Username: c.Username.String(),
			RealName: c.RealName.String(),
			Family:   bool(c.Family),
			Friend:   bool(c.Friend),
			Ignored:  bool(c.Ignored),
		})
	}

	return models.Page[models.Contact]{Items: items, Page: int(resp.Contacts.Page), Pages: int(resp.Contacts.Pages)}, nil
}

type photosResponse struct {
	Photos struct {
		pageInfo
		Photo []struct {
			ID    flexString `json:"id"`
			Owner flexString `json:"owner"`
			Title flexString `json:"title"`
		} `json:"photo"`
	} `json:"photos"`
}

// ListFavorites implements [RemoteAdapter] via favorites.getList.
func (r *restAdapter) ListFavorites(ctx context.Context, page, perPage int) (models.Page[models.Favorite], error) {
	var resp photosResponse
	params := pageParams(page, perPage, map[string]string{"user_id": r.userID})
	if err := r.call(ctx, "flickr.favorites.getList", params, &resp); err != nil {
		return models.Page[models.Favorite]{}, err
	}

	items := make([]models.Favorite, 0, len(resp.Photos.Photo))
	for _, p := range resp.Photos.Photo {
		items = append(items, models.Favorite{
			PhotoID: p.ID.String(),
			Owner:   p.Owner.String(),
			Title:   p.Title.String(),
		})
	}

	return models.Page[models.Favorite]{Items: items, Page: int(resp.Photos.Page), Pages: int(resp.Photos.Pages)}, nil
}

// ListPublicGroups implements [RemoteAdapter] via people.getPublicGroups.
func (r *restAdapter) ListPublicGroups(ctx context.Context) ([]models.Group, error) {
	var resp struct {
		Groups struct {
			Group []struct {
				NSID         flexString `json:"nsid"`
				Name         flexString `json:"name"`
				Admin        flexBool   `json:"admin"`
				EighteenPlus flexBool   `json:"eighteenplus"`
			} `json:"group"`
		} `json:"groups"`
	}
	if err := r.call(ctx, "flickr.people.getPublicGroups", map[string]string{"user_id": r.userID}, &resp); err != nil {
		return nil, err
	}

	groups := make([]models.Group, 0, len(resp.Groups.Group))
	for _, g := range resp.Groups.Group {
		groups = append(groups, models.Group{
			NSID:  g.NSID.String(),
			Name:  g.Name.String(),
			Admin: bool(g.Admin),
			Adult: bool(g.EighteenPlus),
		})
	}

	return groups, nil
}

// GetPerson implements [RemoteAdapter] via people.getInfo.
func (r *restAdapter) GetPerson(ctx context.Context) (models.Person, error) {
	var resp struct {
		Person struct {
			NSID       flexString `json:"nsid"`
			IsPro      flexBool   `json:"ispro"`
			Username   content    `json:"username"`
			RealName   content    `json:"realname"`
			MboxSHA1   content    `json:"mbox_sha1sum"`
			Location   content    `json:"location"`
			PhotosURL  content    `json:"photosurl"`
			ProfileURL content    `json:"profileurl"`
			MobileURL  content    `json:"mobileurl"`
			Photos     struct {
				FirstDate content `json:"firstdate"`
				Count     content `json:"count"`
				Views     content `json:"views"`
			} `json:"photos"`
		} `json:"person"`
	}
	if err := r.call(ctx, "flickr.people.getInfo", map[string]string{"user_id": r.userID}, &resp); err != nil {
		return models.Person{}, err
	}

	p := resp.Person
	return models.Person{
		NSID:       p.NSID.String(),
		IsPro:      bool(p.IsPro),
		Username:   p.Username.String(),
		RealName:   p.RealName.String(),
		MboxSHA1:   p.MboxSHA1.String(),
		Location:   p.Location.String(),
		PhotosURL:  p.PhotosURL.String(),
		ProfileURL: p.ProfileURL.String(),
		MobileURL:  p.MobileURL.String(),
		FirstPhoto: p.Photos.FirstDate.String(),
		PhotoCount: p.Photos.Count.String(),
		Views:      p.Photos.Views.String(),
	}, nil
}

// ListUserTags implements [RemoteAdapter] via tags.getListUser.
func (r *restAdapter) ListUserTags(ctx context.Context) ([]string, error) {
	var resp struct {
		Who struct {
			Tags struct {
				Tag []content `json:"tag"`
			} `json:"tags"`
		} `json:"who"`
	}
	if err := r.call(ctx, "flickr.tags.getListUser", map[string]string{"user_id": r.userID}, &resp); err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(resp.Who.Tags.Tag))
	for _, t := range resp.Who.Tags.Tag {
		tags = append(tags, t.String())
	}

	return tags, nil
}

type prefsResponse struct {
	Person struct {
		ContentType   flexString `json:"content_type"`
		GeoPerms      flexString `json:"geoperms"`
		ImportGeoExif flexString `json:"importgeoexif"`
		Hidden        flexString `json:"hidden"`
		Privacy       flexString `json:"privacy"`
		SafetyLevel   flexString `json:"safety_level"`
	} `json:"person"`
}

// GetPreferences implements [RemoteAdapter]. The remote exposes each
// preference group through its own method, so five calls are issued.
func (r *restAdapter) GetPreferences(ctx context.Context) (models.Preferences, error) {
	var prefs models.Preferences

	steps := []struct {
		method string
		apply  func(resp prefsResponse)
	}{
		{"flickr.prefs.getContentType", func(resp prefsResponse) { prefs.ContentType = resp.Person.ContentType.String() }},
		{"flickr.prefs.getGeoPerms", func(resp prefsResponse) {
			prefs.GeoPerms = resp.Person.GeoPerms.String()
			prefs.ImportGeoExif = resp.Person.ImportGeoExif.String()
		}},
		{"flickr.prefs.getHidden", func(resp prefsResponse) { prefs.Hidden = resp.Person.Hidden.String() }},
		{"flickr.prefs.getPrivacy", func(resp prefsResponse) { prefs.Privacy = resp.Person.Privacy.String() }},
		{"flickr.prefs.getSafetyLevel", func(resp prefsResponse) { prefs.Safety = resp.Person.SafetyLevel.String() }},
	}

	for _, step := range steps {
		var resp prefsResponse
		if err := r.call(ctx, step.method, nil, &resp); err != nil {
			return models.Preferences{}, err
		}
		step.apply(resp)
	}

	return prefs, nil
}
