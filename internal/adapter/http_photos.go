package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/photo-backup/models"
)

// headPhotoID is what the remote reports as predecessor of the first photo.
const headPhotoID = "0"

func (r *restAdapter) listPhotoIDs(ctx context.Context, method string, params map[string]string) (models.Page[string], error) {
	var resp photosResponse
	if err := r.call(ctx, method, params, &resp); err != nil {
		return models.Page[string]{}, err
	}

	items := make([]string, 0, len(resp.Photos.Photo))
	for _, p := range resp.Photos.Photo {
		items = append(items, p.ID.String())
	}

	return models.Page[string]{Items: items, Page: int(resp.Photos.Page), Pages: int(resp.Photos.Pages)}, nil
}

// ListPhotos implements [RemoteAdapter] via people.getPhotos.
func (r *restAdapter) ListPhotos(ctx context.Context, page, perPage int) (models.Page[string], error) {
	return r.listPhotoIDs(ctx, "flickr.people.getPhotos", pageParams(page, perPage, map[string]string{"user_id": r.userID}))
}

// ListPopularPhotos implements [RemoteAdapter] via stats.getPopularPhotos.
func (r *restAdapter) ListPopularPhotos(ctx context.Context, day time.Time, page, perPage int) (models.Page[string], error) {
	params := pageParams(page, perPage, map[string]string{"date": day.Format(models.DateLayout)})
	return r.listPhotoIDs(ctx, "flickr.stats.getPopularPhotos", params)
}

// GetPhotoPredecessor implements [RemoteAdapter] via photos.getContext.
func (r *restAdapter) GetPhotoPredecessor(ctx context.Context, id string) (string, error) {
	var resp struct {
		PrevPhoto idRef `json:"prevphoto"`
	}
	if err := r.call(ctx, "flickr.photos.getContext", map[string]string{"photo_id": id}, &resp); err != nil {
		return "", err
	}

	prev := resp.PrevPhoto.ID.String()
	if prev == headPhotoID {
		return "", nil
	}

	return prev, nil
}

// GetPhotoInfo implements [RemoteAdapter] via photos.getInfo.
func (r *restAdapter) GetPhotoInfo(ctx context.Context, id string) (models.PhotoInfo, error) {
	var resp struct {
		Photo struct {
			ID             flexString `json:"id"`
			Farm           flexString `json:"farm"`
			Server         flexString `json:"server"`
			License        flexString `json:"license"`
			Rotation       flexString `json:"rotation"`
			Secret         flexString `json:"secret"`
			OriginalSecret flexString `json:"originalsecret"`
			OriginalFormat flexString `json:"originalformat"`
			Media          flexString `json:"media"`
			Views          flexString `json:"views"`
			DateUploaded   flexString `json:"dateuploaded"`
			Title          content    `json:"title"`
			Description    content    `json:"description"`
			Visibility     struct {
				IsPublic flexBool `json:"ispublic"`
				IsFriend flexBool `json:"isfriend"`
				IsFamily flexBool `json:"isfamily"`
			} `json:"visibility"`
			Permissions struct {
				PermComment flexString `json:"permcomment"`
				PermAddMeta flexString `json:"permaddmeta"`
			} `json:"permissions"`
			Notes struct {
				Note []struct {
					ID      flexString `json:"id"`
					Author  flexString `json:"author"`
					X       flexInt    `json:"x"`
					Y       flexInt    `json:"y"`
					W       flexInt    `json:"w"`
					H       flexInt    `json:"h"`
					Content flexString `json:"_content"`
				} `json:"note"`
			} `json:"notes"`
			Tags struct {
				Tag []struct {
					ID      flexString `json:"id"`
					Author  flexString `json:"author"`
					Raw     flexString `json:"raw"`
					Content flexString `json:"_content"`
				} `json:"tag"`
			} `json:"tags"`
		} `json:"photo"`
	}
	if err := r.call(ctx, "flickr.photos.getInfo", map[string]string{"photo_id": id}, &resp); err != nil {
		return models.PhotoInfo{}, err
	}

	p := resp.Photo
	info := models.PhotoInfo{
		ID:             p.ID.String(),
		Farm:           p.Farm.String(),
		Server:         p.Server.String(),
		License:        p.License.String(),
		Rotation:       p.Rotation.String(),
		Secret:         p.Secret.String(),
		OriginalSecret: p.OriginalSecret.String(),
		OriginalFormat: p.OriginalFormat.String(),
		Media:          p.Media.String(),
		Views:          p.Views.String(),
		Uploaded:       p.DateUploaded.String(),
		Title:          p.Title.String(),
		Description:    p.Description.String(),
		Visibility: models.Visibility{
			Public: bool(p.Visibility.IsPublic),
			Friend: bool(p.Visibility.IsFriend),
			Family: bool(p.Visibility.IsFamily),
		},
		Permissions: models.Permissions{
			Comment: p.Permissions.PermComment.String(),
			AddMeta: p.Permissions.PermAddMeta.String(),
		},
		Notes: make([]models.Note, 0, len(p.Notes.Note)),
		Tags:  make([]models.Tag, 0, len(p.Tags.Tag)),
	}
	if info.ID == "" {
		info.ID = id
	}
	for _, n := range p.Notes.Note {
		info.Notes = append(info.Notes, models.Note{
			ID:     n.ID.String(),
			Author: n.Author.String(),
			X:      int(n.X),
			Y:      int(n.Y),
			W:      int(n.W),
			H:      int(n.H),
			Text:   n.Content.String(),
		})
	}
	for _, t := range p.Tags.Tag {
		info.Tags = append(info.Tags, models.Tag{
			ID:     t.ID.String(),
			Author: t.Author.String(),
			Raw:    t.Raw.String(),
			Text:   t.Content.String(),
		})
	}

	return info, nil
}

// GetExif implements [RemoteAdapter] via photos.getExif. Code 2 means the
// owner does not allow EXIF to be read.
func (r *restAdapter) GetExif(ctx context.Context, id, secret string) (models.Lookup[[]models.Exif], error) {
	var resp struct {
		Photo struct {
			Exif []struct {
				TagSpace   flexString `json:"tagspace"`
				TagSpaceID flexString `json:"tagspaceid"`
				Tag        flexString `json:"tag"`
				Label      flexString `json:"label"`
				Raw        content    `json:"raw"`
				Clean      content    `json:"clean"`
			} `json:"exif"`
		} `json:"photo"`
	}
	params := map[string]string{"photo_id": id}
	if secret != "" {
		params["secret"] = secret
	}
	err := r.call(ctx, "flickr.photos.getExif", params, &resp)
	switch {
	case HasCode(err, codeNotAvailable):
		return models.Unavailable[[]models.Exif](), nil
	case err != nil:
		return models.Lookup[[]models.Exif]{}, err
	}

	entries := make([]models.Exif, 0, len(resp.Photo.Exif))
	for _, e := range resp.Photo.Exif {
		entries = append(entries, models.Exif{
			TagSpace:   e.TagSpace.String(),
			TagSpaceID: e.TagSpaceID.String(),
			Tag:        e.Tag.String(),
			Label:      e.Label.String(),
			Raw:        e.Raw.String(),
			Clean:      e.Clean.String(),
		})
	}

	return models.FoundValue(entries), nil
}

// ListPhotoFavorites implements [RemoteAdapter] via photos.getFavorites.
func (r *restAdapter) ListPhotoFavorites(ctx context.Context, id string, page, perPage int) (models.Page[models.Favoriter], error) {
	var resp struct {
		Photo struct {
			pageInfo
			Person []struct {
				NSID     flexString `json:"nsid"`
				Username flexString `json:"username"`
				FaveDate flexString `json:"favedate"`
			} `json:"person"`
		} `json:"photo"`
	}
	params := pageParams(page, perPage, map[string]string{"photo_id": id})
	if err := r.call(ctx, "flickr.photos.getFavorites", params, &resp); err != nil {
		return models.Page[models.Favoriter]{}, err
	}

	items := make([]models.Favoriter, 0, len(resp.Photo.Person))
	for _, p := range resp.Photo.Person {
		items = append(items, models.Favoriter{
			NSID:     p.NSID.String(),
			Username: p.Username.String(),
			FavedAt:  p.FaveDate.String(),
		})
	}

	return models.Page[models.Favoriter]{Items: items, Page: int(resp.Photo.Page), Pages: int(resp.Photo.Pages)}, nil
}

// ListPhotoComments implements [RemoteAdapter] via photos.comments.getList.
func (r *restAdapter) ListPhotoComments(ctx context.Context, id string) ([]models.Comment, error) {
	var resp struct {
		Comments struct {
			Comment []struct {
				ID         flexString `json:"id"`
				Author     flexString `json:"author"`
				AuthorName flexString `json:"authorname"`
				DateCreate flexString `json:"datecreate"`
				Content    flexString `json:"_content"`
			} `json:"comment"`
		} `json:"comments"`
	}
	if err := r.call(ctx, "flickr.photos.comments.getList", map[string]string{"photo_id": id}, &resp); err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0, len(resp.Comments.Comment))
	for _, c := range resp.Comments.Comment {
		comments = append(comments, models.Comment{
			ID:         c.ID.String(),
			AuthorNSID: c.Author.String(),
			AuthorName: c.AuthorName.String(),
			Created:    c.DateCreate.String(),
			Text:       c.Content.String(),
		})
	}

	return comments, nil
}

// GetLocation implements [RemoteAdapter] via photos.geo.getLocation. Code 2
// means the photo has no location.
func (r *restAdapter) GetLocation(ctx context.Context, id string) (models.Lookup[models.Location], error) {
	var resp struct {
		Photo struct {
			Location struct {
				Latitude  flexString `json:"latitude"`
				Longitude flexString `json:"longitude"`
				Accuracy  flexString `json:"accuracy"`
			} `json:"location"`
		} `json:"photo"`
	}
	err := r.call(ctx, "flickr.photos.geo.getLocation", map[string]string{"photo_id": id}, &resp)
	switch {
	case HasCode(err, codeNotAvailable):
		return models.Unavailable[models.Location](), nil
	case err != nil:
		return models.Lookup[models.Location]{}, err
	}

	l := resp.Photo.Location
	return models.FoundValue(models.Location{
		Latitude:  l.Latitude.String(),
		Longitude: l.Longitude.String(),
		Accuracy:  l.Accuracy.String(),
	}), nil
}

// GetAllContexts implements [RemoteAdapter] via photos.getAllContexts.
func (r *restAdapter) GetAllContexts(ctx context.Context, id string) (models.PhotoContexts, error) {
	var resp struct {
		Set  []idRef `json:"set"`
		Pool []idRef `json:"pool"`
	}
	if err := r.call(ctx, "flickr.photos.getAllContexts", map[string]string{"photo_id": id}, &resp); err != nil {
		return models.PhotoContexts{}, err
	}

	return models.PhotoContexts{SetIDs: ids(resp.Set), PoolIDs: ids(resp.Pool)}, nil
}

// ListGalleriesForPhoto implements [RemoteAdapter] via
// galleries.getListForPhoto.
func (r *restAdapter) ListGalleriesForPhoto(ctx context.Context, id string, page, perPage int) (models.Page[string], error) {
	var resp struct {
		Galleries struct {
			pageInfo
			Gallery []idRef `json:"gallery"`
		} `json:"galleries"`
	}
	params := pageParams(page, perPage, map[string]string{"photo_id": id})
	if err := r.call(ctx, "flickr.galleries.getListForPhoto", params, &resp); err != nil {
		return models.Page[string]{}, err
	}

	return models.Page[string]{Items: ids(resp.Galleries.Gallery), Page: int(resp.Galleries.Page), Pages: int(resp.Galleries.Pages)}, nil
}

// ListPeople implements [RemoteAdapter] via photos.people.getList. The box
// is set only for people tagged on a region of the photo.
func (r *restAdapter) ListPeople(ctx context.Context, id string) ([]models.PersonTag, error) {
	var resp struct {
		People struct {
			Person []struct {
				NSID     flexString  `json:"nsid"`
				Username flexString  `json:"username"`
				RealName flexString  `json:"realname"`
				AddedBy  flexString  `json:"added_by"`
				X        *flexString `json:"x"`
				Y        flexString  `json:"y"`
				W        flexString  `json:"w"`
				H        flexString  `json:"h"`
			} `json:"person"`
		} `json:"people"`
	}
	if err := r.call(ctx, "flickr.photos.people.getList", map[string]string{"photo_id": id}, &resp); err != nil {
		return nil, err
	}

	people := make([]models.PersonTag, 0, len(resp.People.Person))
	for _, p := range resp.People.Person {
		tag := models.PersonTag{
			NSID:     p.NSID.String(),
			Username: p.Username.String(),
			RealName: p.RealName.String(),
			AddedBy:  p.AddedBy.String(),
		}
		if p.X != nil {
			tag.Box = &models.Box{X: p.X.String(), Y: p.Y.String(), W: p.W.String(), H: p.H.String()}
		}
		people = append(people, tag)
	}

	return people, nil
}
