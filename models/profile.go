package models

import (
	"slices"
	"time"
)

// Profile is the account owner's profile. It is assembled once, eagerly, from
// the person record, the tag list and the preference calls.
type Profile struct {
	NSID     string
	IsPro    bool
	Username string
	RealName string
	MboxSHA1 string
	Location string

	PhotosURL  string
	ProfileURL string
	MobileURL  string

	// FirstPhoto is the raw unix timestamp of the earliest upload.
	FirstPhoto string
	PhotoCount string
	Views      string

	// Tags are sorted.
	Tags        []string
	Preferences Preferences
}

// FirstPhotoTime parses FirstPhoto.
func (p Profile) FirstPhotoTime() time.Time {
	return UnixString(p.FirstPhoto)
}

// URLs returns the profile links keyed by name.
func (p Profile) URLs() map[string]string {
	return map[string]string{
		"photos":  p.PhotosURL,
		"profile": p.ProfileURL,
		"mobile":  p.MobileURL,
	}
}

// Preferences are the account-wide defaults.
type Preferences struct {
	ContentType   string
	GeoPerms      string
	ImportGeoExif string
	Hidden        string
	Privacy       string
	Safety        string
}

// Map returns the preferences keyed by their output name.
func (p Preferences) Map() map[string]string {
	return map[string]string{
		"contenttype":   p.ContentType,
		"geoperms":      p.GeoPerms,
		"importgeoexif": p.ImportGeoExif,
		"hidden":        p.Hidden,
		"privacy":       p.Privacy,
		"safety":        p.Safety,
	}
}

// Person is the public identity record of a member.
type Person struct {
	NSID       string
	IsPro      bool
	Username   string
	RealName   string
	MboxSHA1   string
	Location   string
	PhotosURL  string
	ProfileURL string
	MobileURL  string
	FirstPhoto string
	PhotoCount string
	Views      string
}

// NewProfile assembles a profile from its three sources. Tags are sorted so
// the remote order does not leak into the output.
func NewProfile(person Person, tags []string, prefs Preferences) Profile {
	tags = slices.Clone(tags)
	slices.Sort(tags)

	return Profile{
		NSID:        person.NSID,
		IsPro:       person.IsPro,
		Username:    person.Username,
		RealName:    person.RealName,
		MboxSHA1:    person.MboxSHA1,
		Location:    person.Location,
		PhotosURL:   person.PhotosURL,
		ProfileURL:  person.ProfileURL,
		MobileURL:   person.MobileURL,
		FirstPhoto:  person.FirstPhoto,
		PhotoCount:  person.PhotoCount,
		Views:       person.Views,
		Tags:        tags,
		Preferences: prefs,
	}
}
