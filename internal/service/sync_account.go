package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

func (s *syncService) syncContacts(ctx context.Context) error {
	contacts, err := CollectAll[models.Contact](ctx, contactsPerPage, s.remote.ListContacts,
		WithName("contacts.page"),
		pageProgress(ctx, "contacts"),
	)
	if err != nil {
		return fmt.Errorf("error fetching contacts: %w", err)
	}

	logger.FromContext(ctx).Info().Int("total", len(contacts)).Msg("contacts fetched")

	return s.output.WriteContacts(ctx, contacts)
}

func (s *syncService) syncFavorites(ctx context.Context) error {
	favorites, err := CollectAll[models.Favorite](ctx, favoritesPerPage, s.remote.ListFavorites,
		WithName("favorites.page"),
		pageProgress(ctx, "favorites"),
	)
	if err != nil {
		return fmt.Errorf("error fetching favorites: %w", err)
	}

	logger.FromContext(ctx).Info().Int("total", len(favorites)).Msg("favorites fetched")

	return s.output.WriteFavorites(ctx, favorites)
}

func (s *syncService) syncGroups(ctx context.Context) error {
	groups, err := s.remote.ListPublicGroups(ctx)
	if err != nil {
		return fmt.Errorf("error fetching groups: %w", err)
	}

	logger.FromContext(ctx).Info().Int("total", len(groups)).Msg("groups fetched")

	return s.output.WriteGroups(ctx, groups)
}

// syncProfile assembles the profile eagerly from the person record, the tag
// list and the preferences.
func (s *syncService) syncProfile(ctx context.Context) error {
	person, err := s.remote.GetPerson(ctx)
	if err != nil {
		return fmt.Errorf("error fetching person: %w", err)
	}

	tags, err := s.remote.ListUserTags(ctx)
	if err != nil {
		return fmt.Errorf("error fetching tags: %w", err)
	}

	prefs, err := s.remote.GetPreferences(ctx)
	if err != nil {
		return fmt.Errorf("error fetching preferences: %w", err)
	}

	profile := models.NewProfile(person, tags, prefs)
	logger.FromContext(ctx).Info().
		Str("nsid", profile.NSID).
		Str("username", profile.Username).
		Int("tags", len(profile.Tags)).
		Msg("profile fetched")

	return s.output.WriteProfile(ctx, profile)
}
