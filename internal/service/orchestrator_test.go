package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/mock"
	"github.com/MKhiriev/photo-backup/internal/store"
	"github.com/MKhiriev/photo-backup/models"
)

const backupDir = "/backup"

type syncFixture struct {
	svc     SyncService
	remote  *mock.MockRemoteAdapter
	journal *mock.MockJournal
	fs      afero.Fs
	// seed writes to the same tree without touching the journal
	seed store.Output

	mu    sync.Mutex
	units []models.JournalUnit
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		remote:  mock.NewMockRemoteAdapter(ctrl),
		journal: mock.NewMockJournal(ctrl),
		fs:      afero.NewMemMapFs(),
	}
	f.seed = store.NewFileOutput(f.fs, backupDir, nil, logger.Nop())

	output := store.NewFileOutput(f.fs, backupDir, f.journal, logger.Nop())
	cfg := config.Sync{RetryAttempts: 2, RetryDelay: time.Millisecond, MaxChainDepth: 10}
	f.svc = NewSyncService(f.remote, output, f.journal, cfg, logger.Nop())

	return f
}

// expectRun registers the journal calls of one run and returns a pointer
// receiving the error passed to FinishRun.
func (f *syncFixture) expectRun(scope models.SyncScope) *error {
	var finished error

	f.journal.EXPECT().StartRun(gomock.Any(), scope.String()).
		Return(models.JournalRun{ID: "run-1", Scope: scope.String(), Status: models.RunRunning}, nil)
	f.journal.EXPECT().LastHash(gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()
	f.journal.EXPECT().RecordUnit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.JournalUnit) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.units = append(f.units, u)
			return nil
		}).AnyTimes()
	f.journal.EXPECT().FinishRun(gomock.Any(), "run-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, err error) error {
			finished = err
			return nil
		})

	return &finished
}

func (f *syncFixture) unitStatus(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.units {
		if u.Path == path {
			return u.Status
		}
	}
	return ""
}

func (f *syncFixture) unitFor(path string) (models.JournalUnit, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.units {
		if u.Path == path {
			return u, true
		}
	}
	return models.JournalUnit{}, false
}

func (f *syncFixture) readBackup(t *testing.T, name string) string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, filepath.Join(backupDir, name))
	require.NoError(t, err)
	return string(data)
}

// assertInOrder checks that every fragment occurs in doc, each after the
// previous one.
func assertInOrder(t *testing.T, doc string, fragments ...string) {
	t.Helper()
	rest := doc
	for _, fr := range fragments {
		i := strings.Index(rest, fr)
		if !assert.GreaterOrEqual(t, i, 0, "%q not found in order", fr) {
			return
		}
		rest = rest[i+len(fr):]
	}
}

func mustScope(t *testing.T, limit string, ids []string, dates string, recurse bool) models.SyncScope {
	t.Helper()
	scope, err := models.NewSyncScope(limit, ids, dates, recurse)
	require.NoError(t, err)
	return scope
}

func TestSync_InvalidScope(t *testing.T) {
	f := newSyncFixture(t)

	err := f.svc.Sync(context.Background(), models.SyncScope{Kinds: models.Kinds{}})
	assert.ErrorIs(t, err, models.ErrEmptyScope)
}

func TestSync_Preflight(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		ids     []string
		recurse bool
		seed    func(ctx context.Context, out store.Output) error
		missing []string
	}{
		{
			name:    "photos by id need the photo index",
			limit:   "p",
			ids:     []string{"42"},
			missing: []string{store.PhotoIndexFile},
		},
		{
			name:    "sets by id need the set listing",
			limit:   "s",
			ids:     []string{"72157"},
			missing: []string{store.SetsFile},
		},
		{
			name:    "recursive sets need both",
			limit:   "s",
			ids:     []string{"72157"},
			recurse: true,
			missing: []string{store.SetsFile, store.PhotoIndexFile},
		},
		{
			name:    "collections need both",
			limit:   "c",
			ids:     []string{"1-a"},
			recurse: true,
			seed: func(ctx context.Context, out store.Output) error {
				return out.WriteSets(ctx, nil)
			},
			missing: []string{store.PhotoIndexFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)
			ctx := context.Background()
			if tt.seed != nil {
				require.NoError(t, tt.seed(ctx, f.seed))
			}

			// no remote or journal call is expected
			err := f.svc.Sync(ctx, mustScope(t, tt.limit, tt.ids, "", tt.recurse))
			require.ErrorIs(t, err, ErrMissingPrerequisite)
			for _, name := range tt.missing {
				assert.ErrorContains(t, err, name)
			}
		})
	}
}

func TestSync_PhotoIDs(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	require.NoError(t, f.seed.WritePhotoIndex(ctx, []string{"10", "40"}))

	scope := mustScope(t, "p", []string{"30", "20"}, "", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().GetPhotoPredecessor(gomock.Any(), "30").Return("20", nil)
	f.remote.EXPECT().GetPhotoPredecessor(gomock.Any(), "20").Return("10", nil)
	expectPhotoCalls(f.remote, "30", models.Unavailable[[]models.Exif]())
	expectPhotoCalls(f.remote, "20", models.Unavailable[[]models.Exif]())

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	index, err := f.seed.ReadPhotoIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "30", "40"}, index)

	for _, id := range []string{"20", "30"} {
		exists, err := f.seed.Exists(store.PhotoPath(id))
		require.NoError(t, err)
		assert.True(t, exists, id)
		assert.Equal(t, models.UnitWritten, f.unitStatus(store.PhotoPath(id)))
	}
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.PhotoIndexFile))
}

func TestSync_DeletedPhotoIsSkipped(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	require.NoError(t, f.seed.WritePhotoIndex(ctx, []string{"10"}))

	scope := mustScope(t, "p", []string{"20"}, "", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().GetPhotoPredecessor(gomock.Any(), "20").Return("10", nil)
	f.remote.EXPECT().GetPhotoInfo(gomock.Any(), "20").
		Return(models.PhotoInfo{}, fmt.Errorf("photo 20: %w", adapter.ErrNotFound))

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	assert.Equal(t, models.UnitSkipped, f.unitStatus(store.PhotoPath("20")))
	exists, err := f.seed.Exists(store.PhotoPath("20"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSync_RetriesExhaustedAbortsRun(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	require.NoError(t, f.seed.WritePhotoIndex(ctx, []string{"10"}))

	scope := mustScope(t, "p", []string{"20"}, "", false)
	finished := f.expectRun(scope)
	remoteErr := errors.New("gateway timeout")

	f.remote.EXPECT().GetPhotoPredecessor(gomock.Any(), "20").Return("10", nil)
	f.remote.EXPECT().GetPhotoInfo(gomock.Any(), "20").Return(models.PhotoInfo{}, remoteErr).Times(2)

	err := f.svc.Sync(ctx, scope)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, *finished, ErrRetriesExhausted)
}

func TestSync_RemoteFailureIsRecorded(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "t", nil, "", false)
	finished := f.expectRun(scope)
	remoteErr := errors.New("remote unavailable")

	f.remote.EXPECT().ListContacts(gomock.Any(), 1, contactsPerPage).
		Return(models.Page[models.Contact]{}, remoteErr)

	err := f.svc.Sync(ctx, scope)
	assert.ErrorIs(t, err, remoteErr)
	assert.ErrorIs(t, *finished, remoteErr)
}

func TestSync_FinishRunFailureIsReturned(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	scope := mustScope(t, "r", nil, "", false)
	journalErr := errors.New("database is locked")

	f.journal.EXPECT().StartRun(gomock.Any(), scope.String()).Return(models.JournalRun{ID: "run-1"}, nil)
	f.journal.EXPECT().LastHash(gomock.Any(), store.GroupsFile).Return("", nil)
	f.journal.EXPECT().RecordUnit(gomock.Any(), gomock.Any()).Return(nil)
	f.journal.EXPECT().FinishRun(gomock.Any(), "run-1", nil).Return(journalErr)
	f.remote.EXPECT().ListPublicGroups(gomock.Any()).Return([]models.Group{{NSID: "g1@N01", Name: "Night"}}, nil)

	err := f.svc.Sync(ctx, scope)
	assert.ErrorIs(t, err, journalErr)
}

func TestSync_CollectionSubtrees(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	require.NoError(t, f.seed.WritePhotoIndex(ctx, []string{"10"}))
	require.NoError(t, f.seed.WriteSets(ctx, []models.Photoset{
		{ID: "s0", Title: "kept", PhotoIDs: []string{"10"}},
	}))

	scope := mustScope(t, "c", []string{"X", "X1", "Y"}, "", true)
	finished := f.expectRun(scope)

	f.remote.EXPECT().GetCollectionTree(gomock.Any(), "X").Return([]models.CollectionTreeNode{{
		ID:       "X",
		SetIDs:   []string{"s1"},
		Children: []models.CollectionTreeNode{{ID: "X1", SetIDs: []string{"s2"}}},
	}}, nil)
	f.remote.EXPECT().GetCollectionTree(gomock.Any(), "Y").Return([]models.CollectionTreeNode{{
		ID:     "Y",
		SetIDs: []string{"s2", "s3"},
	}}, nil)
	for _, id := range []string{"X", "X1", "Y"} {
		f.remote.EXPECT().GetCollectionInfo(gomock.Any(), id).Return(models.CollectionInfo{}, nil)
	}

	for _, id := range []string{"s1", "s2", "s3"} {
		f.remote.EXPECT().GetPhotosetInfo(gomock.Any(), id).Return(models.Photoset{ID: id, Title: "set " + id}, nil)
		f.remote.EXPECT().ListPhotosetPhotos(gomock.Any(), id, 1, photosetPhotosPerPage).
			Return(models.Page[string]{Page: 1, Pages: 1}, nil)
	}
	f.remote.EXPECT().ListPhotosets(gomock.Any(), 1, photosetsPerPage).Return(models.Page[models.Photoset]{
		Items: []models.Photoset{{ID: "s0"}, {ID: "s3"}, {ID: "s1"}, {ID: "s2"}},
		Page:  1,
		Pages: 1,
	}, nil)

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	sets, err := f.seed.ReadSets(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(sets))
	for _, s := range sets {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"s0", "s3", "s1", "s2"}, ids)
	assert.Equal(t, []string{"10"}, sets[0].PhotoIDs)
	assert.Equal(t, "set s1", sets[2].Title)

	exists, err := afero.Exists(f.fs, filepath.Join(backupDir, store.CollectionsFile))
	require.NoError(t, err)
	assert.False(t, exists, "collections.xml is only written by a full sync")
}

func TestSync_PopularPhotosLeaveIndexAlone(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "p", nil, "2026-03-01|2026-03-02", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().ListPopularPhotos(gomock.Any(), gomock.Any(), 1, popularPhotosPerPage).
		Return(models.Page[string]{Items: []string{"7"}, Page: 1, Pages: 1}, nil).
		Times(2)
	expectPhotoCalls(f.remote, "7", models.Unavailable[[]models.Exif]())

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	exists, err := f.seed.Exists(store.PhotoIndexFile)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = f.seed.Exists(store.PhotoPath("7"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSync_AllPhotos(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	require.NoError(t, f.seed.WritePhotoIndex(ctx, []string{"stale"}))

	scope := mustScope(t, "p", nil, "", false)
	finished := f.expectRun(scope)

	gomock.InOrder(
		f.remote.EXPECT().ListPhotos(gomock.Any(), 1, photosPerPage).
			Return(models.Page[string]{Items: []string{"5", "3"}, Page: 1, Pages: 2}, nil),
		f.remote.EXPECT().ListPhotos(gomock.Any(), 2, photosPerPage).
			Return(models.Page[string]{Items: []string{"1"}, Page: 2, Pages: 2}, nil),
	)
	for _, id := range []string{"5", "3", "1"} {
		expectPhotoCalls(f.remote, id, models.Unavailable[[]models.Exif]())
	}

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	index, err := f.seed.ReadPhotoIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "3", "1"}, index)
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.PhotoIndexFile))

	for _, id := range []string{"5", "3", "1"} {
		doc := f.readBackup(t, store.PhotoPath(id))
		assert.Contains(t, doc, `<title>photo `+id+`</title>`)

		u, ok := f.unitFor(store.PhotoPath(id))
		require.True(t, ok, id)
		assert.Equal(t, models.UnitWritten, u.Status)
		assert.Equal(t, models.KindPhotos, u.Kind)
		assert.Equal(t, id, u.ItemID)
		assert.Equal(t, "run-1", u.RunID)
	}
}

func TestSync_AllSets(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "s", nil, "", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().ListPhotosets(gomock.Any(), 1, photosetsPerPage).Return(models.Page[models.Photoset]{
		Items: []models.Photoset{
			{ID: "s2", Title: "Winter", PrimaryID: "20"},
			{ID: "s1", Title: "Empty"},
		},
		Page:  1,
		Pages: 1,
	}, nil)
	f.remote.EXPECT().ListPhotosetPhotos(gomock.Any(), "s2", 1, photosetPhotosPerPage).
		Return(models.Page[string]{Items: []string{"20", "21"}, Page: 1, Pages: 1}, nil)
	f.remote.EXPECT().ListPhotosetPhotos(gomock.Any(), "s1", 1, photosetPhotosPerPage).
		Return(models.Page[string]{Page: 1, Pages: 1}, nil)

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	sets, err := f.seed.ReadSets(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "s2", sets[0].ID)
	assert.Equal(t, []string{"20", "21"}, sets[0].PhotoIDs)
	assert.Equal(t, "s1", sets[1].ID)
	assert.Empty(t, sets[1].PhotoIDs)

	assertInOrder(t, f.readBackup(t, store.SetsFile),
		`<set id="s2" title="Winter" description="" primary="20">`,
		`<photo id="20" />`,
		`<photo id="21" />`,
		`</set>`,
		`<set id="s1" title="Empty" description="" primary="" />`,
	)
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.SetsFile))
}

func TestSync_AllCollections(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "c", nil, "", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().GetCollectionTree(gomock.Any(), "").Return([]models.CollectionTreeNode{
		{
			ID:       "1-a",
			Title:    "Travel",
			Children: []models.CollectionTreeNode{{ID: "1-b", Title: "Alps", SetIDs: []string{"s1"}}},
		},
		{ID: "1-c", Title: "Home", SetIDs: []string{"s2"}},
	}, nil)
	f.remote.EXPECT().GetCollectionInfo(gomock.Any(), "1-a").
		Return(models.CollectionInfo{Created: "1262304000"}, nil)
	f.remote.EXPECT().GetCollectionInfo(gomock.Any(), "1-b").Return(models.CollectionInfo{}, nil)
	f.remote.EXPECT().GetCollectionInfo(gomock.Any(), "1-c").Return(models.CollectionInfo{}, nil)

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	assertInOrder(t, f.readBackup(t, store.CollectionsFile),
		`<collection id="1-a" title="Travel" description="" ctime="1262304000" ctimestr="2010-01-01 00:00:00">`,
		`<collection id="1-b" parent="1-a" title="Alps" description="" ctime="" ctimestr="">`,
		`<set id="s1" />`,
		`</collection>`,
		`</collection>`,
		`<collection id="1-c" title="Home" description="" ctime="" ctimestr="">`,
		`<set id="s2" />`,
	)
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.CollectionsFile))
}

func TestSync_AllCollections_TreeError(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "c", nil, "", false)
	finished := f.expectRun(scope)
	remoteErr := errors.New("remote unavailable")

	f.remote.EXPECT().GetCollectionTree(gomock.Any(), "").Return(nil, remoteErr)

	err := f.svc.Sync(ctx, scope)
	assert.ErrorIs(t, err, remoteErr)
	assert.ErrorIs(t, *finished, remoteErr)

	exists, err := f.seed.Exists(store.CollectionsFile)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSync_Galleries(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "g", nil, "", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().ListGalleries(gomock.Any(), 1, galleriesPerPage).Return(models.Page[models.Gallery]{
		Items: []models.Gallery{{ID: "g2", Title: "Trees"}, {ID: "g1", Title: "Nothing yet"}},
		Page:  1,
		Pages: 1,
	}, nil)
	gomock.InOrder(
		f.remote.EXPECT().ListGalleryPhotos(gomock.Any(), "g2", 1, galleryPhotosPerPage).
			Return(models.Page[models.GalleryPhoto]{Items: []models.GalleryPhoto{{ID: "p9", Owner: "o1"}}, Page: 1, Pages: 2}, nil),
		f.remote.EXPECT().ListGalleryPhotos(gomock.Any(), "g2", 2, galleryPhotosPerPage).
			Return(models.Page[models.GalleryPhoto]{Items: []models.GalleryPhoto{{ID: "p1", Owner: "o2"}}, Page: 2, Pages: 2}, nil),
	)
	f.remote.EXPECT().ListGalleryPhotos(gomock.Any(), "g1", 1, galleryPhotosPerPage).
		Return(models.Page[models.GalleryPhoto]{Page: 1, Pages: 1}, nil)

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	assertInOrder(t, f.readBackup(t, store.GalleriesFile),
		`<gallery id="g2" title="Trees" description="" primary="">`,
		`<thing id="p9" owner="o1" />`,
		`<thing id="p1" owner="o2" />`,
		`</gallery>`,
		`<gallery id="g1" title="Nothing yet" description="" primary="" />`,
	)
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.GalleriesFile))
}

func TestSync_Favorites(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "f", nil, "", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().ListFavorites(gomock.Any(), 1, favoritesPerPage).Return(models.Page[models.Favorite]{
		Items: []models.Favorite{{PhotoID: "9", Owner: "o1@N01", Title: "Dusk"}},
		Page:  1,
		Pages: 2,
	}, nil)
	f.remote.EXPECT().ListFavorites(gomock.Any(), 2, favoritesPerPage).Return(models.Page[models.Favorite]{
		Items: []models.Favorite{{PhotoID: "7", Owner: "o2@N01", Title: "Fish & chips"}},
		Page:  2,
		Pages: 2,
	}, nil)

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	assertInOrder(t, f.readBackup(t, store.FavoritesFile),
		`<favorite id="7" owner="o2@N01" title="Fish &amp; chips" />`,
		`<favorite id="9" owner="o1@N01" title="Dusk" />`,
	)
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.FavoritesFile))
}

func TestSync_Profile(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "o", nil, "", false)
	finished := f.expectRun(scope)

	f.remote.EXPECT().GetPerson(gomock.Any()).Return(models.Person{
		NSID:       "1@N01",
		Username:   "alice",
		RealName:   "Alice",
		FirstPhoto: "1262304000",
		PhotoCount: "12",
		PhotosURL:  "https://example.com/photos/alice/",
	}, nil)
	f.remote.EXPECT().ListUserTags(gomock.Any()).Return([]string{"sea", "alps"}, nil)
	f.remote.EXPECT().GetPreferences(gomock.Any()).Return(models.Preferences{Privacy: "1", Safety: "2"}, nil)

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	assertInOrder(t, f.readBackup(t, store.ProfileFile),
		`<profile nsid="1@N01" username="alice" realname="Alice">`,
		`<firstphoto date="1262304000" datestr="2010-01-01 00:00:00" />`,
		`<numphotos>12</numphotos>`,
		`privacy="1" safety="2" />`,
		`<url_photos>https://example.com/photos/alice/</url_photos>`,
		`<tag val="alps" />`,
		`<tag val="sea" />`,
	)

	u, ok := f.unitFor(store.ProfileFile)
	require.True(t, ok)
	assert.Equal(t, models.KindProfile, u.Kind)
	assert.Equal(t, "1@N01", u.ItemID)
}

func TestSync_Profile_TagsError(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "o", nil, "", false)
	finished := f.expectRun(scope)
	remoteErr := errors.New("remote unavailable")

	f.remote.EXPECT().GetPerson(gomock.Any()).Return(models.Person{NSID: "1@N01"}, nil)
	f.remote.EXPECT().ListUserTags(gomock.Any()).Return(nil, remoteErr)

	err := f.svc.Sync(ctx, scope)
	assert.ErrorIs(t, err, remoteErr)
	assert.ErrorIs(t, *finished, remoteErr)
}

func TestSync_CollectionsAndGalleriesInOneRun(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	scope := mustScope(t, "gc", nil, "", false)
	finished := f.expectRun(scope)

	gomock.InOrder(
		f.remote.EXPECT().GetCollectionTree(gomock.Any(), "").
			Return([]models.CollectionTreeNode{{ID: "1-a", Title: "Only"}}, nil),
		f.remote.EXPECT().GetCollectionInfo(gomock.Any(), "1-a").Return(models.CollectionInfo{}, nil),
		f.remote.EXPECT().ListGalleries(gomock.Any(), 1, galleriesPerPage).
			Return(models.Page[models.Gallery]{Items: []models.Gallery{{ID: "g1", Title: "Solo"}}, Page: 1, Pages: 1}, nil),
		f.remote.EXPECT().ListGalleryPhotos(gomock.Any(), "g1", 1, galleryPhotosPerPage).
			Return(models.Page[models.GalleryPhoto]{Items: []models.GalleryPhoto{{ID: "p1", Owner: "o1"}}, Page: 1, Pages: 1}, nil),
	)

	require.NoError(t, f.svc.Sync(ctx, scope))
	assert.NoError(t, *finished)

	assert.Contains(t, f.readBackup(t, store.CollectionsFile),
		`<collection id="1-a" title="Only" description="" ctime="" ctimestr="" />`)
	assertInOrder(t, f.readBackup(t, store.GalleriesFile),
		`<gallery id="g1" title="Solo" description="" primary="">`,
		`<thing id="p1" owner="o1" />`,
	)
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.CollectionsFile))
	assert.Equal(t, models.UnitWritten, f.unitStatus(store.GalleriesFile))
}
