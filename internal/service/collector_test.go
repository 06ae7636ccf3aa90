package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/photo-backup/models"
)

// pagedListing serves pre-built pages and counts the calls.
type pagedListing struct {
	pages []models.Page[string]
	errAt int
	calls int
}

func (l *pagedListing) fetch(_ context.Context, page, _ int) (models.Page[string], error) {
	l.calls++
	if l.errAt == page {
		return models.Page[string]{}, errors.New("remote unavailable")
	}
	return l.pages[page-1], nil
}

func TestCollectAll_RereadsPageCount(t *testing.T) {
	// the listing grows by one page while it is walked
	l := &pagedListing{pages: []models.Page[string]{
		{Items: []string{"a", "b"}, Page: 1, Pages: 2},
		{Items: []string{"c", "d"}, Page: 2, Pages: 3},
		{Items: []string{"e"}, Page: 3, Pages: 3},
	}}

	var seen [][2]int
	items, err := CollectAll[string](context.Background(), 2, l.fetch,
		OnPage(func(page, pages int) { seen = append(seen, [2]int{page, pages}) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	assert.Equal(t, 3, l.calls)
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}, {3, 3}}, seen)
}

func TestCollectAll_ShrinkingListingStops(t *testing.T) {
	l := &pagedListing{pages: []models.Page[string]{
		{Items: []string{"a"}, Page: 1, Pages: 3},
		{Items: []string{"b"}, Page: 2, Pages: 2},
		{Items: []string{"never"}, Page: 3, Pages: 3},
	}}

	items, err := CollectAll[string](context.Background(), 1, l.fetch)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, 2, l.calls)
}

func TestCollectAll_EmptyListing(t *testing.T) {
	l := &pagedListing{pages: []models.Page[string]{{Page: 1, Pages: 0}}}

	items, err := CollectAll[string](context.Background(), 10, l.fetch)
	require.NoError(t, err)

	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 1, l.calls)
}

func TestCollectAll_ErrorEndsWalk(t *testing.T) {
	l := &pagedListing{
		pages: []models.Page[string]{
			{Items: []string{"a"}, Page: 1, Pages: 3},
		},
		errAt: 2,
	}

	items, err := CollectAll[string](context.Background(), 1, l.fetch)
	assert.Error(t, err)
	assert.Nil(t, items)
	assert.Equal(t, 2, l.calls)
}

func TestPages_StopsWhenConsumerBreaks(t *testing.T) {
	l := &pagedListing{pages: []models.Page[string]{
		{Items: []string{"a", "b"}, Page: 1, Pages: 2},
		{Items: []string{"c"}, Page: 2, Pages: 2},
	}}

	var got []string
	for item, err := range Pages[string](context.Background(), 2, l.fetch, WithName("test.page")) {
		require.NoError(t, err)
		got = append(got, item)
		if item == "a" {
			break
		}
	}

	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 1, l.calls)
}
