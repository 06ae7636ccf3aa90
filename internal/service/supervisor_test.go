package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/internal/mock"
	"github.com/MKhiriev/photo-backup/models"
)

var errTransient = errors.New("connection reset")

func TestSupervisor_Fetch_RecoversWithinAttempts(t *testing.T) {
	for failures := 0; failures < 5; failures++ {
		t.Run(fmt.Sprintf("%d failures", failures), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mock.NewMockItemFetcher(ctrl)
			photo := models.Photo{Info: models.PhotoInfo{ID: "42", Title: "sunset"}}

			if failures > 0 {
				fetcher.EXPECT().FetchPhoto(gomock.Any(), "42").Return(models.Photo{}, errTransient).Times(failures)
			}
			fetcher.EXPECT().FetchPhoto(gomock.Any(), "42").Return(photo, nil).Times(1)

			got, err := NewSupervisor(fetcher, 5, 0).Fetch(context.Background(), "42")
			require.NoError(t, err)
			assert.True(t, got.Ok())
			assert.Equal(t, photo, got.Value)
		})
	}
}

func TestSupervisor_Fetch_RetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockItemFetcher(ctrl)

	fetcher.EXPECT().FetchPhoto(gomock.Any(), "42").Return(models.Photo{}, errTransient).Times(5)

	_, err := NewSupervisor(fetcher, 5, 0).Fetch(context.Background(), "42")
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, errTransient)
	assert.ErrorContains(t, err, "after 5 attempts")
}

func TestSupervisor_Fetch_SingleAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockItemFetcher(ctrl)

	fetcher.EXPECT().FetchPhoto(gomock.Any(), "42").Return(models.Photo{}, errTransient).Times(1)

	_, err := NewSupervisor(fetcher, 0, 0).Fetch(context.Background(), "42")
	assert.ErrorIs(t, err, ErrRetriesExhausted)
}

func TestSupervisor_Fetch_NotFoundIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockItemFetcher(ctrl)

	fetcher.EXPECT().FetchPhoto(gomock.Any(), "42").
		Return(models.Photo{}, fmt.Errorf("photo info: %w", adapter.ErrNotFound)).
		Times(1)

	got, err := NewSupervisor(fetcher, 5, 0).Fetch(context.Background(), "42")
	require.NoError(t, err)
	assert.False(t, got.Ok())
	assert.Equal(t, models.NotFound, got.Status)
}

func TestSupervisor_Fetch_CancelStopsRetrying(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mock.NewMockItemFetcher(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	fetcher.EXPECT().FetchPhoto(gomock.Any(), "42").
		DoAndReturn(func(ctx context.Context, _ string) (models.Photo, error) {
			cancel()
			return models.Photo{}, ctx.Err()
		}).
		Times(1)

	_, err := NewSupervisor(fetcher, 5, 0).Fetch(ctx, "42")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
}
