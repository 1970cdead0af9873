package sqlstore_test

import (
	"context"
	"testing"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/platform/sqlstore"
	"github.com/phrazzld/podcast-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeStoreUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	podcasts := sqlstore.NewPodcastStore(db, nil)
	episodes := sqlstore.NewEpisodeStore(db, nil)

	podcast := domain.NewPodcast("Go Time", "Tech")
	require.NoError(t, podcasts.Create(ctx, podcast))
	episode := domain.NewEpisode(podcast.ID, "Generics", "Tech")
	require.NoError(t, episodes.Create(ctx, episode))

	episode.Title = "Generics, revisited"
	require.NoError(t, episodes.Update(ctx, episode))

	got, err := podcasts.GetByID(ctx, podcast.ID)
	require.NoError(t, err)
	found, ok := got.FindEpisode(episode.ID)
	require.True(t, ok)
	assert.Equal(t, "Generics, revisited", found.Title)

	require.NoError(t, episodes.Delete(ctx, episode.ID))
	assert.ErrorIs(t, episodes.Delete(ctx, episode.ID), store.ErrEpisodeNotFound)

	got, err = podcasts.GetByID(ctx, podcast.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Episodes)
}

func TestEpisodeStoreMissingParent(t *testing.T) {
	ctx := context.Background()
	episodes := sqlstore.NewEpisodeStore(newTestDB(t), nil)

	err := episodes.Create(ctx, domain.NewEpisode(404, "Orphan", "Tech"))

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestEpisodeStoreUpdateMissing(t *testing.T) {
	ctx := context.Background()
	episodes := sqlstore.NewEpisodeStore(newTestDB(t), nil)

	err := episodes.Update(ctx, &domain.Episode{ID: 404, PodcastID: 1, Title: "t", Category: "c"})

	assert.ErrorIs(t, err, store.ErrEpisodeNotFound)
}
