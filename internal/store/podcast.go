package store

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
)

// PodcastStore defines the interface for podcast persistence.
type PodcastStore interface {
	// List returns every podcast ordered by ID, without episodes.
	List(ctx context.Context) ([]domain.Podcast, error)

	// Create inserts a new podcast and sets its ID.
	Create(ctx context.Context, podcast *domain.Podcast) error

	// GetByID retrieves a podcast together with its episodes ordered by ID.
	// Returns ErrPodcastNotFound if the podcast does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Podcast, error)

	// Update saves title, category and rating of an existing podcast.
	// Episodes are not touched.
	// Returns ErrPodcastNotFound if the podcast does not exist.
	Update(ctx context.Context, podcast *domain.Podcast) error

	// Delete removes a podcast and all of its episodes.
	// Returns ErrPodcastNotFound if the podcast does not exist.
	Delete(ctx context.Context, id int64) error
}

// EpisodeStore defines the interface for episode persistence.
// Lookups go through PodcastStore.GetByID; this store only writes.
type EpisodeStore interface {
	// Create inserts a new episode for episode.PodcastID and sets its ID.
	// Returns ErrInvalidEntity if the parent podcast does not exist.
	Create(ctx context.Context, episode *domain.Episode) error

	// Update saves title and category of an existing episode.
	// Returns ErrEpisodeNotFound if the episode does not exist.
	Update(ctx context.Context, episode *domain.Episode) error

	// Delete removes an episode by ID.
	// Returns ErrEpisodeNotFound if the episode does not exist.
	Delete(ctx context.Context, id int64) error
}
