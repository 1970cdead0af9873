package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/redact"
	"github.com/phrazzld/podcast-api/internal/store"
)

// CreatePodcastInput is the payload for a new podcast.
type CreatePodcastInput struct {
	Title    string
	Category string
}

// UpdatePodcastInput lists the podcast fields to change. Nil fields are left as they are.
type UpdatePodcastInput struct {
	Title    *string
	Category *string
	Rating   *int
}

// CreateEpisodeInput is the payload for a new episode.
type CreateEpisodeInput struct {
	Title    string
	Category string
}

// UpdateEpisodeInput lists the episode fields to change. Nil fields are left as they are.
type UpdateEpisodeInput struct {
	Title    *string
	Category *string
}

// CatalogService manages podcasts and the episodes they own.
// Every episode operation resolves the parent podcast first.
type CatalogService interface {
	GetAllPodcasts(ctx context.Context) PodcastsOutput
	CreatePodcast(ctx context.Context, input CreatePodcastInput) IDOutput
	GetPodcast(ctx context.Context, id int64) PodcastOutput
	DeletePodcast(ctx context.Context, id int64) Output
	UpdatePodcast(ctx context.Context, id int64, input UpdatePodcastInput) Output

	GetEpisodes(ctx context.Context, podcastID int64) EpisodesOutput
	GetEpisode(ctx context.Context, podcastID, episodeID int64) EpisodeOutput
	CreateEpisode(ctx context.Context, podcastID int64, input CreateEpisodeInput) IDOutput
	DeleteEpisode(ctx context.Context, podcastID, episodeID int64) Output
	UpdateEpisode(ctx context.Context, podcastID, episodeID int64, input UpdateEpisodeInput) Output
}

// CatalogServiceImpl implements the CatalogService interface
type CatalogServiceImpl struct {
	podcasts store.PodcastStore
	episodes store.EpisodeStore
	logger   *slog.Logger
}

var _ CatalogService = (*CatalogServiceImpl)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(podcasts store.PodcastStore, episodes store.EpisodeStore, logger *slog.Logger) CatalogService {
	return &CatalogServiceImpl{
		podcasts: podcasts,
		episodes: episodes,
		logger:   logger.With("component", "catalog_service"),
	}
}

// GetAllPodcasts lists every podcast. An empty catalog is not a failure.
func (s *CatalogServiceImpl) GetAllPodcasts(ctx context.Context) PodcastsOutput {
	podcasts, err := s.podcasts.List(ctx)
	if err != nil {
		s.logInternal(ctx, "failed to list podcasts", err)
		return PodcastsOutput{Output: internalFailure()}
	}
	if podcasts == nil {
		podcasts = []domain.Podcast{}
	}
	return PodcastsOutput{Output: success(), Podcasts: podcasts}
}

func (s *CatalogServiceImpl) CreatePodcast(ctx context.Context, input CreatePodcastInput) IDOutput {
	podcast := domain.NewPodcast(input.Title, input.Category)
	if err := podcast.Validate(); err != nil {
		return IDOutput{Output: failure(KindInvalid, err.Error())}
	}

	if err := s.podcasts.Create(ctx, podcast); err != nil {
		s.logInternal(ctx, "failed to create podcast", err)
		return IDOutput{Output: internalFailure()}
	}

	s.logger.Info("podcast created", "podcast_id", podcast.ID)
	return IDOutput{Output: success(), ID: podcast.ID}
}

// GetPodcast returns the podcast together with its episodes.
func (s *CatalogServiceImpl) GetPodcast(ctx context.Context, id int64) PodcastOutput {
	podcast, out := s.loadPodcast(ctx, id)
	if !out.OK {
		return PodcastOutput{Output: out}
	}
	return PodcastOutput{Output: out, Podcast: podcast}
}

// DeletePodcast removes the podcast and its episodes. Deleting an id that
// is already gone reports not found.
func (s *CatalogServiceImpl) DeletePodcast(ctx context.Context, id int64) Output {
	if _, out := s.loadPodcast(ctx, id); !out.OK {
		return out
	}

	if err := s.podcasts.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failure(KindNotFound, PodcastNotFoundMessage(id))
		}
		s.logInternal(ctx, "failed to delete podcast", err, "podcast_id", id)
		return internalFailure()
	}

	s.logger.Info("podcast deleted", "podcast_id", id)
	return success()
}

// UpdatePodcast merges the present fields into the stored podcast. A rating
// outside [MinRating, MaxRating] is rejected before anything is saved.
func (s *CatalogServiceImpl) UpdatePodcast(ctx context.Context, id int64, input UpdatePodcastInput) Output {
	podcast, out := s.loadPodcast(ctx, id)
	if !out.OK {
		return out
	}

	if input.Rating != nil {
		if err := domain.ValidateRating(*input.Rating); err != nil {
			return failure(KindInvalid, MsgRatingOutOfRange)
		}
		podcast.Rating = *input.Rating
	}
	if input.Title != nil {
		podcast.Title = *input.Title
	}
	if input.Category != nil {
		podcast.Category = *input.Category
	}
	if err := podcast.Validate(); err != nil {
		return failure(KindInvalid, err.Error())
	}

	if err := s.podcasts.Update(ctx, podcast); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failure(KindNotFound, PodcastNotFoundMessage(id))
		}
		s.logInternal(ctx, "failed to update podcast", err, "podcast_id", id)
		return internalFailure()
	}

	s.logger.Info("podcast updated", "podcast_id", id)
	return success()
}

func (s *CatalogServiceImpl) GetEpisodes(ctx context.Context, podcastID int64) EpisodesOutput {
	podcast, out := s.loadPodcast(ctx, podcastID)
	if !out.OK {
		return EpisodesOutput{Output: out}
	}
	episodes := podcast.Episodes
	if episodes == nil {
		episodes = []domain.Episode{}
	}
	return EpisodesOutput{Output: out, Episodes: episodes}
}

// GetEpisode returns one episode of the podcast. A podcast without any
// episodes reports the same not-found message as a missing episode id.
func (s *CatalogServiceImpl) GetEpisode(ctx context.Context, podcastID, episodeID int64) EpisodeOutput {
	episode, out := s.loadEpisode(ctx, podcastID, episodeID)
	if !out.OK {
		return EpisodeOutput{Output: out}
	}
	return EpisodeOutput{Output: out, Episode: episode}
}

func (s *CatalogServiceImpl) CreateEpisode(ctx context.Context, podcastID int64, input CreateEpisodeInput) IDOutput {
	podcast, out := s.loadPodcast(ctx, podcastID)
	if !out.OK {
		return IDOutput{Output: out}
	}

	episode := domain.NewEpisode(podcast.ID, input.Title, input.Category)
	if err := episode.Validate(); err != nil {
		return IDOutput{Output: failure(KindInvalid, err.Error())}
	}

	if err := s.episodes.Create(ctx, episode); err != nil {
		s.logInternal(ctx, "failed to create episode", err, "podcast_id", podcastID)
		return IDOutput{Output: internalFailure()}
	}

	s.logger.Info("episode created", "podcast_id", podcastID, "episode_id", episode.ID)
	return IDOutput{Output: success(), ID: episode.ID}
}

func (s *CatalogServiceImpl) DeleteEpisode(ctx context.Context, podcastID, episodeID int64) Output {
	if _, out := s.loadEpisode(ctx, podcastID, episodeID); !out.OK {
		return out
	}

	if err := s.episodes.Delete(ctx, episodeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failure(KindNotFound, EpisodeNotFoundMessage(podcastID, episodeID))
		}
		s.logInternal(ctx, "failed to delete episode", err, "podcast_id", podcastID, "episode_id", episodeID)
		return internalFailure()
	}

	s.logger.Info("episode deleted", "podcast_id", podcastID, "episode_id", episodeID)
	return success()
}

func (s *CatalogServiceImpl) UpdateEpisode(
	ctx context.Context,
	podcastID, episodeID int64,
	input UpdateEpisodeInput,
) Output {
	episode, out := s.loadEpisode(ctx, podcastID, episodeID)
	if !out.OK {
		return out
	}

	if input.Title != nil {
		episode.Title = *input.Title
	}
	if input.Category != nil {
		episode.Category = *input.Category
	}
	if err := episode.Validate(); err != nil {
		return failure(KindInvalid, err.Error())
	}

	if err := s.episodes.Update(ctx, episode); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failure(KindNotFound, EpisodeNotFoundMessage(podcastID, episodeID))
		}
		s.logInternal(ctx, "failed to update episode", err, "podcast_id", podcastID, "episode_id", episodeID)
		return internalFailure()
	}

	s.logger.Info("episode updated", "podcast_id", podcastID, "episode_id", episodeID)
	return success()
}

// loadPodcast resolves a podcast with its episodes. The returned Output is
// a failure when the podcast is missing or the store fails.
func (s *CatalogServiceImpl) loadPodcast(ctx context.Context, id int64) (*domain.Podcast, Output) {
	podcast, err := s.podcasts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, failure(KindNotFound, PodcastNotFoundMessage(id))
		}
		s.logInternal(ctx, "failed to load podcast", err, "podcast_id", id)
		return nil, internalFailure()
	}
	return podcast, success()
}

// loadEpisode resolves the parent podcast and then the episode inside it.
func (s *CatalogServiceImpl) loadEpisode(ctx context.Context, podcastID, episodeID int64) (*domain.Episode, Output) {
	podcast, out := s.loadPodcast(ctx, podcastID)
	if !out.OK {
		return nil, out
	}

	episode, ok := podcast.FindEpisode(episodeID)
	if !ok {
		return nil, failure(KindNotFound, EpisodeNotFoundMessage(podcastID, episodeID))
	}
	return episode, out
}

func (s *CatalogServiceImpl) logInternal(ctx context.Context, msg string, err error, args ...any) {
	s.logger.ErrorContext(ctx, msg, append([]any{"error", redact.Error(err)}, args...)...)
}

func internalFailure() Output {
	return failure(KindInternal, MsgInternal)
}
