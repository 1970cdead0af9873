package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
)

const (
	sqlInsertEpisode = `
		INSERT INTO episodes (podcast_id, title, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id`

	sqlUpdateEpisode = `
		UPDATE episodes
		SET    title = $1, category = $2, updated_at = $3
		WHERE  id = $4`

	sqlDeleteEpisode = `DELETE FROM episodes WHERE id = $1`
)

// EpisodeStore implements store.EpisodeStore.
type EpisodeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.EpisodeStore = (*EpisodeStore)(nil)

// NewEpisodeStore creates an EpisodeStore on db, which may be a *sql.DB or a *sql.Tx.
func NewEpisodeStore(db store.DBTX, logger *slog.Logger) *EpisodeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EpisodeStore{
		db:     db,
		logger: logger.With(slog.String("component", "episode_store")),
	}
}

// Create implements store.EpisodeStore.Create
func (s *EpisodeStore) Create(ctx context.Context, episode *domain.Episode) error {
	if err := episode.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	err := s.db.QueryRowContext(ctx, sqlInsertEpisode,
		episode.PodcastID, episode.Title, episode.Category, now,
	).Scan(&episode.ID)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			s.logger.Debug("episode references a missing podcast", "podcast_id", episode.PodcastID)
		}
		return mapped
	}

	episode.CreatedAt = now
	episode.UpdatedAt = now
	s.logger.Debug("episode inserted", "episode_id", episode.ID, "podcast_id", episode.PodcastID)
	return nil
}

// Update implements store.EpisodeStore.Update
func (s *EpisodeStore) Update(ctx context.Context, episode *domain.Episode) error {
	if err := episode.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, sqlUpdateEpisode,
		episode.Title, episode.Category, now, episode.ID,
	)
	if err != nil {
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrEpisodeNotFound); err != nil {
		return err
	}

	episode.UpdatedAt = now
	return nil
}

// Delete implements store.EpisodeStore.Delete
func (s *EpisodeStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteEpisode, id)
	if err != nil {
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrEpisodeNotFound)
}
