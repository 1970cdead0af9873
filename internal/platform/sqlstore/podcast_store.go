package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
)

const (
	sqlInsertPodcast = `
		INSERT INTO podcasts (title, category, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id`

	sqlSelectPodcasts = `
		SELECT id, title, category, rating, created_at, updated_at
		FROM   podcasts`

	sqlUpdatePodcast = `
		UPDATE podcasts
		SET    title = $1, category = $2, rating = $3, updated_at = $4
		WHERE  id = $5`

	sqlDeletePodcast = `DELETE FROM podcasts WHERE id = $1`

	sqlSelectEpisodesByPodcast = `
		SELECT id, podcast_id, title, category, created_at, updated_at
		FROM   episodes
		WHERE  podcast_id = $1
		ORDER  BY id`

	sqlDeleteEpisodesByPodcast = `DELETE FROM episodes WHERE podcast_id = $1`
)

// PodcastStore implements store.PodcastStore.
// It needs a *sql.DB rather than store.DBTX because Delete opens its own transaction.
type PodcastStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.PodcastStore = (*PodcastStore)(nil)

// NewPodcastStore creates a PodcastStore on db.
func NewPodcastStore(db *sql.DB, logger *slog.Logger) *PodcastStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PodcastStore{
		db:     db,
		logger: logger.With(slog.String("component", "podcast_store")),
	}
}

// List implements store.PodcastStore.List
func (s *PodcastStore) List(ctx context.Context) ([]domain.Podcast, error) {
	rows, err := s.db.QueryContext(ctx, sqlSelectPodcasts+` ORDER BY id`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	podcasts := []domain.Podcast{}
	for rows.Next() {
		podcast, err := scanPodcast(rows)
		if err != nil {
			return nil, MapError(err)
		}
		podcasts = append(podcasts, *podcast)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return podcasts, nil
}

// Create implements store.PodcastStore.Create
func (s *PodcastStore) Create(ctx context.Context, podcast *domain.Podcast) error {
	if err := podcast.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	err := s.db.QueryRowContext(ctx, sqlInsertPodcast,
		podcast.Title, podcast.Category, podcast.Rating, now,
	).Scan(&podcast.ID)
	if err != nil {
		return MapError(err)
	}

	podcast.CreatedAt = now
	podcast.UpdatedAt = now
	s.logger.Debug("podcast inserted", "podcast_id", podcast.ID)
	return nil
}

// GetByID implements store.PodcastStore.GetByID
func (s *PodcastStore) GetByID(ctx context.Context, id int64) (*domain.Podcast, error) {
	podcast, err := scanPodcast(s.db.QueryRowContext(ctx, sqlSelectPodcasts+` WHERE id = $1`, id))
	if err != nil {
		return nil, mapNotFound(err, store.ErrPodcastNotFound)
	}

	episodes, err := listEpisodes(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	podcast.Episodes = episodes
	return podcast, nil
}

// Update implements store.PodcastStore.Update
func (s *PodcastStore) Update(ctx context.Context, podcast *domain.Podcast) error {
	if err := podcast.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, sqlUpdatePodcast,
		podcast.Title, podcast.Category, podcast.Rating, now, podcast.ID,
	)
	if err != nil {
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrPodcastNotFound); err != nil {
		return err
	}

	podcast.UpdatedAt = now
	return nil
}

// Delete implements store.PodcastStore.Delete
// Episodes are removed explicitly in the same transaction so the cascade
// does not depend on the engine enforcing foreign keys.
func (s *PodcastStore) Delete(ctx context.Context, id int64) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlDeleteEpisodesByPodcast, id); err != nil {
			return MapError(err)
		}

		result, err := tx.ExecContext(ctx, sqlDeletePodcast, id)
		if err != nil {
			return MapError(err)
		}
		if err := checkRowsAffected(result, store.ErrPodcastNotFound); err != nil {
			return err
		}

		s.logger.Debug("podcast deleted", "podcast_id", id)
		return nil
	})
}

// scanner is the subset of *sql.Row and *sql.Rows used by scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanPodcast(row scanner) (*domain.Podcast, error) {
	var p domain.Podcast
	if err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func listEpisodes(ctx context.Context, db store.DBTX, podcastID int64) ([]domain.Episode, error) {
	rows, err := db.QueryContext(ctx, sqlSelectEpisodesByPodcast, podcastID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	episodes := []domain.Episode{}
	for rows.Next() {
		var e domain.Episode
		if err := rows.Scan(&e.ID, &e.PodcastID, &e.Title, &e.Category, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, MapError(err)
		}
		episodes = append(episodes, e)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return episodes, nil
}
