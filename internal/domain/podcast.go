package domain

import (
	"fmt"
	"time"
)

// Podcast ratings are whole numbers in the closed range [MinRating, MaxRating].
// A freshly created podcast carries rating 0 until one is set.
const (
	MinRating = 1
	MaxRating = 5
)

// Podcast is the aggregate root of the catalog. It exclusively owns its episodes.
type Podcast struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Rating    int       `json:"rating"`
	Episodes  []Episode `json:"episodes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Episode belongs to exactly one podcast; its identity is the pair
// (PodcastID, ID) and it is only reachable through its parent.
type Episode struct {
	ID        int64     `json:"id"`
	PodcastID int64     `json:"podcast_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPodcast creates an unsaved Podcast with no rating and no episodes.
func NewPodcast(title, category string) *Podcast {
	now := time.Now().UTC()
	return &Podcast{
		Title:     title,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEpisode creates an unsaved Episode attached to podcastID.
func NewEpisode(podcastID int64, title, category string) *Episode {
	now := time.Now().UTC()
	return &Episode{
		PodcastID: podcastID,
		Title:     title,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidateRating returns ErrRatingOutOfRange unless MinRating <= rating <= MaxRating.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrRatingOutOfRange, rating, MinRating, MaxRating)
	}
	return nil
}

// Validate checks if the Podcast has valid data. A zero rating is accepted
// because it marks a podcast that has not been rated yet.
func (p *Podcast) Validate() error {
	if p.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}
	if p.Category == "" {
		return NewValidationError("category", "cannot be empty", ErrEmptyCategory)
	}
	if p.Rating != 0 {
		if err := ValidateRating(p.Rating); err != nil {
			return NewValidationError("rating", "must be between 1 and 5", err)
		}
	}
	return nil
}

// FindEpisode returns the episode with the given id from the podcast's
// loaded episode collection.
func (p *Podcast) FindEpisode(episodeID int64) (*Episode, bool) {
	for i := range p.Episodes {
		if p.Episodes[i].ID == episodeID {
			return &p.Episodes[i], true
		}
	}
	return nil, false
}

// Validate checks if the Episode has valid data.
func (e *Episode) Validate() error {
	if e.PodcastID <= 0 {
		return NewValidationError("podcast_id", "must reference a podcast", ErrInvalidID)
	}
	if e.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}
	if e.Category == "" {
		return NewValidationError("category", "cannot be empty", ErrEmptyCategory)
	}
	return nil
}
