package api

import (
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
)

// CreateAccountRequest defines the payload for POST /api/users.
type CreateAccountRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role"     validate:"required,oneof=Listener Host Admin"`
}

func (r CreateAccountRequest) toInput() service.CreateAccountInput {
	return service.CreateAccountInput{
		Email:    r.Email,
		Password: r.Password,
		Role:     domain.UserRole(r.Role),
	}
}

// LoginRequest defines the payload for POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// EditProfileRequest defines the payload for PATCH /api/users/me.
// Absent fields are left unchanged.
type EditProfileRequest struct {
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,max=72"`
}

func (r EditProfileRequest) toInput() service.EditProfileInput {
	return service.EditProfileInput{Email: r.Email, Password: r.Password}
}

// CreatePodcastRequest defines the payload for POST /api/podcasts.
type CreatePodcastRequest struct {
	Title    string `json:"title"    validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (r CreatePodcastRequest) toInput() service.CreatePodcastInput {
	return service.CreatePodcastInput{Title: r.Title, Category: r.Category}
}

// UpdatePodcastRequest defines the payload for PATCH /api/podcasts/{id}.
// The rating range is enforced by the catalog service so its message is
// the one clients see.
type UpdatePodcastRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
}

func (r UpdatePodcastRequest) toInput() service.UpdatePodcastInput {
	return service.UpdatePodcastInput{Title: r.Title, Category: r.Category, Rating: r.Rating}
}

// CreateEpisodeRequest defines the payload for POST /api/podcasts/{id}/episodes.
type CreateEpisodeRequest struct {
	Title    string `json:"title"    validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (r CreateEpisodeRequest) toInput() service.CreateEpisodeInput {
	return service.CreateEpisodeInput{Title: r.Title, Category: r.Category}
}

// UpdateEpisodeRequest defines the payload for
// PATCH /api/podcasts/{id}/episodes/{episodeId}.
type UpdateEpisodeRequest struct {
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r UpdateEpisodeRequest) toInput() service.UpdateEpisodeInput {
	return service.UpdateEpisodeInput{Title: r.Title, Category: r.Category}
}
