package store

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create inserts a new user and sets its ID.
	// The password must already be hashed; stores never see plaintext.
	// Returns ErrEmailExists if the email is already taken.
	// Returns ErrInvalidEntity if domain validation fails.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update saves every field of an existing user.
	// The caller provides the complete user, typically fetched first and then modified.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if the new email belongs to another user.
	Update(ctx context.Context, user *domain.User) error
}
