package sqlstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
)

const (
	sqlInsertUser = `
		INSERT INTO users (email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id`

	sqlSelectUser = `
		SELECT id, email, password, role, created_at, updated_at
		FROM   users`

	sqlUpdateUser = `
		UPDATE users
		SET    email = $1, password = $2, role = $3, updated_at = $4
		WHERE  id = $5`
)

// UserStore implements store.UserStore.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore on db, which may be a *sql.DB or a *sql.Tx.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	err := s.db.QueryRowContext(ctx, sqlInsertUser,
		user.Email, user.Password, string(user.Role), now,
	).Scan(&user.ID)
	if err != nil {
		return mapUniqueViolation(err, store.ErrEmailExists)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	s.logger.Debug("user inserted", "user_id", user.ID)
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getOne(ctx, sqlSelectUser+` WHERE id = $1`, id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, sqlSelectUser+` WHERE email = $1`, email)
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, sqlUpdateUser,
		user.Email, user.Password, string(user.Role), now, user.ID,
	)
	if err != nil {
		return mapUniqueViolation(err, store.ErrEmailExists)
	}
	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	user.UpdatedAt = now
	return nil
}

func (s *UserStore) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Password, &role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err, store.ErrUserNotFound)
	}
	user.Role = domain.UserRole(role)
	return &user, nil
}
