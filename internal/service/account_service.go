package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/redact"
	"github.com/phrazzld/podcast-api/internal/service/auth"
	"github.com/phrazzld/podcast-api/internal/store"
)

// CreateAccountInput is the registration payload.
type CreateAccountInput struct {
	Email    string
	Password string
	Role     domain.UserRole
}

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// EditProfileInput lists the profile fields to change. Nil fields are left as they are.
type EditProfileInput struct {
	Email    *string
	Password *string
}

// AccountService manages user registration, login and profiles.
type AccountService interface {
	// CreateAccount registers a new user after checking the email is free.
	CreateAccount(ctx context.Context, input CreateAccountInput) Output

	// Login verifies credentials and issues a token for the user.
	Login(ctx context.Context, input LoginInput) TokenOutput

	// FindByID returns the user with the given id.
	FindByID(ctx context.Context, id int64) UserOutput

	// EditProfile applies the present fields of input to the user.
	EditProfile(ctx context.Context, userID int64, input EditProfileInput) Output
}

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	users    store.UserStore
	tokens   auth.TokenService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService creates a new AccountService
func NewAccountService(
	users store.UserStore,
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) AccountService {
	return &AccountServiceImpl{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger.With("component", "account_service"),
	}
}

// CreateAccount probes for the email first and only then hashes the password
// and inserts the user.
func (s *AccountServiceImpl) CreateAccount(ctx context.Context, input CreateAccountInput) Output {
	user := domain.NewUser(input.Email, input.Password, input.Role)
	if err := user.Validate(); err != nil {
		s.logger.Debug("rejected invalid account", "error", err)
		return failure(KindInvalid, MsgCreateAccountFailed)
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil && existing != nil:
		s.logger.Debug("attempted to create account with existing email", "user_id", existing.ID)
		return failure(KindConflict, MsgEmailTaken)
	case err != nil && !errors.Is(err, store.ErrNotFound):
		s.logInternal(ctx, "failed to probe email", err)
		return failure(KindInternal, MsgCreateAccountFailed)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logInternal(ctx, "failed to hash password", err)
		return failure(KindInternal, MsgCreateAccountFailed)
	}
	user.Password = hashed

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("email taken between probe and insert")
			return failure(KindConflict, MsgEmailTaken)
		}
		s.logInternal(ctx, "failed to save user", err)
		return failure(KindInternal, MsgCreateAccountFailed)
	}

	s.logger.Info("account created", "user_id", user.ID, "role", user.Role)
	return success()
}

// Login resolves the user by email, checks the password and signs a token.
func (s *AccountServiceImpl) Login(ctx context.Context, input LoginInput) TokenOutput {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenOutput{Output: failure(KindUnauthorized, MsgLoginUserNotFound)}
		}
		s.logInternal(ctx, "failed to load user for login", err)
		return TokenOutput{Output: failure(KindInternal, MsgLoginFailed)}
	}

	ok, err := s.verifier.Compare(user.Password, input.Password)
	if err != nil {
		s.logInternal(ctx, "failed to verify password", err, "user_id", user.ID)
		return TokenOutput{Output: failure(KindInternal, MsgLoginFailed)}
	}
	if !ok {
		s.logger.Debug("login with wrong password", "user_id", user.ID)
		return TokenOutput{Output: failure(KindUnauthorized, MsgWrongPassword)}
	}

	token, err := s.tokens.Sign(ctx, user.ID)
	if err != nil {
		s.logInternal(ctx, "failed to sign token", err, "user_id", user.ID)
		return TokenOutput{Output: failure(KindInternal, MsgLoginFailed)}
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return TokenOutput{Output: success(), Token: token}
}

// FindByID reports every lookup failure with the same not-found message.
func (s *AccountServiceImpl) FindByID(ctx context.Context, id int64) UserOutput {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UserOutput{Output: failure(KindNotFound, MsgUserNotFound)}
		}
		s.logInternal(ctx, "failed to load user", err, "user_id", id)
		return UserOutput{Output: failure(KindInternal, MsgUserNotFound)}
	}
	return UserOutput{Output: success(), User: user}
}

// EditProfile fetches the user, merges the present fields and saves the
// complete user back. A new password is hashed before it reaches the store.
func (s *AccountServiceImpl) EditProfile(ctx context.Context, userID int64, input EditProfileInput) Output {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failure(KindNotFound, MsgProfileUserNotFound)
		}
		s.logInternal(ctx, "failed to load user for profile update", err, "user_id", userID)
		return failure(KindInternal, MsgUpdateProfileFailed)
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		// validate the plaintext before it is replaced by its hash
		user.Password = *input.Password
	}
	if err := user.Validate(); err != nil {
		s.logger.Debug("rejected invalid profile update", "error", err, "user_id", userID)
		return failure(KindInvalid, MsgUpdateProfileFailed)
	}
	if input.Password != nil {
		hashed, err := s.hasher.Hash(*input.Password)
		if err != nil {
			s.logInternal(ctx, "failed to hash password", err, "user_id", userID)
			return failure(KindInternal, MsgUpdateProfileFailed)
		}
		user.Password = hashed
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			s.logger.Debug("attempted to update to an existing email", "user_id", userID)
			return failure(KindConflict, MsgUpdateProfileFailed)
		case errors.Is(err, store.ErrNotFound):
			return failure(KindNotFound, MsgProfileUserNotFound)
		}
		s.logInternal(ctx, "failed to update user", err, "user_id", userID)
		return failure(KindInternal, MsgUpdateProfileFailed)
	}

	s.logger.Info("profile updated",
		"user_id", userID,
		"email_changed", input.Email != nil,
		"password_changed", input.Password != nil)
	return success()
}

// logInternal records an infrastructure failure. The error text is redacted
// because store errors can echo connection strings and SQL.
func (s *AccountServiceImpl) logInternal(ctx context.Context, msg string, err error, args ...any) {
	s.logger.ErrorContext(ctx, msg, append([]any{"error", redact.Error(err)}, args...)...)
}
