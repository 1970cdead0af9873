package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UserRole identifies the kind of account a user holds.
type UserRole string

// Account kinds a user can register as.
const (
	RoleListener UserRole = "Listener"
	RoleHost     UserRole = "Host"
	RoleAdmin    UserRole = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleListener, RoleHost, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole converts s into a UserRole, rejecting unknown values.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return role, nil
}

// User represents a registered account.
//
// Password holds the bcrypt hash once the user has been persisted; the
// account service hashes any plaintext before handing the user to a store.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates an unsaved User. The ID is assigned by the store on insert.
func NewUser(email, password string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyEmail)
	}
	if err := validate.Var(u.Email, "email"); err != nil {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	if u.Password == "" {
		return NewValidationError("password", "cannot be empty", ErrEmptyPassword)
	}
	if !u.Role.Valid() {
		return NewValidationError("role", "must be one of Listener, Host, Admin", ErrInvalidRole)
	}
	return nil
}
