package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed or its signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingPrivateKey indicates the token service was configured without a signing key
	ErrMissingPrivateKey = errors.New("private key is required")
)
