// Package auth issues and verifies identity tokens and hashes and checks
// user passwords.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
)

// TokenService signs and verifies identity tokens for a numeric subject id.
type TokenService interface {
	// Sign encodes subjectID into a signed token.
	Sign(ctx context.Context, subjectID int64) (string, error)

	// Verify decodes a token produced by Sign. It returns ErrInvalidToken when
	// the token is malformed or was not signed with the configured key.
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Claims is the decoded payload of a verified token.
type Claims struct {
	// ID is the subject the token was issued for.
	ID       int64
	IssuedAt time.Time
	TokenID  string
}

// Options configures a TokenService.
type Options struct {
	// PrivateKey is the HMAC secret used for both signing and verification.
	PrivateKey string
}

// tokenClaims is the wire form of the payload.
type tokenClaims struct {
	SubjectID int64 `json:"id"`
	jwt.RegisteredClaims
}

type hmacTokenService struct {
	signingKey []byte
	timeFunc   func() time.Time // Injectable for testing
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService signing with HMAC-SHA256.
// A missing key is a configuration error reported here, never at Sign time.
func NewTokenService(opts Options) (TokenService, error) {
	if opts.PrivateKey == "" {
		return nil, ErrMissingPrivateKey
	}

	return &hmacTokenService{
		signingKey: []byte(opts.PrivateKey),
		timeFunc:   time.Now,
	}, nil
}

// Sign creates a signed token whose payload carries {"id": subjectID}.
func (s *hmacTokenService) Sign(ctx context.Context, subjectID int64) (string, error) {
	claims := tokenClaims{
		SubjectID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.timeFunc()),
			ID:       uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign token",
			"error", err,
			"subject_id", subjectID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signed, nil
}

// Verify validates the signature and algorithm of token and extracts its claims.
func (s *hmacTokenService) Verify(ctx context.Context, token string) (*Claims, error) {
	log := logger.FromContext(ctx)

	parsed, err := jwt.ParseWithClaims(
		token,
		&tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token verification failed: malformed token", "error", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token verification failed: invalid signature", "error", err)
		default:
			log.Debug("token verification failed", "error", err, "error_type", fmt.Sprintf("%T", err))
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || claims.SubjectID <= 0 {
		log.Debug("token verification failed: missing subject")
		return nil, ErrInvalidToken
	}

	out := &Claims{
		ID:      claims.SubjectID,
		TokenID: claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
