package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestTokenService(t *testing.T, secret string, now func() time.Time) TokenService {
	t.Helper()
	svc, err := NewTokenService(Options{PrivateKey: secret})
	require.NoError(t, err)
	svc.(*hmacTokenService).timeFunc = now
	return svc
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("requires private key", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTokenService(Options{})
		assert.ErrorIs(t, err, ErrMissingPrivateKey)
		assert.Nil(t, svc)
	})

	t.Run("accepts private key", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTokenService(Options{PrivateKey: testSecret})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, testSecret, func() time.Time { return fixedTime })
	ctx := context.Background()

	token, err := svc.Sign(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.NotEmpty(t, claims.TokenID)
}

func TestSignPayloadCarriesID(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, testSecret, time.Now)

	token, err := svc.Sign(context.Background(), 7)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["id"])
	assert.Equal(t, "HS256", parsed.Header["alg"])
}

func TestSignUniqueTokenIDs(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t, testSecret, time.Now)
	ctx := context.Background()

	first, err := svc.Sign(ctx, 1)
	require.NoError(t, err)
	second, err := svc.Sign(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestTokenService(t, testSecret, time.Now)
	other := newTestTokenService(t, "wrong-secret-that-is-long-enough-for-testing", time.Now)

	valid, err := svc.Sign(ctx, 3)
	require.NoError(t, err)
	foreign, err := other.Sign(ctx, 3)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 3}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"id": 3}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "wrong key", token: foreign},
		{name: "tampered signature", token: tampered},
		{name: "none algorithm", token: noneToken},
		{name: "different hmac algorithm", token: hs512},
		{name: "missing subject", token: noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			claims, err := svc.Verify(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
