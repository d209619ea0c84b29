package usecase

import (
	"testing"
	"time"

	"micron-api/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(secret string) *tokenService {
	return NewTokenService(utils.JWTConfig{Secret: secret, ExpiryHours: 48}).(*tokenService)
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("super-secret")

	for _, id := range []int64{1, 2, 42, 1 << 40} {
		token, expiresAt, err := s.Issue(id)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(48*time.Hour), expiresAt, 5*time.Second)

		identity, err := s.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, id, identity.UserID)
		assert.NotEmpty(t, identity.TokenID)
	}
}

func TestTokenService_TokensAreUnique(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("super-secret")

	first, _, err := s.Issue(7)
	require.NoError(t, err)
	second, _, err := s.Issue(7)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("secret")
	s.now = func() time.Time { return time.Now().Add(-49 * time.Hour) }

	token, _, err := s.Issue(5)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_StillValidJustBeforeExpiry(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("secret")
	issuedAt := time.Now().Add(-47 * time.Hour)
	s.now = func() time.Time { return issuedAt }

	token, _, err := s.Issue(5)
	require.NoError(t, err)

	s.now = time.Now
	identity, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), identity.UserID)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := newTestTokenService("right-secret").Issue(3)
	require.NoError(t, err)

	_, err = newTestTokenService("wrong-secret").Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("k")

	for _, token := range []string{"not.a.jwt", "garbage", "a.b"} {
		_, err := s.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, token)
	}
}

func TestTokenService_Missing(t *testing.T) {
	t.Parallel()

	_, err := newTestTokenService("k").Verify("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	claims := TokenClaims{
		ID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestTokenService("k").Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_RequiresExpiry(t *testing.T) {
	t.Parallel()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{ID: 1}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = newTestTokenService("k").Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_RejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	s := newTestTokenService("k")
	token, _, err := s.Issue(0)
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
