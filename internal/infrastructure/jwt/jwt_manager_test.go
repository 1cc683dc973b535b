package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestGenerateAndVerifyToken(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)

	token, err := mgr.GenerateAccessToken("user-123", entity.UserRolePatient)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, entity.UserRolePatient, claims.Role)
}

func TestVerifyToken_RoleRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)

	token, err := mgr.GenerateAccessToken("user-456", entity.UserRoleResearcher)
	require.NoError(t, err)

	claims, err := mgr.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleResearcher, claims.Role)
}

// signWithExpiry builds a token with an arbitrary expiry offset, so the
// one-hour boundary can be probed from both sides.
func signWithExpiry(t *testing.T, secret string, offset time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &entity.Claims{
		UserID: "user-123",
		Role:   entity.UserRolePatient,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: gojwt.NewNumericDate(now.Add(offset)),
			IssuedAt:  gojwt.NewNumericDate(now),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifyToken_ExpiryBoundary(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)

	// A token issued 59 minutes ago (one minute of life left) is accepted.
	stillValid := signWithExpiry(t, testSecret, time.Minute)
	_, err := mgr.VerifyToken(stillValid)
	assert.NoError(t, err)

	// A token issued 61 minutes ago (one minute past expiry) is rejected.
	expired := signWithExpiry(t, testSecret, -time.Minute)
	_, err = mgr.VerifyToken(expired)
	assert.ErrorIs(t, err, entity.ErrTokenExpired)
}

func TestVerifyToken_TamperedSignature(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)

	// Signed with a different secret: signature check must fail.
	token := signWithExpiry(t, "some-other-secret", time.Hour)
	_, err := mgr.VerifyToken(token)
	assert.ErrorIs(t, err, entity.ErrTokenInvalidSignature)
}

func TestVerifyToken_Malformed(t *testing.T) {
	mgr := NewJWTManager(testSecret, time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := mgr.VerifyToken(tok)
		assert.ErrorIs(t, err, entity.ErrTokenMalformed, "token %q", tok)
	}
}

func TestGenerateAccessToken_EmptySecret(t *testing.T) {
	mgr := NewJWTManager("", time.Hour)
	_, err := mgr.GenerateAccessToken("user-123", entity.UserRolePatient)
	assert.Error(t, err)
}
