package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/natembeza/curalink/internal/domain/entity"
)

// JWTManager issues and verifies HS256 access tokens. The secret is
// injected at construction and read-only afterwards; rotating it
// invalidates every outstanding token.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a manager with the given signing secret and token lifetime.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// GenerateAccessToken issues a signed token carrying the user ID as
// subject and the user's role, expiring after the configured TTL.
func (m *JWTManager) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("signing secret is not configured")
	}
	now := time.Now()
	claims := &entity.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken validates a token's signature and expiry and returns its
// claims. Failures map to the entity token errors so callers can
// distinguish them internally; the HTTP layer collapses them to one 401.
func (m *JWTManager) VerifyToken(tokenStr string) (*entity.Claims, error) {
	claims := &entity.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, entity.ErrTokenInvalidSignature
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, entity.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, entity.ErrTokenInvalidSignature
		default:
			return nil, entity.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, entity.ErrTokenMalformed
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	return claims, nil
}
