package entity

import "github.com/golang-jwt/jwt/v5"

// Claims are the decoded contents of an access token.
type Claims struct {
	UserID string   `json:"sub"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
