package auth

import (
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uint
	Role   enums.Role
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID uint       `json:"user_id"`
	Role   enums.Role `json:"role"`
	jwt.RegisteredClaims
}
