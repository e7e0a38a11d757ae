package auth

import (
	"github.com/campuslabs/campus-events-backend/internal/users"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// RegisterRequest captures the payload for creating a new account.
type RegisterRequest struct {
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,min=8"`
	FullName   string     `json:"full_name" validate:"required"`
	Role       enums.Role `json:"role" validate:"required"`
	Department *string    `json:"department,omitempty"`
	ProfilePic *string    `json:"profile_pic,omitempty"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token and user produced by a successful login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	User        *users.UserDTO `json:"user"`
}
