package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is what a session token vouches for: an email plus whatever
// profile fields the client sent at sign-in.
type Identity struct {
	Email   string         `json:"email"`
	Profile map[string]any `json:"profile,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims
	Email   string         `json:"email"`
	Profile map[string]any `json:"profile,omitempty"`
}

func (c *Claims) Identity() Identity {
	return Identity{
		Email:   c.Email,
		Profile: c.Profile,
	}
}

type TokenResponse struct {
	Token string `json:"token"`
}
