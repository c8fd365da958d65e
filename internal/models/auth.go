package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries the registration payload, including the decoded
// academic profile.
type RegisterRequest struct {
	Email            string                       `json:"email" validate:"required,email"`
	Password         string                       `json:"password" validate:"required,min=8"`
	Name             string                       `json:"name" validate:"required"`
	University       string                       `json:"university" validate:"required"`
	Level            string                       `json:"level" validate:"required"`
	Interests        []string                     `json:"interests"`
	CompletedCourses map[string]CompletedCategory `json:"completed_courses"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        User      `json:"user"`
}

// JWTClaims are the claims embedded in issued access tokens.
type JWTClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
