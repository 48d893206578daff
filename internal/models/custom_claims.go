package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by access tokens issued by the auth service
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
