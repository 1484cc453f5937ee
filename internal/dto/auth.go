package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the JWT claims of a respondent access token. The subject is the respondent ID.
type AuthClaims struct {
	TokenType string `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}
