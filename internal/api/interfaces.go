package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/studyos/pkg/entity"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type JWTServiceI interface {
	GenerateTokenPair(user *entity.User) (*TokenPair, error)
	ParseToken(tokenString string) (*JWTClaims, error)
	// Exchanges a refresh token for a new access token
	Refresh(refreshToken string) (string, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
