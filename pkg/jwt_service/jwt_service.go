package jwtservice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/studyos/internal/api"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

const (
	TypeAccess  = api.TokenTypeAccess
	TypeRefresh = api.TokenTypeRefresh
)

var (
	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// New creates the service. Non-positive TTLs fall back to 30 minutes for
// access tokens and 7 days for refresh tokens.
func New(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *JWTService) GenerateTokenPair(user *entity.User) (*api.TokenPair, error) {
	access, err := s.GenerateToken(user, TypeAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.GenerateToken(user, TypeRefresh)
	if err != nil {
		return nil, err
	}
	return &api.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

func (s *JWTService) GenerateToken(user *entity.User, tokenType string) (string, error) {
	return s.sign(user.ID.String(), user.Email, user.Role, tokenType)
}

func (s *JWTService) sign(uid, email, role, tokenType string) (string, error) {
	now := s.now()
	ttl := s.accessTTL
	if tokenType == TypeRefresh {
		ttl = s.refreshTTL
	}
	claims := &api.JWTClaims{
		UserID:    uid,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *JWTService) Refresh(refreshToken string) (string, error) {
	claims, err := s.ParseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != TypeRefresh {
		return "", errorvalues.ErrInvalidTokenType
	}
	return s.sign(claims.UserID, claims.Email, claims.Role, TypeAccess)
}
