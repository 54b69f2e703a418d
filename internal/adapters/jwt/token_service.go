package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService - реализация TokenServicePort на HS256.
type TokenService struct {
	signingKey []byte
	issuer     string
	now        func() time.Time
}

func NewTokenService(signingKey, issuer string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	if issuer == "" {
		issuer = "listings-service"
	}
	return &TokenService{signingKey: []byte(signingKey), issuer: issuer, now: time.Now}, nil
}

type jwtCustomClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken выпускает токен администратора. Других ролей в сервисе нет.
func (s *TokenService) GenerateToken(ctx context.Context, user *domain.AdminUser, ttl time.Duration) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"email":     user.Email,
	})

	now := s.now()
	claims := &jwtCustomClaims{
		Email: user.Email,
		Role:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	serviceLogger.Debug("Token generated", port.Fields{"ttl": ttl.String()})
	return signedToken, nil
}

func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	claims := &jwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			serviceLogger.Warn("Token has expired", port.Fields{"email": claims.Email})
		} else {
			serviceLogger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{Email: claims.Email, Role: claims.Role}, nil
}
