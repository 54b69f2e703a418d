package port

import (
	"context"
	"listings-service/internal/core/domain"
	"time"
)

// TokenServicePort выпускает и проверяет токены администраторов.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.AdminUser, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
