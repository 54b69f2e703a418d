package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// AdminDirectoryPort ищет администратора по email. Возвращает nil, nil, если не найден.
type AdminDirectoryPort interface {
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}
