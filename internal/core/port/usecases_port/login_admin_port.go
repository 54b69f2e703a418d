package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type LoginAdminUseCase interface {
	Execute(ctx context.Context, email, password string) (*domain.AdminUser, string, error)
}
