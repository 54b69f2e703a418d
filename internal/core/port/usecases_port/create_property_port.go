package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, property domain.NewProperty) (*domain.Property, error)
}
