package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type DeletePropertiesUseCase interface {
	Execute(ctx context.Context, ids []string) (*domain.DeleteResult, error)
}
