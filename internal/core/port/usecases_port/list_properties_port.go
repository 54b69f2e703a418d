package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context) domain.PropertyList
}

type ListFeaturedPropertiesUseCase interface {
	Execute(ctx context.Context, limit int) domain.PropertyList
}
