package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
}
