package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type GetPropertyByIDUseCase interface {
	Execute(ctx context.Context, id string) domain.PropertyLookup
}
