package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type GetDictionariesUseCase interface {
	Execute(ctx context.Context) domain.Dictionaries
}
