package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type GetPropertyStatsUseCase interface {
	Execute(ctx context.Context) domain.StatsResult
}
