package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type GetPropertyStatsUseCase struct {
	store port.PropertyStorePort
}

func NewGetPropertyStatsUseCase(store port.PropertyStorePort) *GetPropertyStatsUseCase {
	return &GetPropertyStatsUseCase{store: store}
}

// Execute пересчитывает статистику на каждом вызове.
func (uc *GetPropertyStatsUseCase) Execute(ctx context.Context) domain.StatsResult {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyStats"})

	rows, err := uc.store.ListPriceStatus(ctx)
	if err != nil {
		ucLogger.Warn("Store is not available, computing stats over fallback properties", port.Fields{"error": err.Error()})
		return domain.StatsResult{
			Stats:  domain.ComputeStats(domain.PriceStatusOf(domain.FallbackProperties())),
			Source: domain.SourceFallback,
		}
	}

	stats := domain.ComputeStats(rows)
	ucLogger.Debug("Stats computed", port.Fields{"total": stats.Total, "total_value": stats.TotalValue})
	return domain.StatsResult{Stats: stats, Source: domain.SourceStore}
}
