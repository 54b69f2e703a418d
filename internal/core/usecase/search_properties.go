package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type SearchPropertiesUseCase struct {
	store port.PropertyStorePort
}

func NewSearchPropertiesUseCase(store port.PropertyStorePort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{store: store}
}

// Execute переводит фильтры в условия хранилища. Если хранилище не ответило,
// те же фильтры применяются к демо-набору в памяти.
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters) domain.PropertyList {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.store.Search(ctx, filters)
	if err != nil {
		ucLogger.Warn("Store is not available, filtering fallback properties", port.Fields{"error": err.Error()})
		return domain.PropertyList{
			Properties: filters.Apply(domain.FallbackProperties()),
			Source:     domain.SourceFallback,
		}
	}

	if properties == nil {
		properties = []domain.Property{}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return domain.PropertyList{Properties: properties, Source: domain.SourceStore}
}
