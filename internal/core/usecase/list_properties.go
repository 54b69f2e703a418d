package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	store port.PropertyStorePort
}

func NewListPropertiesUseCase(store port.PropertyStorePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{store: store}
}

// Execute возвращает все объявления (новые первыми).
// Чтение никогда не падает: при ошибке или пустом ответе отдается демо-набор.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context) domain.PropertyList {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListProperties"})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.store.List(ctx)
	if err != nil {
		ucLogger.Warn("Store is not available, using fallback properties", port.Fields{"error": err.Error()})
		return fallbackList()
	}
	if len(properties) == 0 {
		ucLogger.Warn("Store returned no properties, using fallback properties", nil)
		return fallbackList()
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return domain.PropertyList{Properties: properties, Source: domain.SourceStore}
}
