package usecase

import (
	"context"
	"errors"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type GetPropertyByIDUseCase struct {
	store port.PropertyStorePort
}

func NewGetPropertyByIDUseCase(store port.PropertyStorePort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{store: store}
}

// Execute ищет объявление в хранилище. При любой ошибке хранилища (включая "не найдено")
// объект ищется в демо-наборе. Property == nil, если его нет нигде.
func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id string) domain.PropertyLookup {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyByID",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.store.GetByID(ctx, id)
	if err == nil {
		ucLogger.Info("Property found in store", nil)
		return domain.PropertyLookup{Property: property, Source: domain.SourceStore}
	}

	if errors.Is(err, domain.ErrPropertyNotFound) {
		ucLogger.Info("Property not found in store, looking it up in fallback properties", nil)
	} else {
		ucLogger.Warn("Store is not available, looking property up in fallback properties", port.Fields{"error": err.Error()})
	}

	fallback := domain.FindFallbackProperty(id)
	if fallback == nil {
		ucLogger.Info("Property not found", nil)
	}
	return domain.PropertyLookup{Property: fallback, Source: domain.SourceFallback}
}
