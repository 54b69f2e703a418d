package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
}

func NewCreatePropertyUseCase(store port.PropertyStorePort, events port.PropertyEventsPort) *CreatePropertyUseCase {
	if events == nil {
		events = noopEvents{}
	}
	return &CreatePropertyUseCase{store: store, events: events}
}

// Execute вставляет одну строку. Локальной записи нет: демо-набор только для чтения,
// поэтому любая ошибка хранилища возвращается вызывающему.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property domain.NewProperty) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"title":    property.Title,
	})

	ucLogger.Info("Use case started", nil)

	created, err := uc.store.Insert(ctx, property)
	if err != nil {
		ucLogger.Error("Store failed to create property", err, nil)
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"property_id": created.ID})
	if err := uc.events.PropertyCreated(ctx, *created); err != nil {
		// Событие не критично для администратора, объект уже сохранен.
		ucLogger.Error("Failed to publish property created event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return created, nil
}
