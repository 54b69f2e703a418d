package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type DeletePropertyUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
}

func NewDeletePropertyUseCase(store port.PropertyStorePort, events port.PropertyEventsPort) *DeletePropertyUseCase {
	if events == nil {
		events = noopEvents{}
	}
	return &DeletePropertyUseCase{store: store, events: events}
}

// Execute удаляет объект по ID. Отсутствующий ID не считается ошибкой,
// число реально удаленных строк возвращается в DeleteResult.Deleted.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id string) (*domain.DeleteResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	deleted, err := uc.store.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Store failed to delete property", err, nil)
		return nil, err
	}

	if deleted == 0 {
		ucLogger.Warn("Attempted to delete a property that did not exist", nil)
	} else if err := uc.events.PropertiesDeleted(ctx, []string{id}); err != nil {
		ucLogger.Error("Failed to publish property deleted event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"deleted": deleted})
	return &domain.DeleteResult{Requested: 1, Deleted: deleted}, nil
}
