package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"time"
)

type UpdatePropertyUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
	now    func() time.Time
}

func NewUpdatePropertyUseCase(store port.PropertyStorePort, events port.PropertyEventsPort) *UpdatePropertyUseCase {
	if events == nil {
		events = noopEvents{}
	}
	return &UpdatePropertyUseCase{store: store, events: events, now: time.Now}
}

// Execute применяет частичное обновление и проставляет свежий updated_at.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if patch.IsEmpty() {
		ucLogger.Warn("Update rejected: no fields to change", nil)
		return nil, domain.ErrEmptyUpdate
	}
	patch.UpdatedAt = uc.now().UTC()

	updated, err := uc.store.Update(ctx, id, patch)
	if err != nil {
		ucLogger.Error("Store failed to update property", err, nil)
		return nil, err
	}

	if err := uc.events.PropertyUpdated(ctx, *updated); err != nil {
		ucLogger.Error("Failed to publish property updated event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
