package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type DeletePropertiesUseCase struct {
	store  port.PropertyStorePort
	events port.PropertyEventsPort
}

func NewDeletePropertiesUseCase(store port.PropertyStorePort, events port.PropertyEventsPort) *DeletePropertiesUseCase {
	if events == nil {
		events = noopEvents{}
	}
	return &DeletePropertiesUseCase{store: store, events: events}
}

// Execute удаляет все объекты из набора одним запросом. Частичного успеха нет:
// атомарность остается на усмотрение хранилища.
func (uc *DeletePropertiesUseCase) Execute(ctx context.Context, ids []string) (*domain.DeleteResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	unique := uniqueIDs(ids)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "DeleteProperties",
		"ids_count": len(unique),
	})

	if len(unique) == 0 {
		ucLogger.Info("Nothing to delete: empty selection", nil)
		return &domain.DeleteResult{}, nil
	}

	ucLogger.Info("Use case started", nil)

	deleted, err := uc.store.DeleteMany(ctx, unique)
	if err != nil {
		ucLogger.Error("Store failed to delete properties", err, nil)
		return nil, err
	}

	if deleted > 0 {
		if err := uc.events.PropertiesDeleted(ctx, unique); err != nil {
			ucLogger.Error("Failed to publish properties deleted event", err, nil)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"deleted": deleted})
	return &domain.DeleteResult{Requested: len(unique), Deleted: deleted}, nil
}

// uniqueIDs убирает пустые и повторяющиеся ID, сохраняя порядок.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
