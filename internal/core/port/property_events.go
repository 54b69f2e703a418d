package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// PropertyEventsPort - исходящий порт для событий об изменении объявлений.
type PropertyEventsPort interface {
	PropertyCreated(ctx context.Context, property domain.Property) error
	PropertyUpdated(ctx context.Context, property domain.Property) error
	PropertiesDeleted(ctx context.Context, ids []string) error
}
