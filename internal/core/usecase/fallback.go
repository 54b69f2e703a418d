package usecase

import (
	"context"
	"listings-service/internal/core/domain"
)

// fallbackList - демо-набор, обернутый в результат с флагом источника.
func fallbackList() domain.PropertyList {
	return domain.PropertyList{
		Properties: domain.FallbackProperties(),
		Source:     domain.SourceFallback,
	}
}

// noopEvents используется, когда публикация событий отключена.
type noopEvents struct{}

func (noopEvents) PropertyCreated(ctx context.Context, property domain.Property) error { return nil }
func (noopEvents) PropertyUpdated(ctx context.Context, property domain.Property) error { return nil }
func (noopEvents) PropertiesDeleted(ctx context.Context, ids []string) error            { return nil }
