package usecase

import (
	"context"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port/usecases_port"
)

const DefaultFeaturedLimit = 3

// ListFeaturedPropertiesUseCase - первые N объявлений для главной страницы.
type ListFeaturedPropertiesUseCase struct {
	list usecases_port.ListPropertiesUseCase
}

func NewListFeaturedPropertiesUseCase(list usecases_port.ListPropertiesUseCase) *ListFeaturedPropertiesUseCase {
	return &ListFeaturedPropertiesUseCase{list: list}
}

func (uc *ListFeaturedPropertiesUseCase) Execute(ctx context.Context, limit int) domain.PropertyList {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	result := uc.list.Execute(ctx)
	if len(result.Properties) > limit {
		result.Properties = result.Properties[:limit]
	}
	return result
}
