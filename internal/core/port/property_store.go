package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// PropertyStorePort - контракт хранилища объявлений (удаленный сервис данных или PostgreSQL).
// Ошибки адаптеры приводят к domain.ErrStoreUnavailable, domain.ErrStoreRejected
// или domain.ErrPropertyNotFound.
type PropertyStorePort interface {
	// Ping - минимальный запрос (один id), проверяющий доступность хранилища.
	Ping(ctx context.Context) error

	List(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error)
	ListPriceStatus(ctx context.Context) ([]domain.PriceStatus, error)

	Insert(ctx context.Context, property domain.NewProperty) (*domain.Property, error)
	Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
	// Delete и DeleteMany возвращают число удаленных строк; 0 не считается ошибкой.
	Delete(ctx context.Context, id string) (int64, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
