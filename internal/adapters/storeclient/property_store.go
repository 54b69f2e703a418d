package storeclient

import (
	"context"
	"errors"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

const DefaultTable = "properties"

// PropertyStore реализует port.PropertyStorePort поверх удаленного хранилища.
type PropertyStore struct {
	client *Client
	table  string
}

var _ port.PropertyStorePort = (*PropertyStore)(nil)

func NewPropertyStore(client *Client, table string) *PropertyStore {
	if table == "" {
		table = DefaultTable
	}
	return &PropertyStore{client: client, table: table}
}

func (s *PropertyStore) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "StoreClientPropertyStore",
		"method":    method,
		"table":     s.table,
	})
}

func (s *PropertyStore) Ping(ctx context.Context) error {
	var rows []idRow
	if err := s.client.From(s.table).Select("id").Limit(1).Execute(ctx, &rows); err != nil {
		s.logger(ctx, "Ping").Debug("Store ping failed", port.Fields{"error": err.Error()})
		return mapError(err)
	}
	return nil
}

func (s *PropertyStore) List(ctx context.Context) ([]domain.Property, error) {
	var rows []propertyRow
	err := s.client.From(s.table).
		Select("*").
		Order("created_at", false).
		Execute(ctx, &rows)
	if err != nil {
		s.logger(ctx, "List").Error("Failed to fetch properties", err, nil)
		return nil, mapError(err)
	}
	return rowsToDomain(rows), nil
}

func (s *PropertyStore) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var row propertyRow
	err := s.client.From(s.table).
		Select("*").
		Eq("id", id).
		Single().
		Execute(ctx, &row)
	if err != nil {
		mapped := mapError(err)
		if !errors.Is(mapped, domain.ErrPropertyNotFound) {
			s.logger(ctx, "GetByID").Error("Failed to fetch property", err, port.Fields{"property_id": id})
		}
		return nil, mapped
	}
	p := row.toDomain()
	return &p, nil
}

// Search переводит каждый заданный фильтр в условие хранилища, условия объединяются через AND.
func (s *PropertyStore) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	q := s.client.From(s.table).Select("*")

	if filters.Search != "" {
		pattern := "*" + filters.Search + "*"
		q = q.Or(
			Condition("title", "ilike", pattern),
			Condition("location", "ilike", pattern),
			Condition("description", "ilike", pattern),
		)
	}
	if filters.Location != "" {
		q = q.ILike("location", "*"+filters.Location+"*")
	}
	if filters.PropertyType != "" {
		q = q.Eq("property_type", filters.PropertyType)
	}
	if filters.MinPrice != nil {
		q = q.Gte("price", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Lte("price", *filters.MaxPrice)
	}
	if filters.MinBedrooms != nil {
		q = q.Gte("bedrooms", float64(*filters.MinBedrooms))
	}
	if filters.Status != "" {
		q = q.Eq("status", filters.Status)
	}
	q = q.Order("created_at", false)

	var rows []propertyRow
	if err := q.Execute(ctx, &rows); err != nil {
		s.logger(ctx, "Search").Error("Failed to search properties", err, port.Fields{"query": q.URL()})
		return nil, mapError(err)
	}
	return rowsToDomain(rows), nil
}

func (s *PropertyStore) ListPriceStatus(ctx context.Context) ([]domain.PriceStatus, error) {
	var rows []priceStatusRow
	if err := s.client.From(s.table).Select("status,price").Execute(ctx, &rows); err != nil {
		s.logger(ctx, "ListPriceStatus").Error("Failed to fetch price and status", err, nil)
		return nil, mapError(err)
	}
	out := make([]domain.PriceStatus, len(rows))
	for i, r := range rows {
		out[i] = domain.PriceStatus{Status: r.Status, Price: r.Price}
	}
	return out, nil
}

func (s *PropertyStore) Insert(ctx context.Context, property domain.NewProperty) (*domain.Property, error) {
	var row propertyRow
	err := s.client.From(s.table).
		Insert([]insertRow{newInsertRow(property)}).
		Select("*").
		Single().
		Execute(ctx, &row)
	if err != nil {
		s.logger(ctx, "Insert").Error("Failed to insert property", err, nil)
		return nil, mapError(err)
	}
	p := row.toDomain()
	return &p, nil
}

// Update возвращает domain.ErrPropertyNotFound, если под id не нашлось строки.
func (s *PropertyStore) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	var row propertyRow
	err := s.client.From(s.table).
		Update(patchBody(patch)).
		Eq("id", id).
		Select("*").
		Single().
		Execute(ctx, &row)
	if err != nil {
		s.logger(ctx, "Update").Error("Failed to update property", err, port.Fields{"property_id": id})
		return nil, mapError(err)
	}
	p := row.toDomain()
	return &p, nil
}

func (s *PropertyStore) Delete(ctx context.Context, id string) (int64, error) {
	var rows []idRow
	err := s.client.From(s.table).
		Delete().
		Eq("id", id).
		Select("id").
		Execute(ctx, &rows)
	if err != nil {
		s.logger(ctx, "Delete").Error("Failed to delete property", err, port.Fields{"property_id": id})
		return 0, mapError(err)
	}
	return int64(len(rows)), nil
}

func (s *PropertyStore) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var rows []idRow
	err := s.client.From(s.table).
		Delete().
		In("id", ids).
		Select("id").
		Execute(ctx, &rows)
	if err != nil {
		s.logger(ctx, "DeleteMany").Error("Failed to delete properties", err, port.Fields{"ids_count": len(ids)})
		return 0, mapError(err)
	}
	return int64(len(rows)), nil
}

// mapError приводит ошибки клиента к доменным.
func mapError(err error) error {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		switch {
		case storeErr.NotFound():
			return fmt.Errorf("%w: %w", domain.ErrPropertyNotFound, err)
		case storeErr.Temporary():
			return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		default:
			return fmt.Errorf("%w: %w", domain.ErrStoreRejected, err)
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
