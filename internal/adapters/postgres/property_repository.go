package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const selectColumns = `id, title, COALESCE(description, ''), price::float8, location, property_type, status,
	bedrooms, bathrooms, COALESCE(area, ''), features, images, created_at, updated_at`

// querier - часть *pgxpool.Pool, которой пользуется репозиторий.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PropertyRepository - реализация PropertyStorePort для прямого подключения к PostgreSQL.
type PropertyRepository struct {
	pool  querier
	table string // уже экранированное имя таблицы
	now   func() time.Time
}

var _ port.PropertyStorePort = (*PropertyRepository)(nil)

func NewPropertyRepository(pool *pgxpool.Pool, table string) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return newPropertyRepository(pool, table), nil
}

func newPropertyRepository(db querier, table string) *PropertyRepository {
	if table == "" {
		table = "properties"
	}
	return &PropertyRepository{
		pool:  db,
		table: pgx.Identifier{table}.Sanitize(),
		now:   time.Now,
	}
}

// Migrate создает таблицу properties, если ее еще нет.
func (r *PropertyRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply properties schema: %w", err)
	}
	return nil
}

func (r *PropertyRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    method,
	})
}

func (r *PropertyRepository) Ping(ctx context.Context) error {
	query := fmt.Sprintf("SELECT id FROM %s LIMIT 1", r.table)
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query).Scan(&id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		r.logger(ctx, "Ping").Debug("Store ping failed", port.Fields{"error": err.Error()})
		return mapError(err)
	}
	return nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC", selectColumns, r.table)
	return r.queryProperties(ctx, "List", query)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	repoLogger := r.logger(ctx, "GetByID").WithFields(port.Fields{"property_id": id})

	parsed, err := uuid.Parse(id)
	if err != nil {
		// Не UUID, значит такой строки в таблице быть не может.
		return nil, domain.ErrPropertyNotFound
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectColumns, r.table)
	p, err := scanProperty(r.pool.QueryRow(ctx, query, parsed))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Error("Failed to find property by ID", err, port.Fields{"query": query})
		}
		return nil, mapError(err)
	}
	return p, nil
}

func (r *PropertyRepository) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Property, error) {
	where, args := applyFilters(filters)
	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY created_at DESC", selectColumns, r.table, where)
	return r.queryProperties(ctx, "Search", query, args...)
}

func (r *PropertyRepository) ListPriceStatus(ctx context.Context) ([]domain.PriceStatus, error) {
	repoLogger := r.logger(ctx, "ListPriceStatus")
	query := fmt.Sprintf("SELECT status, price::float8 FROM %s", r.table)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query price and status", err, port.Fields{"query": query})
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]domain.PriceStatus, 0)
	for rows.Next() {
		var ps domain.PriceStatus
		if err := rows.Scan(&ps.Status, &ps.Price); err != nil {
			repoLogger.Error("Failed to scan price and status row", err, nil)
			return nil, mapError(err)
		}
		result = append(result, ps)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during price and status iteration", err, nil)
		return nil, mapError(err)
	}
	return result, nil
}

func (r *PropertyRepository) Insert(ctx context.Context, property domain.NewProperty) (*domain.Property, error) {
	repoLogger := r.logger(ctx, "Insert")

	status := property.Status
	if status == "" {
		status = domain.StatusForSale
	}
	now := r.now().UTC()

	query := fmt.Sprintf(`INSERT INTO %s
		(id, title, description, price, location, property_type, status, bedrooms, bathrooms, area, features, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING %s`, r.table, selectColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query,
		uuid.New(),
		property.Title,
		property.Description,
		property.Price,
		property.Location,
		property.PropertyType,
		status,
		property.Bedrooms,
		property.Bathrooms,
		property.Area,
		nonNil(property.Features),
		nonNil(property.Images),
		now,
	))
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return nil, mapError(err)
	}

	repoLogger.Debug("Property inserted", port.Fields{"property_id": p.ID})
	return p, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	repoLogger := r.logger(ctx, "Update").WithFields(port.Fields{"property_id": id})

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	set := newSetBuilder()
	set.add("title", patch.Title)
	set.add("description", patch.Description)
	set.add("price", patch.Price)
	set.add("location", patch.Location)
	set.add("property_type", patch.PropertyType)
	set.add("status", patch.Status)
	set.add("bedrooms", patch.Bedrooms)
	set.add("bathrooms", patch.Bathrooms)
	set.add("area", patch.Area)
	if patch.Features != nil {
		set.add("features", nonNil(*patch.Features))
	}
	if patch.Images != nil {
		set.add("images", nonNil(*patch.Images))
	}
	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now().UTC()
	}
	set.add("updated_at", updatedAt)

	assignments, args := set.build()
	args = append(args, parsed)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s", r.table, assignments, len(args), selectColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Error("Failed to update property", err, port.Fields{"query": query})
		}
		return nil, mapError(err)
	}
	return p, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.DeleteMany(ctx, []string{id})
}

// DeleteMany удаляет все строки из набора одним запросом и возвращает число удаленных.
func (r *PropertyRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	repoLogger := r.logger(ctx, "DeleteMany").WithFields(port.Fields{"ids_count": len(ids)})

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if u, err := uuid.Parse(id); err == nil {
			parsed = append(parsed, u)
		}
	}
	if len(parsed) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ANY($1)", r.table)
	cmdTag, err := r.pool.Exec(ctx, query, parsed)
	if err != nil {
		repoLogger.Error("Failed to delete properties", err, port.Fields{"query": query})
		return 0, mapError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to delete properties that did not exist.", nil)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *PropertyRepository) queryProperties(ctx context.Context, method, query string, args ...interface{}) ([]domain.Property, error) {
	repoLogger := r.logger(ctx, method)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, mapError(err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during properties iteration", err, nil)
		return nil, mapError(err)
	}
	return result, nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var (
		p  domain.Property
		id uuid.UUID
	)
	err := row.Scan(
		&id,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Location,
		&p.PropertyType,
		&p.Status,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&p.Features,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ID = id.String()
	return &p, nil
}

// setBuilder собирает SET для частичного обновления, nil-указатели пропускаются.
type setBuilder struct {
	parts []string
	args  []interface{}
}

func newSetBuilder() *setBuilder {
	return &setBuilder{}
}

func (b *setBuilder) add(column string, value interface{}) {
	switch v := value.(type) {
	case *string:
		if v == nil {
			return
		}
		value = *v
	case *float64:
		if v == nil {
			return
		}
		value = *v
	case *int:
		if v == nil {
			return
		}
		value = *v
	}
	b.args = append(b.args, value)
	b.parts = append(b.parts, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) build() (string, []interface{}) {
	return strings.Join(b.parts, ", "), b.args
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// mapError приводит ошибки pgx к доменным.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrPropertyNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Класс 08 - проблемы соединения, 53 - нехватка ресурсов, 57 - сервер останавливается.
		if len(pgErr.Code) >= 2 {
			switch pgErr.Code[:2] {
			case "08", "53", "57":
				return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
			}
		}
		return fmt.Errorf("%w: %w", domain.ErrStoreRejected, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
