package postgres

import (
	"fmt"
	"listings-service/internal/core/domain"
	"strings"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// addAnyOf добавляет условие "хотя бы одно поле похоже на arg" с одним параметром на все поля.
func (qb *queryBuilder) addAnyOf(condition string, fieldNames []string, arg interface{}) {
	parts := make([]string, len(fieldNames))
	for i, field := range fieldNames {
		parts[i] = fmt.Sprintf(condition, field, qb.argId)
	}
	qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
	qb.args = append(qb.args, arg)
	qb.argId++
}

// build возвращает WHERE (или пустую строку) и аргументы
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// likePattern экранирует спецсимволы LIKE, чтобы искалась именно подстрока.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// applyFilters разбирает фильтры поиска. Все условия объединяются через AND.
func applyFilters(filters domain.SearchFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	if filters.Search != "" {
		qb.addAnyOf("%s ILIKE $%d", []string{"title", "location", "description"}, likePattern(filters.Search))
	}
	if filters.Location != "" {
		qb.addCondition("%s ILIKE $%d", "location", likePattern(filters.Location))
	}
	if filters.PropertyType != "" {
		qb.addCondition("%s = $%d", "property_type", filters.PropertyType)
	}
	if filters.MinPrice != nil {
		qb.addCondition("%s >= $%d", "price", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		qb.addCondition("%s <= $%d", "price", *filters.MaxPrice)
	}
	if filters.MinBedrooms != nil {
		qb.addCondition("%s >= $%d", "bedrooms", *filters.MinBedrooms)
	}
	if filters.Status != "" {
		qb.addCondition("%s = $%d", "status", filters.Status)
	}

	return qb.build()
}
