package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SearchFilters - набор необязательных фильтров публичного поиска.
// Пустые строки и nil-указатели означают "фильтр не задан". Все заданные фильтры объединяются через AND.
type SearchFilters struct {
	Search       string // ищется без учета регистра в title, location, description
	Location     string // подстрока location без учета регистра
	PropertyType string // точное совпадение
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	Status       string // точное совпадение
}

// IsEmpty - true, если не задан ни один фильтр.
func (f SearchFilters) IsEmpty() bool {
	return f.Search == "" && f.Location == "" && f.PropertyType == "" &&
		f.MinPrice == nil && f.MaxPrice == nil && f.MinBedrooms == nil && f.Status == ""
}

// Matches проверяет объект по всем заданным фильтрам.
func (f SearchFilters) Matches(p Property) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

// Apply возвращает новый срез с объектами, прошедшими фильтры. Порядок сохраняется.
func (f SearchFilters) Apply(properties []Property) []Property {
	out := make([]Property, 0, len(properties))
	for _, p := range properties {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// ParsePriceRange разбирает значение селектора цены вида "min-max".
// Любая из границ может отсутствовать: "200000000-" или "-50000000".
func ParsePriceRange(value string) (min *float64, max *float64, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil, nil
	}

	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("price range %q must look like min-max", value)
	}

	parse := func(s string) (*float64, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price bound %q: %w", s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid price bound %q: must be a finite number", s)
		}
		return &v, nil
	}

	if min, err = parse(parts[0]); err != nil {
		return nil, nil, err
	}
	if max, err = parse(parts[1]); err != nil {
		return nil, nil, err
	}
	return min, max, nil
}

// AdminListFilter - фильтры таблицы объектов в админке.
// В отличие от публичного поиска, текст ищется только в title и location.
type AdminListFilter struct {
	Search       string
	Status       string
	PropertyType string
}

func (f AdminListFilter) Apply(properties []Property) []Property {
	term := strings.ToLower(f.Search)
	out := make([]Property, 0, len(properties))
	for _, p := range properties {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.PropertyType != "" && p.PropertyType != f.PropertyType {
			continue
		}
		out = append(out, p)
	}
	return out
}
