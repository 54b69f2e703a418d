package storeclient

import (
	"bytes"
	"encoding/json"
	"listings-service/internal/core/domain"
	"time"
)

// rowID принимает id и строкой, и числом: в таблице может быть uuid или bigint.
type rowID string

func (id *rowID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = rowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = rowID(n.String())
	return nil
}

type idRow struct {
	ID rowID `json:"id"`
}

// propertyRow - строка таблицы properties в том виде, в каком ее отдает хранилище.
type propertyRow struct {
	ID           rowID     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Location     string    `json:"location"`
	PropertyType string    `json:"property_type"`
	Status       string    `json:"status"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Area         string    `json:"area"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r propertyRow) toDomain() domain.Property {
	return domain.Property{
		ID:           string(r.ID),
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Location:     r.Location,
		PropertyType: r.PropertyType,
		Status:       r.Status,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		Area:         r.Area,
		Features:     r.Features,
		Images:       r.Images,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func rowsToDomain(rows []propertyRow) []domain.Property {
	out := make([]domain.Property, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

type priceStatusRow struct {
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

// insertRow - тело запроса на создание. id и временные метки проставляет хранилище.
type insertRow struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"`
	PropertyType string   `json:"property_type"`
	Status       string   `json:"status"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Area         string   `json:"area"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
}

func newInsertRow(p domain.NewProperty) insertRow {
	row := insertRow{
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Location:     p.Location,
		PropertyType: p.PropertyType,
		Status:       p.Status,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		Features:     p.Features,
		Images:       p.Images,
	}
	if row.Status == "" {
		row.Status = domain.StatusForSale
	}
	if row.Features == nil {
		row.Features = []string{}
	}
	if row.Images == nil {
		row.Images = []string{}
	}
	return row
}

// patchBody оставляет в теле только переданные поля, остальные хранилище не трогает.
func patchBody(patch domain.PropertyPatch) map[string]interface{} {
	body := map[string]interface{}{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}
	if patch.Price != nil {
		body["price"] = *patch.Price
	}
	if patch.Location != nil {
		body["location"] = *patch.Location
	}
	if patch.PropertyType != nil {
		body["property_type"] = *patch.PropertyType
	}
	if patch.Status != nil {
		body["status"] = *patch.Status
	}
	if patch.Bedrooms != nil {
		body["bedrooms"] = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		body["bathrooms"] = *patch.Bathrooms
	}
	if patch.Area != nil {
		body["area"] = *patch.Area
	}
	if patch.Features != nil {
		body["features"] = nonNil(*patch.Features)
	}
	if patch.Images != nil {
		body["images"] = nonNil(*patch.Images)
	}
	if !patch.UpdatedAt.IsZero() {
		body["updated_at"] = patch.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return body
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
