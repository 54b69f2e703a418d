package rest

import (
	"time"

	"listings-service/internal/core/domain"
)

// PriceFormatter форматирует цену для карточки объекта.
type PriceFormatter interface {
	Format(price float64) string
}

type PropertyResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	FormattedPrice string    `json:"formatted_price"`
	Location       string    `json:"location"`
	PropertyType   string    `json:"property_type"`
	Status         string    `json:"status"`
	Bedrooms       int       `json:"bedrooms"`
	Bathrooms      int       `json:"bathrooms"`
	Area           string    `json:"area"`
	Features       []string  `json:"features"`
	Images         []string  `json:"images"`
	CoverImage     string    `json:"cover_image"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ReadResponse - ответ на чтение: данные и их происхождение.
type ReadResponse struct {
	Data     interface{}       `json:"data"`
	Source   domain.DataSource `json:"source"`
	DemoMode bool              `json:"demo_mode"`
}

type DataResponse struct {
	Data interface{} `json:"data"`
}

type StatsResponse struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Sold           int     `json:"sold"`
	UnderContract  int     `json:"under_contract"`
	TotalValue     float64 `json:"total_value"`
	FormattedValue string  `json:"formatted_total_value"`
}

type DashboardResponse struct {
	Stats            StatsResponse      `json:"stats"`
	RecentProperties []PropertyResponse `json:"recent_properties"`
}

type PriceRangeResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type DictionariesResponse struct {
	PropertyTypes []string             `json:"property_types"`
	Statuses      []string             `json:"statuses"`
	Locations     []string             `json:"locations"`
	PriceRanges   []PriceRangeResponse `json:"price_ranges"`
}

type StoreHealthResponse struct {
	Connected bool `json:"connected"`
}

type CreatePropertyRequest struct {
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

// UpdatePropertyRequest - частичное обновление, отсутствующие поля не меняются.
type UpdatePropertyRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	Location     *string   `json:"location"`
	PropertyType *string   `json:"property_type"`
	Status       *string   `json:"status"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Area         *string   `json:"area"`
	Features     *[]string `json:"features"`
	Images       *[]string `json:"images"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type DeleteResponse struct {
	Requested int   `json:"requested"`
	Deleted   int64 `json:"deleted"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Admin       AdminProfile `json:"admin"`
}

type AdminProfile struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toPropertyResponse(p domain.Property, prices PriceFormatter) PropertyResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PropertyResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Price:          p.Price,
		FormattedPrice: prices.Format(p.Price),
		Location:       p.Location,
		PropertyType:   p.PropertyType,
		Status:         p.Status,
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		Area:           p.Area,
		Features:       features,
		Images:         images,
		CoverImage:     p.CoverImage(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPropertyResponses(properties []domain.Property, prices PriceFormatter) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		out[i] = toPropertyResponse(p, prices)
	}
	return out
}

func toStatsResponse(s domain.PropertyStats, prices PriceFormatter) StatsResponse {
	return StatsResponse{
		Total:          s.Total,
		Active:         s.Active,
		Sold:           s.Sold,
		UnderContract:  s.UnderContract,
		TotalValue:     s.TotalValue,
		FormattedValue: prices.Format(s.TotalValue),
	}
}

func readResponse(data interface{}, source domain.DataSource) ReadResponse {
	return ReadResponse{Data: data, Source: source, DemoMode: source == domain.SourceFallback}
}

func (r CreatePropertyRequest) toDomain() domain.NewProperty {
	return domain.NewProperty{
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
	}
}

func (r UpdatePropertyRequest) toDomain() domain.PropertyPatch {
	return domain.PropertyPatch{
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
	}
}
