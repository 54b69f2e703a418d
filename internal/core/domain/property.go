package domain

import "time"

// Типы объектов недвижимости, которые поддерживает админка.
const (
	TypeVilla     = "Villa"
	TypeApartment = "Apartment"
	TypeDuplex    = "Duplex"
	TypePenthouse = "Penthouse"
	TypeBungalow  = "Bungalow"
	TypeTownhouse = "Townhouse"
)

// Статусы объявления. "For Sale" считается активным (available).
const (
	StatusForSale       = "For Sale"
	StatusSold          = "Sold"
	StatusUnderContract = "Under Contract"
)

// PlaceholderImage подставляется, когда у объекта нет ни одного изображения.
const PlaceholderImage = "/placeholder.svg?height=400&width=600"

var PropertyTypes = []string{TypeVilla, TypeApartment, TypeDuplex, TypePenthouse, TypeBungalow, TypeTownhouse}

var PropertyStatuses = []string{StatusForSale, StatusSold, StatusUnderContract}

// Property - объявление о продаже объекта недвижимости.
type Property struct {
	ID           string
	Title        string
	Description  string
	Price        float64
	Location     string
	PropertyType string
	Status       string
	Bedrooms     int
	Bathrooms    int
	Area         string // свободный текст, например "350 sqm"
	Features     []string
	Images       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CoverImage возвращает обложку объекта (первое изображение) или заглушку.
func (p Property) CoverImage() string {
	if len(p.Images) == 0 || p.Images[0] == "" {
		return PlaceholderImage
	}
	return p.Images[0]
}

// HasFeatures сообщает, нужно ли показывать блок с особенностями объекта.
func (p Property) HasFeatures() bool {
	return len(p.Features) > 0
}

// Clone делает глубокую копию, чтобы срезы не разделялись между вызовами.
func (p Property) Clone() Property {
	c := p
	if p.Features != nil {
		c.Features = append([]string(nil), p.Features...)
	}
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	return c
}

// NewProperty - данные для создания объявления. ID и временные метки назначает хранилище.
type NewProperty struct {
	Title        string
	Description  string
	Price        float64
	Location     string
	PropertyType string
	Status       string
	Bedrooms     int
	Bathrooms    int
	Area         string
	Features     []string
	Images       []string
}

// PropertyPatch - частичное обновление. Поля со значением nil не изменяются.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Price        *float64
	Location     *string
	PropertyType *string
	Status       *string
	Bedrooms     *int
	Bathrooms    *int
	Area         *string
	Features     *[]string
	Images       *[]string

	// UpdatedAt проставляет use case перед отправкой в хранилище.
	UpdatedAt time.Time
}

// IsEmpty - true, если в патче нет ни одного изменяемого поля.
func (p PropertyPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil && p.Location == nil &&
		p.PropertyType == nil && p.Status == nil && p.Bedrooms == nil && p.Bathrooms == nil &&
		p.Area == nil && p.Features == nil && p.Images == nil
}

// DataSource показывает, откуда пришли данные: из живого хранилища или из демо-набора.
type DataSource string

const (
	SourceStore    DataSource = "store"
	SourceFallback DataSource = "fallback"
)

// PropertyList - результат чтения списка вместе с источником данных.
type PropertyList struct {
	Properties []Property
	Source     DataSource
}

// IsDemo - true, когда страница работает на демо-данных.
func (l PropertyList) IsDemo() bool {
	return l.Source == SourceFallback
}

// PropertyLookup - результат поиска одного объекта. Property == nil, если объект не найден.
type PropertyLookup struct {
	Property *Property
	Source   DataSource
}

// DeleteResult - результат удаления. Deleted может быть 0: хранилище не различает
// "удалено" и "не найдено", мы лишь передаем число затронутых строк.
type DeleteResult struct {
	Requested int
	Deleted   int64
}
