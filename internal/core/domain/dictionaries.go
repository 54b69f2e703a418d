package domain

// PriceRange - пункт селектора цены на публичной странице.
type PriceRange struct {
	Label string
	Value string // формат "min-max", см. ParsePriceRange
}

// Dictionaries - справочники для виджетов фильтрации.
type Dictionaries struct {
	PropertyTypes []string
	Statuses      []string
	Locations     []string
	PriceRanges   []PriceRange
}

var defaultLocations = []string{"Kampala", "Kololo", "Nakasero", "Munyonyo", "Ntinda", "Bugolobi"}

var defaultPriceRanges = []PriceRange{
	{Label: "Under UGX 50M", Value: "0-50000000"},
	{Label: "UGX 50M - 100M", Value: "50000000-100000000"},
	{Label: "UGX 100M - 200M", Value: "100000000-200000000"},
	{Label: "Above UGX 200M", Value: "200000000-"},
}

// DefaultDictionaries возвращает копию справочников, чтобы вызывающий мог их менять.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		PropertyTypes: append([]string(nil), PropertyTypes...),
		Statuses:      append([]string(nil), PropertyStatuses...),
		Locations:     append([]string(nil), defaultLocations...),
		PriceRanges:   append([]PriceRange(nil), defaultPriceRanges...),
	}
}
