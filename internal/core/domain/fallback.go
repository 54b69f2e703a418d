package domain

import "time"

// fallbackProperties - демо-набор, который отдается, когда хранилище недоступно.
// Наружу выдаются только копии (см. FallbackProperties), сам срез не изменяется.
var fallbackProperties = []Property{
	{
		ID:    "1",
		Title: "Modern Family Villa",
		Description: "This stunning modern family villa offers the perfect blend of luxury and comfort. " +
			"Located in the prestigious Lekki area, this property features contemporary design, spacious rooms, " +
			"and premium finishes throughout.",
		Price:        180000000,
		Location:     "Kololo, Kampala",
		PropertyType: TypeVilla,
		Status:       StatusForSale,
		Bedrooms:     4,
		Bathrooms:    3,
		Area:         "350 sqm",
		Features: []string{
			"Modern kitchen with island",
			"Spacious living areas",
			"Master bedroom with walk-in closet",
			"Private garden",
			"Parking for 3 cars",
			"24/7 security",
			"Swimming pool",
		},
		Images:    []string{PlaceholderImage, PlaceholderImage},
		CreatedAt: mustDate("2024-01-15"),
		UpdatedAt: mustDate("2024-01-15"),
	},
	{
		ID:    "2",
		Title: "Luxury Apartment",
		Description: "Experience luxury living in this beautifully designed apartment located in the heart of Nakasero. " +
			"Features premium finishes and stunning city views.",
		Price:        95000000,
		Location:     "Nakasero, Kampala",
		PropertyType: TypeApartment,
		Status:       StatusForSale,
		Bedrooms:     3,
		Bathrooms:    2,
		Area:         "180 sqm",
		Features:     []string{"City views", "Modern kitchen", "Gym access", "Swimming pool", "Concierge service", "Parking space"},
		Images:       []string{PlaceholderImage, PlaceholderImage},
		CreatedAt:    mustDate("2024-01-10"),
		UpdatedAt:    mustDate("2024-01-10"),
	},
	{
		ID:    "3",
		Title: "Executive Duplex",
		Description: "Spacious executive duplex in the serene environment of Bugolobi. " +
			"Perfect for families looking for comfort and elegance.",
		Price:        140000000,
		Location:     "Bugolobi, Kampala",
		PropertyType: TypeDuplex,
		Status:       StatusForSale,
		Bedrooms:     5,
		Bathrooms:    4,
		Area:         "280 sqm",
		Features: []string{
			"Two living rooms",
			"Modern kitchen",
			"Master suite",
			"Guest rooms",
			"Garden",
			"Parking for 2 cars",
			"Generator backup",
		},
		Images:    []string{PlaceholderImage, PlaceholderImage},
		CreatedAt: mustDate("2024-01-05"),
		UpdatedAt: mustDate("2024-01-05"),
	},
	{
		ID:           "4",
		Title:        "Waterfront Penthouse",
		Description:  "Stunning penthouse with lake views in the prestigious Munyonyo area.",
		Price:        320000000,
		Location:     "Munyonyo, Kampala",
		PropertyType: TypePenthouse,
		Status:       StatusForSale,
		Bedrooms:     4,
		Bathrooms:    5,
		Area:         "450 sqm",
		Features: []string{
			"Lake views",
			"Private terrace",
			"Jacuzzi",
			"Modern kitchen",
			"Master suite",
			"Parking for 3 cars",
			"24/7 security",
		},
		Images:    []string{PlaceholderImage, PlaceholderImage},
		CreatedAt: mustDate("2024-01-01"),
		UpdatedAt: mustDate("2024-01-01"),
	},
	{
		ID:           "5",
		Title:        "Family Bungalow",
		Description:  "Comfortable family bungalow in a quiet neighborhood perfect for growing families.",
		Price:        75000000,
		Location:     "Ntinda, Kampala",
		PropertyType: TypeBungalow,
		Status:       StatusForSale,
		Bedrooms:     3,
		Bathrooms:    2,
		Area:         "200 sqm",
		Features:     []string{"Garden", "Modern kitchen", "Living room", "Dining area", "Parking for 2 cars", "Security"},
		Images:       []string{PlaceholderImage, PlaceholderImage},
		CreatedAt:    mustDate("2023-12-28"),
		UpdatedAt:    mustDate("2023-12-28"),
	},
	{
		ID:           "6",
		Title:        "Contemporary Townhouse",
		Description:  "Modern townhouse in a gated community with excellent amenities.",
		Price:        125000000,
		Location:     "Muyenga, Kampala",
		PropertyType: TypeTownhouse,
		Status:       StatusForSale,
		Bedrooms:     4,
		Bathrooms:    3,
		Area:         "250 sqm",
		Features:     []string{"Gated community", "Swimming pool", "Gym", "Modern kitchen", "Garden", "Parking space"},
		Images:       []string{PlaceholderImage, PlaceholderImage},
		CreatedAt:    mustDate("2023-12-25"),
		UpdatedAt:    mustDate("2023-12-25"),
	},
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// FallbackProperties возвращает глубокую копию демо-набора в порядке created_at desc.
func FallbackProperties() []Property {
	out := make([]Property, len(fallbackProperties))
	for i, p := range fallbackProperties {
		out[i] = p.Clone()
	}
	return out
}

// FindFallbackProperty ищет объект в демо-наборе по ID.
func FindFallbackProperty(id string) *Property {
	for _, p := range fallbackProperties {
		if p.ID == id {
			c := p.Clone()
			return &c
		}
	}
	return nil
}
