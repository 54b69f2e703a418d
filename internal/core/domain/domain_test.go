package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(properties []Property) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.ID
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFallbackPropertiesAreCopies(t *testing.T) {
	first := FallbackProperties()
	require.Len(t, first, 6)

	first[0].Title = "changed"
	first[0].Features[0] = "changed"
	first = append(first[:1], first[2:]...)

	second := FallbackProperties()
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(second))
	assert.Equal(t, "Modern Family Villa", second[0].Title)
	assert.Equal(t, "Modern kitchen with island", second[0].Features[0])
}

func TestFindFallbackProperty(t *testing.T) {
	p := FindFallbackProperty("4")
	require.NotNil(t, p)
	assert.Equal(t, TypePenthouse, p.PropertyType)

	p.Title = "changed"
	assert.NotEqual(t, "changed", FindFallbackProperty("4").Title)

	assert.Nil(t, FindFallbackProperty("999"))
	assert.Nil(t, FindFallbackProperty(""))
}

func TestSearchFilters(t *testing.T) {
	demo := FallbackProperties()

	testCases := []struct {
		name     string
		filters  SearchFilters
		expected []string
	}{
		{name: "No filters", filters: SearchFilters{}, expected: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "Villa with at least 4 bedrooms", filters: SearchFilters{PropertyType: TypeVilla, MinBedrooms: intPtr(4)}, expected: []string{"1"}},
		{name: "Search is case-insensitive", filters: SearchFilters{Search: "NAKASERO"}, expected: []string{"2"}},
		{name: "Location substring", filters: SearchFilters{Location: "kampala"}, expected: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "Price range is inclusive", filters: SearchFilters{MinPrice: floatPtr(95000000), MaxPrice: floatPtr(140000000)}, expected: []string{"2", "3", "6"}},
		{name: "Zero max price counts as set", filters: SearchFilters{MaxPrice: floatPtr(0)}, expected: []string{}},
		{name: "Status", filters: SearchFilters{Status: StatusSold}, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ids(tc.filters.Apply(demo)))
		})
	}

	assert.True(t, SearchFilters{}.IsEmpty())
	assert.False(t, SearchFilters{MinBedrooms: intPtr(0)}.IsEmpty())
}

func TestParsePriceRange(t *testing.T) {
	min, max, err := ParsePriceRange("50000000-100000000")
	require.NoError(t, err)
	assert.Equal(t, 50000000.0, *min)
	assert.Equal(t, 100000000.0, *max)

	min, max, err = ParsePriceRange("200000000-")
	require.NoError(t, err)
	assert.Equal(t, 200000000.0, *min)
	assert.Nil(t, max)

	min, max, err = ParsePriceRange("")
	require.NoError(t, err)
	assert.Nil(t, min)
	assert.Nil(t, max)

	_, _, err = ParsePriceRange("cheap")
	assert.Error(t, err)

	_, _, err = ParsePriceRange("abc-100")
	assert.Error(t, err)

	_, _, err = ParsePriceRange("NaN-100")
	assert.Error(t, err)

	_, _, err = ParsePriceRange("100-Inf")
	assert.Error(t, err)
}

func TestAdminListFilter(t *testing.T) {
	rows := FallbackProperties()
	rows[1].Status = StatusSold

	assert.Equal(t, []string{"2"}, ids(AdminListFilter{Status: StatusSold}.Apply(rows)))
	assert.Equal(t, []string{"3"}, ids(AdminListFilter{Search: "bugolobi"}.Apply(rows)))
	// Описание в поиск админки не входит.
	assert.Empty(t, AdminListFilter{Search: "Lekki"}.Apply(rows))
	assert.Equal(t, []string{"5"}, ids(AdminListFilter{PropertyType: TypeBungalow}.Apply(rows)))
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(PriceStatusOf(FallbackProperties()))
	assert.Equal(t, PropertyStats{Total: 6, Active: 6, TotalValue: 935000000}, stats)

	stats = ComputeStats([]PriceStatus{
		{Status: StatusForSale, Price: 10},
		{Status: StatusSold, Price: 20},
		{Status: StatusUnderContract, Price: 30},
		{Status: "Archived", Price: 40},
	})
	assert.Equal(t, PropertyStats{Total: 4, Active: 1, Sold: 1, UnderContract: 1, TotalValue: 100}, stats)

	assert.Equal(t, PropertyStats{}, ComputeStats(nil))
}

func TestPropertyHelpers(t *testing.T) {
	p := Property{}
	assert.Equal(t, PlaceholderImage, p.CoverImage())
	assert.False(t, p.HasFeatures())

	p.Images = []string{"https://cdn.example.com/a.jpg", "b.jpg"}
	p.Features = []string{"Pool"}
	assert.Equal(t, "https://cdn.example.com/a.jpg", p.CoverImage())
	assert.True(t, p.HasFeatures())

	assert.True(t, PropertyPatch{}.IsEmpty())
	price := 0.0
	assert.False(t, PropertyPatch{Price: &price}.IsEmpty())
}

func TestAdminCheckPassword(t *testing.T) {
	// bcrypt-хеш строки "password"
	u := &AdminUser{PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"}
	assert.False(t, u.CheckPassword("wrong"))
	assert.False(t, (&AdminUser{}).CheckPassword(""))
}
