package usecase

import (
	"context"
	"listings-service/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyIDs(properties []domain.Property) []string {
	ids := make([]string, len(properties))
	for i, p := range properties {
		ids[i] = p.ID
	}
	return ids
}

func liveRows() []domain.Property {
	return []domain.Property{
		{ID: "a1", Title: "Lake View Villa", Location: "Entebbe", PropertyType: domain.TypeVilla, Status: domain.StatusForSale, Price: 210000000, Bedrooms: 5},
		{ID: "a2", Title: "City Flat", Location: "Kampala", PropertyType: domain.TypeApartment, Status: domain.StatusSold, Price: 60000000, Bedrooms: 2},
		{ID: "a3", Title: "Garden Duplex", Location: "Ntinda, Kampala", PropertyType: domain.TypeDuplex, Status: domain.StatusUnderContract, Price: 130000000, Bedrooms: 4},
		{ID: "a4", Title: "Hill Bungalow", Location: "Muyenga", PropertyType: domain.TypeBungalow, Status: domain.StatusForSale, Price: 80000000, Bedrooms: 3},
	}
}

func TestCheckStore(t *testing.T) {
	ctx := context.Background()

	assert.True(t, NewCheckStoreUseCase(newMemoryStore()).Execute(ctx))
	assert.False(t, NewCheckStoreUseCase(unreachableStore()).Execute(ctx))
}

func TestListProperties(t *testing.T) {
	ctx := context.Background()

	t.Run("Store rows", func(t *testing.T) {
		result := NewListPropertiesUseCase(newMemoryStore(liveRows()...)).Execute(ctx)

		assert.Equal(t, domain.SourceStore, result.Source)
		assert.False(t, result.IsDemo())
		assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, propertyIDs(result.Properties))
	})

	t.Run("Unreachable store falls back to demo data", func(t *testing.T) {
		result := NewListPropertiesUseCase(unreachableStore()).Execute(ctx)

		assert.True(t, result.IsDemo())
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, propertyIDs(result.Properties))
	})

	t.Run("Empty store falls back to demo data", func(t *testing.T) {
		result := NewListPropertiesUseCase(newMemoryStore()).Execute(ctx)

		assert.True(t, result.IsDemo())
		assert.Len(t, result.Properties, 6)
	})
}

func TestListFeaturedProperties(t *testing.T) {
	ctx := context.Background()
	list := NewListPropertiesUseCase(newMemoryStore(liveRows()...))
	uc := NewListFeaturedPropertiesUseCase(list)

	result := uc.Execute(ctx, 2)
	assert.Equal(t, []string{"a1", "a2"}, propertyIDs(result.Properties))

	result = uc.Execute(ctx, 0)
	assert.Len(t, result.Properties, DefaultFeaturedLimit)

	result = uc.Execute(ctx, 50)
	assert.Len(t, result.Properties, 4)

	demo := NewListFeaturedPropertiesUseCase(NewListPropertiesUseCase(unreachableStore())).Execute(ctx, 0)
	assert.True(t, demo.IsDemo())
	assert.Equal(t, []string{"1", "2", "3"}, propertyIDs(demo.Properties))
}

func TestGetPropertyByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found in store", func(t *testing.T) {
		result := NewGetPropertyByIDUseCase(newMemoryStore(liveRows()...)).Execute(ctx, "a3")

		require.NotNil(t, result.Property)
		assert.Equal(t, "Garden Duplex", result.Property.Title)
		assert.Equal(t, domain.SourceStore, result.Source)
	})

	t.Run("Unreachable store resolves demo id", func(t *testing.T) {
		result := NewGetPropertyByIDUseCase(unreachableStore()).Execute(ctx, "1")

		require.NotNil(t, result.Property)
		assert.Equal(t, "1", result.Property.ID)
		assert.Equal(t, domain.SourceFallback, result.Source)
	})

	t.Run("Missing everywhere", func(t *testing.T) {
		result := NewGetPropertyByIDUseCase(unreachableStore()).Execute(ctx, "999")
		assert.Nil(t, result.Property)

		result = NewGetPropertyByIDUseCase(newMemoryStore(liveRows()...)).Execute(ctx, "999")
		assert.Nil(t, result.Property)
	})
}

func TestSearchProperties(t *testing.T) {
	ctx := context.Background()
	four := 4

	t.Run("Fallback filtering", func(t *testing.T) {
		filters := domain.SearchFilters{PropertyType: domain.TypeVilla, MinBedrooms: &four}
		result := NewSearchPropertiesUseCase(unreachableStore()).Execute(ctx, filters)

		assert.True(t, result.IsDemo())
		assert.Equal(t, []string{"1"}, propertyIDs(result.Properties))
	})

	t.Run("Store filtering", func(t *testing.T) {
		filters := domain.SearchFilters{Search: "kampala"}
		result := NewSearchPropertiesUseCase(newMemoryStore(liveRows()...)).Execute(ctx, filters)

		assert.Equal(t, domain.SourceStore, result.Source)
		assert.Equal(t, []string{"a2", "a3"}, propertyIDs(result.Properties))
	})

	t.Run("Empty store result stays empty", func(t *testing.T) {
		filters := domain.SearchFilters{Status: domain.StatusSold, PropertyType: domain.TypeVilla}
		result := NewSearchPropertiesUseCase(newMemoryStore(liveRows()...)).Execute(ctx, filters)

		assert.False(t, result.IsDemo())
		assert.NotNil(t, result.Properties)
		assert.Empty(t, result.Properties)
	})
}

func TestGetPropertyStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Fallback stats", func(t *testing.T) {
		result := NewGetPropertyStatsUseCase(unreachableStore()).Execute(ctx)

		assert.Equal(t, domain.SourceFallback, result.Source)
		assert.Equal(t, domain.PropertyStats{Total: 6, Active: 6, TotalValue: 935000000}, result.Stats)
	})

	t.Run("Store stats", func(t *testing.T) {
		result := NewGetPropertyStatsUseCase(newMemoryStore(liveRows()...)).Execute(ctx)

		assert.Equal(t, domain.SourceStore, result.Source)
		assert.Equal(t, domain.PropertyStats{
			Total:         4,
			Active:        2,
			Sold:          1,
			UnderContract: 1,
			TotalValue:    480000000,
		}, result.Stats)
	})
}

func TestGetDictionaries(t *testing.T) {
	d := NewGetDictionariesUseCase().Execute(context.Background())

	assert.Equal(t, domain.PropertyTypes, d.PropertyTypes)
	assert.Equal(t, domain.PropertyStatuses, d.Statuses)
	assert.Contains(t, d.Locations, "Kampala")
	assert.Len(t, d.PriceRanges, 4)
}
