package rest

import (
	"net/http"

	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"
	"listings-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
)

// PropertyHandler обслуживает публичную витрину.
type PropertyHandler struct {
	listUC         usecases_port.ListPropertiesUseCase
	featuredUC     usecases_port.ListFeaturedPropertiesUseCase
	searchUC       usecases_port.SearchPropertiesUseCase
	getByIDUC      usecases_port.GetPropertyByIDUseCase
	statsUC        usecases_port.GetPropertyStatsUseCase
	dictionariesUC usecases_port.GetDictionariesUseCase
	checkStoreUC   usecases_port.CheckStoreUseCase
	prices         PriceFormatter
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCase,
	featuredUC usecases_port.ListFeaturedPropertiesUseCase,
	searchUC usecases_port.SearchPropertiesUseCase,
	getByIDUC usecases_port.GetPropertyByIDUseCase,
	statsUC usecases_port.GetPropertyStatsUseCase,
	dictionariesUC usecases_port.GetDictionariesUseCase,
	checkStoreUC usecases_port.CheckStoreUseCase,
	prices PriceFormatter) *PropertyHandler {
	return &PropertyHandler{
		listUC:         listUC,
		featuredUC:     featuredUC,
		searchUC:       searchUC,
		getByIDUC:      getByIDUC,
		statsUC:        statsUC,
		dictionariesUC: dictionariesUC,
		checkStoreUC:   checkStoreUC,
		prices:         prices,
	}
}

// ListProperties обрабатывает GET /api/v1/properties.
// Без фильтров возвращает весь список, с любым фильтром переключается на поиск.
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	filters, err := parseSearchFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var result domain.PropertyList
	if filters.IsEmpty() {
		result = h.listUC.Execute(r.Context())
	} else {
		logger.Debug("Searching properties", port.Fields{"filters": filters})
		result = h.searchUC.Execute(r.Context(), filters)
	}

	RespondWithJSON(w, http.StatusOK, readResponse(toPropertyResponses(result.Properties, h.prices), result.Source))
}

// GetFeaturedProperties обрабатывает GET /api/v1/properties/featured
func (h *PropertyHandler) GetFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	limit, err := GetLimitOrDefault(r, usecase.DefaultFeaturedLimit)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.featuredUC.Execute(r.Context(), limit)
	RespondWithJSON(w, http.StatusOK, readResponse(toPropertyResponses(result.Properties, h.prices), result.Source))
}

// GetPropertyByID обрабатывает GET /api/v1/properties/{id}
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		WriteJSONError(w, http.StatusBadRequest, "Property ID is required")
		return
	}

	lookup := h.getByIDUC.Execute(r.Context(), id)
	if lookup.Property == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, readResponse(toPropertyResponse(*lookup.Property, h.prices), lookup.Source))
}

// GetPropertyStats обрабатывает GET /api/v1/properties/stats
func (h *PropertyHandler) GetPropertyStats(w http.ResponseWriter, r *http.Request) {
	result := h.statsUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, readResponse(toStatsResponse(result.Stats, h.prices), result.Source))
}

func (h *PropertyHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	dicts := h.dictionariesUC.Execute(r.Context())

	response := DictionariesResponse{
		PropertyTypes: dicts.PropertyTypes,
		Statuses:      dicts.Statuses,
		Locations:     dicts.Locations,
		PriceRanges:   make([]PriceRangeResponse, len(dicts.PriceRanges)),
	}
	for i, pr := range dicts.PriceRanges {
		response.PriceRanges[i] = PriceRangeResponse{Label: pr.Label, Value: pr.Value}
	}

	RespondWithJSON(w, http.StatusOK, DataResponse{Data: response})
}

// CheckStore обрабатывает GET /api/v1/health/store.
// Недоступное хранилище - не ошибка сервиса, поэтому статус всегда 200.
func (h *PropertyHandler) CheckStore(w http.ResponseWriter, r *http.Request) {
	connected := h.checkStoreUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, DataResponse{Data: StoreHealthResponse{Connected: connected}})
}
