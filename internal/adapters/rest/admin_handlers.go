package rest

import (
	"net/http"
	"strings"

	"listings-service/internal/contextkeys"
	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// DefaultRecentLimit - сколько последних объявлений показывает дашборд.
const DefaultRecentLimit = 10

// AdminHandler обслуживает панель администратора.
type AdminHandler struct {
	listUC       usecases_port.ListPropertiesUseCase
	statsUC      usecases_port.GetPropertyStatsUseCase
	createUC     usecases_port.CreatePropertyUseCase
	updateUC     usecases_port.UpdatePropertyUseCase
	deleteUC     usecases_port.DeletePropertyUseCase
	deleteManyUC usecases_port.DeletePropertiesUseCase
	prices       PriceFormatter
}

func NewAdminHandler(
	listUC usecases_port.ListPropertiesUseCase,
	statsUC usecases_port.GetPropertyStatsUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	updateUC usecases_port.UpdatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	deleteManyUC usecases_port.DeletePropertiesUseCase,
	prices PriceFormatter) *AdminHandler {
	return &AdminHandler{
		listUC:       listUC,
		statsUC:      statsUC,
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		deleteManyUC: deleteManyUC,
		prices:       prices,
	}
}

// ListProperties обрабатывает GET /api/v1/admin/properties?q=&status=&type=
func (h *AdminHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AdminListFilter{
		Search:       strings.TrimSpace(q.Get("q")),
		Status:       choice(q.Get("status")),
		PropertyType: choice(q.Get("type")),
	}

	result := h.listUC.Execute(r.Context())
	filtered := filter.Apply(result.Properties)

	RespondWithJSON(w, http.StatusOK, readResponse(toPropertyResponses(filtered, h.prices), result.Source))
}

// GetDashboard обрабатывает GET /api/v1/admin/dashboard
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	limit, err := GetLimitOrDefault(r, DefaultRecentLimit)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	list := h.listUC.Execute(r.Context())
	stats := h.statsUC.Execute(r.Context())

	recent := list.Properties
	if len(recent) > limit {
		recent = recent[:limit]
	}

	// хранилище могло ответить на один запрос и не ответить на другой
	source := list.Source
	if stats.Source == domain.SourceFallback {
		source = domain.SourceFallback
	}

	response := DashboardResponse{
		Stats:            toStatsResponse(stats.Stats, h.prices),
		RecentProperties: toPropertyResponses(recent, h.prices),
	}
	RespondWithJSON(w, http.StatusOK, readResponse(response, source))
}

// CreateProperty обрабатывает POST /api/v1/admin/properties
func (h *AdminHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	var req CreatePropertyRequest
	if status, err := decodeValidated(r, contracts.PropertyCreateRequest, &req); err != nil {
		WriteJSONError(w, status, err.Error())
		return
	}

	created, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Property created", port.Fields{"property_id": created.ID})
	RespondWithJSON(w, http.StatusCreated, DataResponse{Data: toPropertyResponse(*created, h.prices)})
}

// UpdateProperty обрабатывает PATCH /api/v1/admin/properties/{id}
func (h *AdminHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "UpdateProperty",
		"property_id": id,
	})

	var req UpdatePropertyRequest
	if status, err := decodeValidated(r, contracts.PropertyUpdateRequest, &req); err != nil {
		WriteJSONError(w, status, err.Error())
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, req.toDomain())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, DataResponse{Data: toPropertyResponse(*updated, h.prices)})
}

// DeleteProperty обрабатывает DELETE /api/v1/admin/properties/{id}
func (h *AdminHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "DeleteProperty",
		"property_id": id,
	})

	result, err := h.deleteUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, DataResponse{Data: DeleteResponse{Requested: result.Requested, Deleted: result.Deleted}})
}

// DeleteProperties обрабатывает POST /api/v1/admin/properties/bulk-delete
func (h *AdminHandler) DeleteProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperties"})

	var req BulkDeleteRequest
	if status, err := decodeValidated(r, contracts.BulkDeleteRequest, &req); err != nil {
		WriteJSONError(w, status, err.Error())
		return
	}

	result, err := h.deleteManyUC.Execute(r.Context(), req.IDs)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, DataResponse{Data: DeleteResponse{Requested: result.Requested, Deleted: result.Deleted}})
}
