package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"listings-service/internal/contracts"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

// maxBodyBytes ограничивает тело запроса админки.
const maxBodyBytes = 1 << 20

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// writeUseCaseError переводит ошибки записи в HTTP-статусы.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyUpdate):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPropertyNotFound):
		WriteJSONError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, domain.ErrStoreRejected):
		logger.Warn("Store rejected the request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusUnprocessableEntity, "Property was rejected by the database")
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Error("Store unavailable", err, nil)
		WriteJSONError(w, http.StatusServiceUnavailable, "Database not available. Please connect your database to make changes.")
	default:
		logger.Error("Unexpected use case error", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeValidated читает тело, проверяет его JSON-схемой и раскладывает в dest.
func decodeValidated(r *http.Request, schemaKey string, dest interface{}) (int, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return http.StatusBadRequest, errors.New("failed to read request body")
	}
	if len(body) > maxBodyBytes {
		return http.StatusRequestEntityTooLarge, errors.New("request body is too large")
	}

	if err := contracts.Validate(schemaKey, body); err != nil {
		var verr *contracts.ValidationError
		if errors.As(err, &verr) {
			return http.StatusBadRequest, verr
		}
		return http.StatusInternalServerError, err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return http.StatusBadRequest, errors.New("invalid request body")
	}
	return http.StatusOK, nil
}

// choice нормализует значение выпадающего списка: "all" означает "без фильтра".
func choice(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "all") {
		return ""
	}
	return value
}

func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("parameter %s must be a number", key)
	}
	return &v, nil
}

func queryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be an integer", key)
	}
	return &v, nil
}

// GetLimitOrDefault возвращает limit из query или значение по умолчанию.
func GetLimitOrDefault(r *http.Request, defaultLimit int) (int, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return 0, err
	}
	if limit == nil {
		return defaultLimit, nil
	}
	if *limit <= 0 {
		return 0, errors.New("parameter limit must be positive")
	}
	return *limit, nil
}

// parseSearchFilters собирает фильтры публичного поиска из query-параметров.
// priceRange ("min-max") задает границы, если minPrice/maxPrice не указаны явно.
func parseSearchFilters(r *http.Request) (domain.SearchFilters, error) {
	q := r.URL.Query()
	filters := domain.SearchFilters{
		Search:       strings.TrimSpace(q.Get("q")),
		Location:     choice(q.Get("location")),
		PropertyType: choice(q.Get("type")),
		Status:       choice(q.Get("status")),
	}

	var err error
	if filters.MinPrice, err = queryFloat(r, "minPrice"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = queryFloat(r, "maxPrice"); err != nil {
		return filters, err
	}
	if filters.MinBedrooms, err = queryInt(r, "minBedrooms"); err != nil {
		return filters, err
	}

	if priceRange := choice(q.Get("priceRange")); priceRange != "" {
		min, max, err := domain.ParsePriceRange(priceRange)
		if err != nil {
			return filters, err
		}
		if filters.MinPrice == nil {
			filters.MinPrice = min
		}
		if filters.MaxPrice == nil {
			filters.MaxPrice = max
		}
	}

	return filters, nil
}
