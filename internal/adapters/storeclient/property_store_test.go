package storeclient

import (
	"context"
	"encoding/json"
	"io"
	"listings-service/internal/core/domain"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest - то, что пришло на фейковый сервер хранилища.
type recordedRequest struct {
	Method string
	Query  url.Values
	Header http.Header
	Body   []byte
}

func newTestStore(t *testing.T, status int, response string) (*PropertyStore, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, "key")
	require.NoError(t, err)
	return NewPropertyStore(client, ""), &requests
}

const villaJSON = `{
	"id": "a1", "title": "Lake View Villa", "description": null, "price": 210000000,
	"location": "Entebbe", "property_type": "Villa", "status": "For Sale",
	"bedrooms": 5, "bathrooms": 4, "area": "400 sqm",
	"features": ["Pool"], "images": [],
	"created_at": "2024-02-01T10:00:00.123456+00:00", "updated_at": "2024-02-01T10:00:00+00:00"
}`

func TestPropertyStoreList(t *testing.T) {
	store, requests := newTestStore(t, http.StatusOK, "["+villaJSON+"]")

	properties, err := store.List(context.Background())

	require.NoError(t, err)
	require.Len(t, properties, 1)
	p := properties[0]
	assert.Equal(t, "a1", p.ID)
	assert.Equal(t, 210000000.0, p.Price)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, []string{"Pool"}, p.Features)
	assert.Equal(t, domain.PlaceholderImage, p.CoverImage())
	assert.Equal(t, 2024, p.CreatedAt.Year())

	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "created_at.desc", req.Query.Get("order"))
	assert.Equal(t, "*", req.Query.Get("select"))
}

func TestPropertyStoreGetByIDNotFound(t *testing.T) {
	store, _ := newTestStore(t, http.StatusNotAcceptable, `{"code":"PGRST116","message":"no rows"}`)

	p, err := store.GetByID(context.Background(), "999")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyStoreSearchBuildsFilters(t *testing.T) {
	store, requests := newTestStore(t, http.StatusOK, "[]")
	min, max, bedrooms := 50000000.0, 200000000.0, 3

	properties, err := store.Search(context.Background(), domain.SearchFilters{
		Search:       "kololo",
		Location:     "Kampala",
		PropertyType: domain.TypeVilla,
		MinPrice:     &min,
		MaxPrice:     &max,
		MinBedrooms:  &bedrooms,
		Status:       domain.StatusForSale,
	})

	require.NoError(t, err)
	assert.Empty(t, properties)

	q := (*requests)[0].Query
	assert.Equal(t, `(title.ilike."*kololo*",location.ilike."*kololo*",description.ilike."*kololo*")`, q.Get("or"))
	assert.Equal(t, "ilike.*Kampala*", q.Get("location"))
	assert.Equal(t, "eq.Villa", q.Get("property_type"))
	assert.Equal(t, []string{"gte.50000000", "lte.200000000"}, q["price"])
	assert.Equal(t, "gte.3", q.Get("bedrooms"))
	assert.Equal(t, "eq.For Sale", q.Get("status"))
	assert.Equal(t, "created_at.desc", q.Get("order"))
}

func TestPropertyStoreSearchWithoutFilters(t *testing.T) {
	store, requests := newTestStore(t, http.StatusOK, "[]")

	_, err := store.Search(context.Background(), domain.SearchFilters{})

	require.NoError(t, err)
	q := (*requests)[0].Query
	assert.Equal(t, "", q.Get("or"))
	assert.Equal(t, "", q.Get("status"))
}

func TestPropertyStoreStats(t *testing.T) {
	store, requests := newTestStore(t, http.StatusOK, `[{"status":"For Sale","price":100},{"status":"Sold","price":50}]`)

	rows, err := store.ListPriceStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.PriceStatus{{Status: "For Sale", Price: 100}, {Status: "Sold", Price: 50}}, rows)
	assert.Equal(t, "status,price", (*requests)[0].Query.Get("select"))
}

func TestPropertyStoreInsert(t *testing.T) {
	store, requests := newTestStore(t, http.StatusCreated, villaJSON)

	created, err := store.Insert(context.Background(), domain.NewProperty{
		Title:        "Lake View Villa",
		Price:        210000000,
		Location:     "Entebbe",
		PropertyType: domain.TypeVilla,
	})

	require.NoError(t, err)
	assert.Equal(t, "a1", created.ID)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "return=representation", req.Header.Get("Prefer"))

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &body))
	require.Len(t, body, 1)
	assert.Equal(t, "For Sale", body[0]["status"])
	assert.Equal(t, []interface{}{}, body[0]["features"])
	assert.NotContains(t, body[0], "id")
}

func TestPropertyStoreUpdateSendsOnlyPatchedFields(t *testing.T) {
	store, requests := newTestStore(t, http.StatusOK, villaJSON)
	status := domain.StatusSold
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := store.Update(context.Background(), "a1", domain.PropertyPatch{Status: &status, UpdatedAt: stamp})
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "eq.a1", req.Query.Get("id"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, map[string]interface{}{
		"status":     "Sold",
		"updated_at": "2026-01-02T03:04:05Z",
	}, body)
}

func TestPropertyStoreDeleteCountsRows(t *testing.T) {
	store, requests := newTestStore(t, http.StatusOK, `[{"id":"a1"},{"id":"a3"}]`)

	deleted, err := store.DeleteMany(context.Background(), []string{"a1", "a3", "zz"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	req := (*requests)[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, `in.("a1","a3","zz")`, req.Query.Get("id"))
	assert.Equal(t, "id", req.Query.Get("select"))
}

func TestPropertyStoreDeleteMissingID(t *testing.T) {
	store, _ := newTestStore(t, http.StatusOK, `[]`)

	deleted, err := store.Delete(context.Background(), "missing")

	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestPropertyStoreErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "Server error", status: http.StatusServiceUnavailable, body: `{"message":"down"}`, expected: domain.ErrStoreUnavailable},
		{name: "Bad key", status: http.StatusUnauthorized, body: `{"message":"Invalid API key"}`, expected: domain.ErrStoreUnavailable},
		{name: "Constraint violation", status: http.StatusConflict, body: `{"code":"23505","message":"duplicate key"}`, expected: domain.ErrStoreRejected},
		{name: "Missing table", status: http.StatusNotFound, body: `{"code":"42P01","message":"relation does not exist"}`, expected: domain.ErrStoreRejected},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := newTestStore(t, tc.status, tc.body)
			_, err := store.List(context.Background())
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestPropertyStorePingUnreachable(t *testing.T) {
	client, err := New("http://127.0.0.1:1", "key", WithTimeout(time.Second))
	require.NoError(t, err)

	err = NewPropertyStore(client, "").Ping(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
