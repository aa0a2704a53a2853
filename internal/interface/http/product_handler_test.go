package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/storefront/internal/infra/persistence/memory"
	productuc "example.com/storefront/internal/usecase/product"
	storeuc "example.com/storefront/internal/usecase/store"
)

func newTestAPI() (*API, *storeuc.Service) {
	repo := memory.NewSeededProductRepository()
	storeSvc := storeuc.NewService(repo, nil)
	api := NewAPI(Dependencies{
		ProductService: productuc.NewService(repo),
		StoreService:   storeSvc,
	})
	return api, storeSvc
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api.Router(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestListProducts(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api.Router(), http.MethodGet, "/api/v1/products", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 4)

	first := data[0].(map[string]any)
	require.Equal(t, "1", first["id"])
	require.Equal(t, "Wireless Headphones", first["name"])
	require.Equal(t, float64(2499), first["price"])
	require.Equal(t, "₹2,499", first["price_display"])
	require.Equal(t, "Electronics", first["category"])
	require.Equal(t, 4.6, first["rating"])

	last := data[3].(map[string]any)
	require.Equal(t, "4", last["id"])
	require.Equal(t, "₹1,999", last["price_display"])
}

func TestGetProduct(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api.Router(), http.MethodGet, "/api/v1/products/3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Gaming Mouse", body["name"])
	require.Equal(t, "₹1,599", body["price_display"])
}

func TestGetProduct_NotFound(t *testing.T) {
	api, _ := newTestAPI()

	rec := doRequest(t, api.Router(), http.MethodGet, "/api/v1/products/77", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "product not found", decodeBody(t, rec)["error"])
}
