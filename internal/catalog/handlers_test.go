package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wooldev/trolley-api/internal/catalog"
	"github.com/wooldev/trolley-api/internal/resource"
)

type errorSource struct {
	err error
}

func (e errorSource) Products(context.Context) ([]resource.Product, error) {
	return nil, e.err
}

func (e errorSource) ShopperHistory(context.Context) ([]resource.ShopperHistory, error) {
	return nil, e.err
}

func newSortHandler(t *testing.T, source catalog.Source) *catalog.Handler {
	t.Helper()
	svc, err := catalog.NewService(catalog.ServiceConfig{Source: source})
	require.NoError(t, err)
	return &catalog.Handler{Service: svc}
}

func TestSortEndpoint(t *testing.T) {
	handler := newSortHandler(t, &fakeSource{products: []resource.Product{
		product("B", "2.00"),
		product("A", "1.00"),
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sort?sortOption=Ascending", nil)
	rr := httptest.NewRecorder()
	handler.Sort(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data []resource.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, []string{"A", "B"}, names(body.Data))
}

func TestSortEndpointEmptyCatalog(t *testing.T) {
	handler := newSortHandler(t, &fakeSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sort?sortOption=Low", nil)
	rr := httptest.NewRecorder()
	handler.Sort(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, rr.Body.String())
}

func TestSortEndpointUnknownOptionFallsBack(t *testing.T) {
	handler := newSortHandler(t, &fakeSource{products: []resource.Product{
		product("Z", "9.00"),
		product("A", "1.00"),
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sort?sortOption=whatever", nil)
	rr := httptest.NewRecorder()
	handler.Sort(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Data []resource.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, []string{"Z", "A"}, names(body.Data), "unknown option keeps resource order")
}

func TestSortEndpointUpstreamError(t *testing.T) {
	handler := newSortHandler(t, errorSource{err: &resource.Error{
		Op:         "products",
		StatusCode: http.StatusForbidden,
		Body:       "bad token",
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sort", nil)
	rr := httptest.NewRecorder()
	handler.Sort(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	var body struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "REMOTE_ERROR", body.Error.Code)
	require.EqualValues(t, http.StatusForbidden, body.Error.Details["status"])
}
