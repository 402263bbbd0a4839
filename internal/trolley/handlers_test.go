package trolley_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wooldev/trolley-api/internal/resource"
	"github.com/wooldev/trolley-api/internal/trolley"
)

type stubCalculator struct {
	total decimal.Decimal
	err   error
	calls int
}

func (s *stubCalculator) Total(_ context.Context, _ *trolley.Trolley) (decimal.Decimal, error) {
	s.calls++
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.total, nil
}

func newHandler(t *testing.T, remote trolley.Calculator) *trolley.Handler {
	t.Helper()
	h, err := trolley.NewHandler(trolley.HandlerConfig{
		Local:  trolley.LocalCalculator{},
		Remote: remote,
	})
	require.NoError(t, err)
	return h
}

func postTrolley(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trolley/total", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Code
}

const wellFormedTrolley = `{
	"products": [{"name": "A", "price": 9.0}],
	"specials": [{"quantities": [{"name": "A", "quantity": 2}], "total": 9.0}],
	"quantities": [{"name": "A", "quantity": 2}]
}`

func TestLocalTotalEndpoint(t *testing.T) {
	handler := newHandler(t, nil)

	rr := postTrolley(t, handler.LocalTotal, wellFormedTrolley)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data struct {
			Total json.Number `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "9", body.Data.Total.String())
}

func TestTotalEndpointUsesRemoteCalculator(t *testing.T) {
	remote := &stubCalculator{total: decimal.RequireFromString("14")}
	handler := newHandler(t, remote)

	rr := postTrolley(t, handler.Total, wellFormedTrolley)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, remote.calls)
}

func TestTotalEndpointMalformedJSON(t *testing.T) {
	handler := newHandler(t, nil)

	rr := postTrolley(t, handler.LocalTotal, "{not json")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "BAD_REQUEST", decodeError(t, rr))
}

func TestTotalEndpointMissingCollections(t *testing.T) {
	handler := newHandler(t, nil)

	rr := postTrolley(t, handler.LocalTotal, `{"specials": []}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "MISSING_FIELD", decodeError(t, rr))
}

func TestTotalEndpointInconsistentTrolley(t *testing.T) {
	handler := newHandler(t, nil)

	rr := postTrolley(t, handler.LocalTotal, `{
		"products": [{"name": "A", "price": 1.0}],
		"quantities": [{"name": "Ghost", "quantity": 1}]
	}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "INVALID_TROLLEY", decodeError(t, rr))
}

func TestTotalEndpointNonPositiveQuantity(t *testing.T) {
	handler := newHandler(t, nil)

	rr := postTrolley(t, handler.LocalTotal, `{
		"products": [{"name": "A", "price": 1.0}],
		"quantities": [{"name": "A", "quantity": 0}]
	}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "INVALID_TROLLEY", decodeError(t, rr))
}

func TestTotalEndpointEmptyCatalog(t *testing.T) {
	handler := newHandler(t, nil)

	rr := postTrolley(t, handler.LocalTotal, `{
		"products": [],
		"quantities": []
	}`)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "PRICING_PRECONDITION", decodeError(t, rr))
}

func TestTotalEndpointRemoteFailure(t *testing.T) {
	remote := &stubCalculator{err: &resource.Error{
		Op:         "trolleyCalculator",
		StatusCode: http.StatusBadGateway,
		Body:       "upstream exploded",
	}}
	handler := newHandler(t, remote)

	rr := postTrolley(t, handler.Total, wellFormedTrolley)
	require.Equal(t, http.StatusBadGateway, rr.Code)
	require.Equal(t, "REMOTE_ERROR", decodeError(t, rr))
}

func TestTotalEndpointUnknownRemoteError(t *testing.T) {
	remote := &stubCalculator{err: errors.New("boom")}
	handler := newHandler(t, remote)

	rr := postTrolley(t, handler.Total, wellFormedTrolley)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "INTERNAL", decodeError(t, rr))
}
