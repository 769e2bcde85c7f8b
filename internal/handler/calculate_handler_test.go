package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumplot/sumplot/internal/service"
)

func newTestRouter() http.Handler {
	logger := log.New(io.Discard, "", 0)
	return SetupRouter(service.NewCalcService(), nil, nil, nil, logger)
}

func postCalculate(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculateReturnsSum(t *testing.T) {
	router := newTestRouter()

	rec := postCalculate(t, router, `{"number1": 2.5, "number2": 3.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Result float64 `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6.0, resp.Result)
}

func TestCalculateZeroOperands(t *testing.T) {
	router := newTestRouter()

	rec := postCalculate(t, router, `{"number1": 0, "number2": 0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result": 0}`, rec.Body.String())
}

func TestCalculateMissingField(t *testing.T) {
	router := newTestRouter()

	rec := postCalculate(t, router, `{"number1": 1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Number2")
}

func TestCalculateNonNumericField(t *testing.T) {
	router := newTestRouter()

	rec := postCalculate(t, router, `{"number1": "one", "number2": 2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateMalformedJSON(t *testing.T) {
	router := newTestRouter()

	rec := postCalculate(t, router, `{"number1": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateIsIdempotent(t *testing.T) {
	router := newTestRouter()

	first := postCalculate(t, router, `{"number1": 1.5, "number2": 2.25}`)
	second := postCalculate(t, router, `{"number1": 1.5, "number2": 2.25}`)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCalculateCommutative(t *testing.T) {
	router := newTestRouter()

	ab := postCalculate(t, router, `{"number1": 4.25, "number2": -1.75}`)
	ba := postCalculate(t, router, `{"number1": -1.75, "number2": 4.25}`)

	require.Equal(t, http.StatusOK, ab.Code)
	require.Equal(t, http.StatusOK, ba.Code)
	assert.Equal(t, ab.Body.String(), ba.Body.String())
}

func TestCalculateCORSAllowsAnyOrigin(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/calculate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthzWithoutDatabase(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHistoryRoutesNotMountedWithoutDatabase(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calculations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
