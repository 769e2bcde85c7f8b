package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalcServiceStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calculate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": 6}`))
	}))
}

func newWebRouter(calcURL string) http.Handler {
	logger := log.New(io.Discard, "", 0)
	return SetupRouter(NewCalcClient(calcURL), logger)
}

func postForm(router http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersForm(t *testing.T) {
	router := newWebRouter("http://unused")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="number1"`)
	assert.Contains(t, body, `name="number2"`)
	assert.Contains(t, body, `action="/calculate"`)
}

func TestSubmitRendersResultAndPlot(t *testing.T) {
	stub := newCalcServiceStub(t)
	defer stub.Close()

	router := newWebRouter(stub.URL)
	rec := postForm(router, url.Values{
		"number1": {"2.5"},
		"number2": {"3.5"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<strong>6</strong>")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "(6, 6)")
}

func TestSubmitRejectsNonNumericInput(t *testing.T) {
	router := newWebRouter("http://unused")

	rec := postForm(router, url.Values{
		"number1": {"one"},
		"number2": {"2"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Both fields must be numbers")
}

func TestSubmitMissingField(t *testing.T) {
	router := newWebRouter("http://unused")

	rec := postForm(router, url.Values{
		"number1": {"1"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitUpstreamUnavailable(t *testing.T) {
	// Point the client at a server that is already closed.
	stub := newCalcServiceStub(t)
	stub.Close()

	router := newWebRouter(stub.URL)
	rec := postForm(router, url.Values{
		"number1": {"1"},
		"number2": {"2"},
	})

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not be reached")
}

func TestCalcClientSurfacesServiceError(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Field 'Number2' is required"}`))
	}))
	defer stub.Close()

	client := NewCalcClient(stub.URL)
	_, err := client.Calculate(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Number2")
}
