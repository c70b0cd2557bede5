package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestTrailingSlashIsStripped(t *testing.T) {
	is := is.New(t)

	r := New("storefront-api")
	r.Get("/api/v1/brands", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/brands/", nil))

	is.Equal(w.Code, http.StatusNoContent)
}

func TestPreflightIsAnsweredForAPIKeyHeader(t *testing.T) {
	is := is.New(t)

	r := New("storefront-api")
	r.Get("/api/v1/brands", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/brands", nil)
	req.Header.Set("Origin", "https://www.vijfhart.nl")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Api-Key")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusNoContent)
	is.True(w.Header().Get("Access-Control-Allow-Origin") != "")
}

func TestPanicsAreRecovered(t *testing.T) {
	is := is.New(t)

	r := New("storefront-api")
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	is.Equal(w.Code, http.StatusInternalServerError)
}
