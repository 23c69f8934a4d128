package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
)

func testRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(CORS([]string{"https://mesto.example"}).Handler)
	r.Use(SecureHeaders())
	r.Use(CustomLoggerMiddleware())
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestSecureHeaders(t *testing.T) {
	apitest.New().
		Handler(testRouter()).
		Get("/ping").
		Expect(t).
		Status(http.StatusOK).
		Header("X-Content-Type-Options", "nosniff").
		Header("X-Frame-Options", "SAMEORIGIN").
		Header("Referrer-Policy", "no-referrer").
		End()
}

func TestCORSAllowsConfiguredOriginWithCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://mesto.example")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, "https://mesto.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreateUniqueInstance(t *testing.T) {
	id := CreateUniqueInstance("mesto")
	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, CreateUniqueInstance("mesto"))
}

func fromAddr(addr string) apitest.Intercept {
	return func(req *http.Request) {
		req.RemoteAddr = addr
	}
}

func TestRateLimiter(t *testing.T) {
	r := chi.NewRouter()
	r.Use(RateLimiter(2, time.Minute))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		apitest.New().
			Handler(r).
			Intercept(fromAddr("10.0.0.1:5000")).
			Get("/ping").
			Expect(t).
			Status(http.StatusOK).
			End()
	}

	apitest.New().
		Handler(r).
		Intercept(fromAddr("10.0.0.1:5001")).
		Get("/ping").
		Expect(t).
		Status(http.StatusTooManyRequests).
		Header("Content-Type", "application/json").
		Assert(jsonpath.Equal("$.message", "too many requests")).
		End()

	apitest.New().
		Handler(r).
		Intercept(fromAddr("10.0.0.2:5000")).
		Get("/ping").
		Expect(t).
		Status(http.StatusOK).
		End()
}
