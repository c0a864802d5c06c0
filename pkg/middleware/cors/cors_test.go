package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCORSRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(New(origins))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSAllowedOriginEchoed(t *testing.T) {
	router := newCORSRouter([]string{"https://app.emunah.test/"})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.emunah.test")
	router.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "https://app.emunah.test" {
		t.Fatalf("unexpected allow-origin: %q", got)
	}
	if got := recorder.Header().Get("Access-Control-Expose-Headers"); got != "Content-Disposition, X-Request-ID" {
		t.Fatalf("unexpected expose-headers: %q", got)
	}
}

func TestCORSUnknownOriginNotEchoed(t *testing.T) {
	router := newCORSRouter([]string{"https://app.emunah.test"})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	router.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin, got %q", got)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	router := newCORSRouter(nil)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Fatalf("unexpected allow-methods: %q", got)
	}
}
