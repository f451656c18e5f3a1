package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nautiq-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func fleetRouter(fleet *stubFleet) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/boats", listBoatsHandler(fleet))
	router.GET("/api/boats/:id", getBoatHandler(fleet))
	return router
}

func TestListBoats(t *testing.T) {
	fleet := &stubFleet{boats: []domain.Boat{
		{ID: "b1", Name: "Princess V50", PriceFromCents: 250000, Guests: 10, ICalURL: "https://cal.example/v50.ics"},
		{ID: "b2", Name: "Lagoon 42", PriceFromCents: 180000, Guests: 12},
	}}
	router := fleetRouter(fleet)

	req := httptest.NewRequest(http.MethodGet, "/api/boats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Princess V50") || !strings.Contains(body, "Lagoon 42") {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestListBoatsEmptyFleet(t *testing.T) {
	router := fleetRouter(&stubFleet{})

	req := httptest.NewRequest(http.MethodGet, "/api/boats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `"boats":[]`) {
		t.Fatalf("expected empty list, got %s", rec.Body.String())
	}
}

func TestGetBoat(t *testing.T) {
	fleet := &stubFleet{boats: []domain.Boat{{ID: "b1", Name: "Princess V50"}}}
	router := fleetRouter(fleet)

	req := httptest.NewRequest(http.MethodGet, "/api/boats/b1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Princess V50") {
		t.Fatalf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestGetBoatNotFound(t *testing.T) {
	router := fleetRouter(&stubFleet{})

	req := httptest.NewRequest(http.MethodGet, "/api/boats/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
