package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"openinghours/handlers"
	"openinghours/utils"

	"github.com/gin-gonic/gin"
)

func TestRegisterRoutes_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("timeout") }

	tests := []struct {
		name  string
		redis utils.Pinger
		want  int
	}{
		{"healthy", ok, http.StatusOK},
		{"degraded", down, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitor := utils.NewHealthMonitorWithProbes(ok, tt.redis)
			monitor.Check(context.Background())

			r := gin.New()
			RegisterRoutes(r, &handlers.HandlerBundle{Health: monitor})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestRegisterVenueRoutes_StaticBeforeParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var hit string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			hit = name
			c.Status(http.StatusNoContent)
		}
	}

	r := gin.New()
	RegisterVenueRoutes(r, &handlers.HandlerBundle{
		CreateVenueHandler:    mark("create"),
		GetVenueHandler:       mark("get"),
		UpdateVenueHandler:    mark("update"),
		DeleteVenueHandler:    mark("delete"),
		GetVenueStatusHandler: mark("status"),
		GetVenueHoursHandler:  mark("hours"),
		FindOpenVenuesHandler: mark("open"),
	})

	tests := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/venues", "create"},
		{http.MethodGet, "/api/venues/open", "open"},
		{http.MethodGet, "/api/venues/abc", "get"},
		{http.MethodPut, "/api/venues/abc", "update"},
		{http.MethodDelete, "/api/venues/abc", "delete"},
		{http.MethodGet, "/api/venues/abc/status", "status"},
		{http.MethodGet, "/api/venues/abc/hours", "hours"},
	}
	for _, tt := range tests {
		hit = ""
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))
		if hit != tt.want {
			t.Fatalf("%s %s: expected %q handler, got %q", tt.method, tt.path, tt.want, hit)
		}
	}
}
