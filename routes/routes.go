package routes

import (
	"net/http"
	"time"

	"openinghours/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVenueRoutes registers venue and opening-hours endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.POST("", hb.CreateVenueHandler)
		api.GET("/open", hb.FindOpenVenuesHandler)
		api.GET("/:id", hb.GetVenueHandler)
		api.PUT("/:id", hb.UpdateVenueHandler)
		api.DELETE("/:id", hb.DeleteVenueHandler)
		api.GET("/:id/status", hb.GetVenueStatusHandler)
		api.GET("/:id/hours", hb.GetVenueHoursHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		if hb.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := hb.Health.Status()
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterVenueRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
