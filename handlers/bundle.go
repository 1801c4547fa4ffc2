// File: openinghours/handlers/bundle.go
package handlers

import (
	"openinghours/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Venue endpoints
	CreateVenueHandler    gin.HandlerFunc
	GetVenueHandler       gin.HandlerFunc
	UpdateVenueHandler    gin.HandlerFunc
	DeleteVenueHandler    gin.HandlerFunc
	GetVenueStatusHandler gin.HandlerFunc
	GetVenueHoursHandler  gin.HandlerFunc
	FindOpenVenuesHandler gin.HandlerFunc

	// Health endpoint
	Health *utils.HealthMonitor
}

// NewHandlerBundle assembles the bundle from a venue handler.
func NewHandlerBundle(vh *VenueHandler, health *utils.HealthMonitor) *HandlerBundle {
	return &HandlerBundle{
		CreateVenueHandler:    vh.CreateVenueHandler,
		GetVenueHandler:       vh.GetVenueHandler,
		UpdateVenueHandler:    vh.UpdateVenueHandler,
		DeleteVenueHandler:    vh.DeleteVenueHandler,
		GetVenueStatusHandler: vh.GetVenueStatusHandler,
		GetVenueHoursHandler:  vh.GetVenueHoursHandler,
		FindOpenVenuesHandler: vh.FindOpenVenuesHandler,
		Health:                health,
	}
}
