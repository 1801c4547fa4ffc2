// File: openinghours/handlers/venue.go
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"openinghours/models"
	"openinghours/services/openingtimes"
	"openinghours/services/venue"
	"openinghours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VenueHandler serves the venue and opening-hours endpoints.
type VenueHandler struct {
	Service       venue.VenueService
	Logger        *zap.Logger
	DefaultLayout string
	Now           func() time.Time
}

// NewVenueHandler creates a VenueHandler. An empty layout falls back to the
// 12-hour display layout.
func NewVenueHandler(svc venue.VenueService, logger *zap.Logger, defaultLayout string) *VenueHandler {
	if defaultLayout == "" {
		defaultLayout = openingtimes.DefaultTimeLayout
	}
	return &VenueHandler{Service: svc, Logger: logger, DefaultLayout: defaultLayout, Now: time.Now}
}

// instantParam reads the optional RFC3339 "at" query parameter. Missing means
// now.
func (h *VenueHandler) instantParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("at")
	if raw == "" {
		if h.Now != nil {
			return h.Now(), true
		}
		return time.Now(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil && strings.Contains(raw, " ") {
		// An unescaped "+hh:mm" offset arrives form-decoded as a space.
		at, err = time.Parse(time.RFC3339, strings.ReplaceAll(raw, " ", "+"))
	}
	if err != nil {
		utils.JSONError(c, h.log(c), http.StatusBadRequest, "Invalid 'at' parameter",
			"expected an RFC3339 timestamp, got "+raw)
		return time.Time{}, false
	}
	return at, true
}

func (h *VenueHandler) layoutParam(c *gin.Context) string {
	switch format := c.Query("format"); format {
	case "":
		return h.DefaultLayout
	case "12h":
		return openingtimes.DefaultTimeLayout
	case "24h":
		return "15:04"
	default:
		return format
	}
}

// respondError maps service errors onto HTTP status codes.
func (h *VenueHandler) respondError(c *gin.Context, action string, err error) {
	var invalid *venue.InvalidVenueError
	switch {
	case errors.Is(err, venue.ErrVenueNotFound):
		utils.JSONError(c, h.log(c), http.StatusNotFound, "Venue not found", c.Param("id"))
	case errors.As(err, &invalid):
		utils.JSONError(c, h.log(c), http.StatusBadRequest, "Invalid venue", invalid.Err.Error())
	default:
		logger := h.log(c).With(zap.String("action", action), zap.Error(err))
		utils.JSONError(c, logger, http.StatusInternalServerError, "Failed to "+action, "")
	}
}

// CreateVenueHandler handles POST /api/venues.
func (h *VenueHandler) CreateVenueHandler(c *gin.Context) {
	var req models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, h.log(c), http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	v, err := h.Service.CreateVenue(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "create venue", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetVenueHandler handles GET /api/venues/:id.
func (h *VenueHandler) GetVenueHandler(c *gin.Context) {
	v, err := h.Service.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "fetch venue", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdateVenueHandler handles PUT /api/venues/:id.
func (h *VenueHandler) UpdateVenueHandler(c *gin.Context) {
	var req models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, h.log(c), http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	v, err := h.Service.UpdateVenue(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, "update venue", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVenueHandler handles DELETE /api/venues/:id.
func (h *VenueHandler) DeleteVenueHandler(c *gin.Context) {
	if err := h.Service.DeleteVenue(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "delete venue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
}

// GetVenueStatusHandler handles GET /api/venues/:id/status.
func (h *VenueHandler) GetVenueStatusHandler(c *gin.Context) {
	at, ok := h.instantParam(c)
	if !ok {
		return
	}
	status, err := h.Service.GetStatus(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		h.respondError(c, "evaluate venue status", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetVenueHoursHandler handles GET /api/venues/:id/hours.
func (h *VenueHandler) GetVenueHoursHandler(c *gin.Context) {
	hours, err := h.Service.GetOpeningHours(c.Request.Context(), c.Param("id"), h.layoutParam(c))
	if err != nil {
		h.respondError(c, "fetch opening hours", err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

// FindOpenVenuesHandler handles GET /api/venues/open.
func (h *VenueHandler) FindOpenVenuesHandler(c *gin.Context) {
	at, ok := h.instantParam(c)
	if !ok {
		return
	}
	venues, err := h.Service.FindOpenVenues(c.Request.Context(), c.Query("category"), at)
	if err != nil {
		h.respondError(c, "find open venues", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"at": at, "count": len(venues), "venues": venues})
}
