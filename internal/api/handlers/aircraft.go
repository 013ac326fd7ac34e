package handlers

import (
	"net/http"

	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AircraftHandler handles HTTP requests for the aircraft registry
type AircraftHandler struct {
	aircraftService service.AircraftServiceInterface
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(aircraftService service.AircraftServiceInterface) *AircraftHandler {
	return &AircraftHandler{aircraftService: aircraftService}
}

// ListAircraft handles GET /aircraft
// @Summary List produced aircraft
// @Tags aircraft
// @Produce json
// @Param aircraft_type query string false "Aircraft type" Enums(TB2, TB3, AKINCI, KIZILELMA)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AircraftListResponse
// @Failure 403 {object} ErrorResponse "Caller is not on the assembly team"
// @Security BearerAuth
// @Router /aircraft [get]
func (h *AircraftHandler) ListAircraft(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	aircraft, err := h.aircraftService.ListAircraft(c.Request.Context(), actor, c.Query("aircraft_type"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// GetAircraft handles GET /aircraft/:id
// @Summary Get aircraft by ID
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 200 {object} service.AircraftResponse
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [get]
func (h *AircraftHandler) GetAircraft(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	aircraft, err := h.aircraftService.GetAircraft(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}
