package handlers

import (
	"net/http"
	"strconv"

	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for part operations
type PartHandler struct {
	partService service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService service.PartServiceInterface) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// CreatePart handles POST /parts
// @Summary Produce a part
// @Description Register a new part produced by the caller's team
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.CreatePartRequest true "Part data"
// @Success 201 {object} service.PartResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Team cannot produce this part type"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	part, err := h.partService.CreatePart(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, part)
}

// ListParts handles GET /parts
// @Summary List parts
// @Description List parts visible to the caller. Production teams see their own parts, the assembly team sees all.
// @Tags parts
// @Produce json
// @Param part_type query string false "Part type" Enums(wing, body, tail, avionics)
// @Param aircraft_type query string false "Aircraft type" Enums(TB2, TB3, AKINCI, KIZILELMA)
// @Param recycled query bool false "Filter by recycled flag"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PartListResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	req := &service.ListPartsRequest{
		PartType:     c.Query("part_type"),
		AircraftType: c.Query("aircraft_type"),
		Page:         page,
		PageSize:     pageSize,
	}
	if raw := c.Query("recycled"); raw != "" {
		recycled, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, apperrors.NewValidationError("recycled", "must be a boolean"))
			return
		}
		req.Recycled = &recycled
	}

	parts, err := h.partService.ListParts(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

// GetPart handles GET /parts/:id
// @Summary Get part by ID
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	part, err := h.partService.GetPart(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// RecyclePart handles POST /parts/:id/recycle
// @Summary Recycle a part
// @Description Mark an unused part as recycled. Only the producing team may recycle.
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse
// @Failure 403 {object} ErrorResponse "Not the producing team"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 409 {object} ErrorResponse "Part is in use"
// @Security BearerAuth
// @Router /parts/{id}/recycle [post]
func (h *PartHandler) RecyclePart(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	part, err := h.partService.RecyclePart(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// AvailableParts handles GET /parts/available/:aircraft_type
// @Summary Available parts for an aircraft type
// @Description Without part_type, returns counts per part type. With part_type, returns the matching parts.
// @Tags parts
// @Produce json
// @Param aircraft_type path string true "Aircraft type" Enums(TB2, TB3, AKINCI, KIZILELMA)
// @Param part_type query string false "Part type" Enums(wing, body, tail, avionics)
// @Success 200 {object} service.AvailablePartsResponse
// @Failure 400 {object} ErrorResponse "Invalid aircraft or part type"
// @Security BearerAuth
// @Router /parts/available/{aircraft_type} [get]
func (h *PartHandler) AvailableParts(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	aircraftType := c.Param("aircraft_type")
	if partType := c.Query("part_type"); partType != "" {
		parts, err := h.partService.ListAvailable(c.Request.Context(), actor, aircraftType, partType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"parts": parts})
		return
	}

	summary, err := h.partService.AvailableSummary(c.Request.Context(), actor, aircraftType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
