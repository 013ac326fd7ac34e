package handlers

import (
	"net/http"

	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssemblyHandler handles HTTP requests for the assembly process
type AssemblyHandler struct {
	assemblyService service.AssemblyServiceInterface
	auditService    service.AuditServiceInterface
}

// NewAssemblyHandler creates a new assembly handler
func NewAssemblyHandler(assemblyService service.AssemblyServiceInterface, auditService service.AuditServiceInterface) *AssemblyHandler {
	return &AssemblyHandler{
		assemblyService: assemblyService,
		auditService:    auditService,
	}
}

// AddPartsRequest accepts a single part id, a list, or both
type AddPartsRequest struct {
	PartID  *uuid.UUID  `json:"part_id,omitempty"`
	PartIDs []uuid.UUID `json:"part_ids,omitempty"`
}

// ids returns part_id followed by part_ids. Repeats are kept so each one gets its own result.
func (r *AddPartsRequest) ids() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.PartIDs)+1)
	if r.PartID != nil {
		ids = append(ids, *r.PartID)
	}
	return append(ids, r.PartIDs...)
}

// CancelAssemblyRequest carries an optional cancellation reason
type CancelAssemblyRequest struct {
	Reason string `json:"reason"`
}

// StartAssembly handles POST /assemblies
// @Summary Start an assembly
// @Tags assemblies
// @Accept json
// @Produce json
// @Param assembly body service.StartAssemblyRequest true "Aircraft type"
// @Success 201 {object} service.AssemblyResponse
// @Failure 400 {object} ErrorResponse "Invalid aircraft type"
// @Failure 403 {object} ErrorResponse "Caller is not on the assembly team"
// @Security BearerAuth
// @Router /assemblies [post]
func (h *AssemblyHandler) StartAssembly(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req service.StartAssemblyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	assembly, err := h.assemblyService.Start(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assembly)
}

// ListAssemblies handles GET /assemblies
// @Summary List assemblies
// @Tags assemblies
// @Produce json
// @Param status query string false "Status" Enums(in_progress, completed, cancelled)
// @Param aircraft_type query string false "Aircraft type" Enums(TB2, TB3, AKINCI, KIZILELMA)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AssemblyListResponse
// @Failure 403 {object} ErrorResponse "Caller is not on the assembly team"
// @Security BearerAuth
// @Router /assemblies [get]
func (h *AssemblyHandler) ListAssemblies(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	assemblies, err := h.assemblyService.List(c.Request.Context(), actor, &service.ListAssembliesRequest{
		Status:       c.Query("status"),
		AircraftType: c.Query("aircraft_type"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assemblies)
}

// GetAssembly handles GET /assemblies/:id
// @Summary Get assembly by ID
// @Tags assemblies
// @Produce json
// @Param id path string true "Assembly ID (UUID)"
// @Success 200 {object} service.AssemblyResponse
// @Failure 404 {object} ErrorResponse "Assembly not found"
// @Security BearerAuth
// @Router /assemblies/{id} [get]
func (h *AssemblyHandler) GetAssembly(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	assembly, err := h.assemblyService.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assembly)
}

// AddParts handles POST /assemblies/:id/parts
// @Summary Attach parts to an assembly
// @Description Each part is attached independently. Returns 201 when at least one part was attached and 400 otherwise; both carry the per-part result.
// @Tags assemblies
// @Accept json
// @Produce json
// @Param id path string true "Assembly ID (UUID)"
// @Param parts body AddPartsRequest true "part_id and/or part_ids"
// @Success 201 {object} service.AddPartsResult
// @Failure 400 {object} service.AddPartsResult "No part could be attached"
// @Failure 409 {object} ErrorResponse "Assembly is not in progress"
// @Security BearerAuth
// @Router /assemblies/{id}/parts [post]
func (h *AssemblyHandler) AddParts(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req AddPartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.assemblyService.AddParts(c.Request.Context(), actor, id, req.ids())
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if len(result.Added) == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

// RemovePart handles DELETE /assemblies/:id/parts/:part_id
// @Summary Detach a part from an assembly
// @Tags assemblies
// @Produce json
// @Param id path string true "Assembly ID (UUID)"
// @Param part_id path string true "Part ID (UUID)"
// @Success 200 {object} service.AssemblyResponse
// @Failure 404 {object} ErrorResponse "Part is not attached"
// @Failure 409 {object} ErrorResponse "Assembly is not in progress"
// @Security BearerAuth
// @Router /assemblies/{id}/parts/{part_id} [delete]
func (h *AssemblyHandler) RemovePart(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	partID, ok := pathUUID(c, "part_id")
	if !ok {
		return
	}

	assembly, err := h.assemblyService.RemovePart(c.Request.Context(), actor, id, partID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assembly)
}

// CompleteAssembly handles POST /assemblies/:id/complete
// @Summary Complete an assembly
// @Description Builds the aircraft once all four part types are attached.
// @Tags assemblies
// @Produce json
// @Param id path string true "Assembly ID (UUID)"
// @Success 201 {object} service.AircraftResponse
// @Failure 409 {object} ErrorResponse "Assembly is not in progress"
// @Failure 422 {object} ErrorResponse "Assembly is missing parts"
// @Security BearerAuth
// @Router /assemblies/{id}/complete [post]
func (h *AssemblyHandler) CompleteAssembly(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	aircraft, err := h.assemblyService.Complete(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, aircraft)
}

// CancelAssembly handles POST /assemblies/:id/cancel
// @Summary Cancel an assembly
// @Description Detaches every part and marks the assembly cancelled.
// @Tags assemblies
// @Accept json
// @Produce json
// @Param id path string true "Assembly ID (UUID)"
// @Param body body CancelAssemblyRequest false "Cancellation reason"
// @Success 200 {object} service.AssemblyResponse
// @Failure 409 {object} ErrorResponse "Assembly is not in progress"
// @Security BearerAuth
// @Router /assemblies/{id}/cancel [post]
func (h *AssemblyHandler) CancelAssembly(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req CancelAssemblyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	assembly, err := h.assemblyService.Cancel(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assembly)
}

// ListLogs handles GET /assemblies/:id/logs
// @Summary Audit log of an assembly
// @Tags assemblies
// @Produce json
// @Param id path string true "Assembly ID (UUID)"
// @Param order query string false "Sort order by timestamp" Enums(asc, desc) default(desc)
// @Success 200 {array} service.AssemblyLogResponse
// @Failure 404 {object} ErrorResponse "Assembly not found"
// @Security BearerAuth
// @Router /assemblies/{id}/logs [get]
func (h *AssemblyHandler) ListLogs(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	logs, err := h.auditService.ListLogs(c.Request.Context(), actor, id, c.Query("order"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
