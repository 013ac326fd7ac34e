package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"aircraft-factory-backend/internal/auth"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error        string   `json:"error" example:"error message"`
	Code         string   `json:"code" example:"not_found"`
	MissingParts []string `json:"missing_parts,omitempty"`
}

// statusFor maps an application error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsPermission(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsInvalidState(err), apperrors.IsAlreadyUsed(err), apperrors.IsDuplicatePartType(err),
		apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		return http.StatusConflict
	case apperrors.IsIncompatiblePart(err), apperrors.IsIncompleteAssembly(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err using the standard error body
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	body := ErrorResponse{Error: err.Error(), Code: apperrors.Code(err)}

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		_ = c.Error(err)
		body.Error = "internal server error"
	}

	var incomplete *apperrors.IncompleteAssemblyError
	if errors.As(err, &incomplete) {
		body.MissingParts = incomplete.Missing
	}

	c.JSON(status, body)
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: apperrors.CodeValidation})
}

// actorID returns the authenticated user id or writes a 401
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingToken)
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a uuid path parameter or writes a 400
func pathUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondError(c, apperrors.NewValidationError(param, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and page_size; the services apply defaults and bounds
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}
