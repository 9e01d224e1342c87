// internal/handlers/property.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Player-18/catalog/internal/services"
	"github.com/Player-18/catalog/internal/utils"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// serviceErrorResponse maps the service error taxonomy onto HTTP. Both
// conflicts and validation failures surface as 400, matching the public
// contract; only a missing uid is a 404.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.ErrorResponse(c, http.StatusBadRequest, "CONFLICT", err.Error(), nil)
	case errors.Is(err, services.ErrInvalid):
		if fieldErrors := utils.GetValidationErrors(err); len(fieldErrors) > 0 {
			utils.ValidationErrorResponse(c, fieldErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

// POST /properties/
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req services.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	property, err := h.propertyService.CreateProperty(&req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// GET /properties/:uid
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.GetProperty(c.Param("uid"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// DELETE /properties/:uid
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.propertyService.DeleteProperty(c.Param("uid")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}
