// internal/handlers/seed.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Player-18/catalog/internal/services"
	"github.com/Player-18/catalog/internal/utils"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// POST /load-test-data/
func (h *SeedHandler) LoadTestData(c *gin.Context) {
	var doc services.SeedDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.BadRequestResponse(c, "Invalid seed document", err.Error())
		return
	}

	if err := h.seedService.Load(&doc); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test data loaded successfully"})
}
