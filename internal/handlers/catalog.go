// internal/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Player-18/catalog/internal/config"
	"github.com/Player-18/catalog/internal/filter"
	"github.com/Player-18/catalog/internal/services"
	"github.com/Player-18/catalog/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	cfg            config.CatalogConfig
}

func NewCatalogHandler(catalogService *services.CatalogService, cfg config.CatalogConfig) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, cfg: cfg}
}

// GET /catalog/
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	page := utils.GetPageParams(c, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	sort := c.DefaultQuery("sort", "uid")
	if sort != "uid" && sort != "name" {
		utils.BadRequestResponse(c, "sort must be uid or name", nil)
		return
	}

	filters, err := filter.Parse(c.Request.URL.Query())
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	products, total, err := h.catalogService.SearchProducts(services.SearchParams{
		Name:    c.Query("name"),
		Filters: filters,
		Sort:    sort,
		Offset:  page.Offset(),
		Limit:   page.PageSize,
	})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	responses := make([]*services.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, services.NewProductResponse(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": responses,
		"count":    total,
	})
}

// GET /catalog/filter/
func (h *CatalogHandler) GetFilterData(c *gin.Context) {
	filters, err := filter.Parse(c.Request.URL.Query())
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	data, err := h.catalogService.FilterData(services.FacetParams{
		Name:    c.Query("name"),
		Filters: filters,
	})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, data)
}
