// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type PageParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// GetPageParams reads 1-based page and page_size from the query,
// clamping page_size to [1, maxPageSize] and page to >= 1.
func GetPageParams(c *gin.Context, defaultPageSize, maxPageSize int) PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return PageParams{Page: page, PageSize: pageSize}
}

// Offset converts the 1-based page to a row offset; page 1 starts at 0.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
