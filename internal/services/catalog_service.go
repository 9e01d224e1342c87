// internal/services/catalog_service.go
package services

import (
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Player-18/catalog/internal/filter"
	"github.com/Player-18/catalog/internal/models"
)

// CatalogService computes filtered product pages and facet aggregates.
// Every filter is an independent constraint: a product matches when it
// satisfies all of them, each one expressed as a subquery over the
// association table.
type CatalogService struct {
	db               *gorm.DB
	excludeOwnFilter bool
}

type SearchParams struct {
	Name    string
	Filters map[string]filter.Spec
	Sort    string // "uid" (default) or "name"
	Offset  int
	Limit   int
}

type FacetParams struct {
	Name    string
	Filters map[string]filter.Spec
}

// NumericFacet carries the observed bounds of a numeric property across
// the candidate set; both fields are null when no candidate carries it.
type NumericFacet struct {
	MinValue *int64 `json:"min_value"`
	MaxValue *int64 `json:"max_value"`
}

// FilterData describes the whole filtered set: its size and, for every
// known property, either per-value counts (list) or a NumericFacet.
type FilterData struct {
	Count      int64                  `json:"count"`
	Properties map[string]interface{} `json:"properties"`
}

func NewCatalogService(db *gorm.DB, excludeOwnFilter bool) *CatalogService {
	return &CatalogService{db: db, excludeOwnFilter: excludeOwnFilter}
}

// SearchProducts returns one page of matching products and the total
// match count. The count is taken before pagination, so it is the same
// for every page of the same filter context.
func (s *CatalogService) SearchProducts(params SearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Properties.Property")
	query = s.applyFilters(query, params.Name, params.Filters, "")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if params.Sort == "name" {
		query = query.Order("name")
	} else {
		query = query.Order("uid")
	}

	var products []models.Product
	if err := query.Offset(params.Offset).Limit(params.Limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// FilterData computes facets for every known property against the
// candidate set of the supplied filter context. Pagination never applies
// here. With excludeOwnFilter set, the candidate set for a filtered
// property is recomputed without that property's own constraint, so its
// facet shows the alternatives still reachable from the other filters.
func (s *CatalogService) FilterData(params FacetParams) (*FilterData, error) {
	var properties []models.Property
	if err := s.db.Order("uid").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	baseIDs, err := s.candidateIDs(params.Name, params.Filters, "")
	if err != nil {
		return nil, err
	}

	data := &FilterData{
		Count:      int64(len(baseIDs)),
		Properties: make(map[string]interface{}, len(properties)),
	}

	for i := range properties {
		property := &properties[i]

		ids := baseIDs
		if s.excludeOwnFilter {
			if _, filtered := params.Filters[property.UID]; filtered {
				ids, err = s.candidateIDs(params.Name, params.Filters, property.UID)
				if err != nil {
					return nil, err
				}
			}
		}

		if property.Kind == models.PropertyKindList {
			facet, err := s.listFacet(property, ids)
			if err != nil {
				return nil, err
			}
			data.Properties[property.UID] = facet
		} else {
			facet, err := s.numericFacet(property, ids)
			if err != nil {
				return nil, err
			}
			data.Properties[property.UID] = facet
		}
	}

	return data, nil
}

// applyFilters narrows query to products matching the name substring and
// every filter except the excluded property uid.
func (s *CatalogService) applyFilters(query *gorm.DB, name string, filters map[string]filter.Spec, exclude string) *gorm.DB {
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	for uid, spec := range filters {
		if uid == exclude {
			continue
		}
		query = query.Where("uid IN (?)", s.associationSubquery(uid, spec))
	}
	return query
}

// associationSubquery selects the product uids satisfying a single
// filter. An enum filter also accepts associations with no recorded
// value: legacy rows predate per-association values and historically
// matched by mere presence. A range filter requires a recorded number.
func (s *CatalogService) associationSubquery(uid string, spec filter.Spec) *gorm.DB {
	subquery := s.db.Model(&models.ProductProperty{}).
		Select("product_uid").
		Where("property_uid = ?", uid)

	if spec.Enum != nil {
		subquery = subquery.Where("(value_uid IS NULL OR value_uid IN ?)", spec.Enum.Values)
	}
	if spec.Range != nil {
		subquery = subquery.Where("value IS NOT NULL")
		if spec.Range.From != nil {
			subquery = subquery.Where("value >= ?", *spec.Range.From)
		}
		if spec.Range.To != nil {
			subquery = subquery.Where("value <= ?", *spec.Range.To)
		}
	}

	return subquery
}

func (s *CatalogService) candidateIDs(name string, filters map[string]filter.Spec, exclude string) ([]string, error) {
	query := s.applyFilters(s.db.Model(&models.Product{}), name, filters, exclude)

	var ids []string
	if err := query.Pluck("uid", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch candidate set: %w", err)
	}
	return ids, nil
}

// listFacet counts candidates per declared value with one grouped query.
// Declared values nobody holds report zero; recorded values no longer
// declared on the property are dropped.
func (s *CatalogService) listFacet(property *models.Property, ids []string) (map[string]int64, error) {
	type valueCount struct {
		ValueUID string
		Total    int64
	}

	var rows []valueCount
	err := s.db.Model(&models.ProductProperty{}).
		Select("value_uid, COUNT(*) AS total").
		Where("property_uid = ? AND value_uid IS NOT NULL AND product_uid IN ?", property.UID, ids).
		Group("value_uid").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate facet for %q: %w", property.UID, err)
	}

	counts := make(map[string]int64, len(property.Values))
	for _, value := range property.Values {
		counts[value.ValueUID] = 0
	}
	for _, row := range rows {
		if _, declared := counts[row.ValueUID]; declared {
			counts[row.ValueUID] = row.Total
		}
	}

	return counts, nil
}

func (s *CatalogService) numericFacet(property *models.Property, ids []string) (*NumericFacet, error) {
	var bounds struct {
		MinValue sql.NullInt64
		MaxValue sql.NullInt64
	}

	err := s.db.Model(&models.ProductProperty{}).
		Select("MIN(value) AS min_value, MAX(value) AS max_value").
		Where("property_uid = ? AND product_uid IN ?", property.UID, ids).
		Scan(&bounds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate facet for %q: %w", property.UID, err)
	}

	facet := &NumericFacet{}
	if bounds.MinValue.Valid {
		value := bounds.MinValue.Int64
		facet.MinValue = &value
	}
	if bounds.MaxValue.Valid {
		value := bounds.MaxValue.Int64
		facet.MaxValue = &value
	}

	return facet, nil
}
