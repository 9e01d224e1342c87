// internal/services/seed_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"
)

// SeedService bulk-loads a catalog document: properties first, then
// products with their associations. The whole load runs in one
// transaction, so a bad entry leaves the catalog untouched.
type SeedService struct {
	db *gorm.DB
}

type SeedDocument struct {
	Properties []CreatePropertyRequest `json:"properties"`
	Products   []CreateProductRequest  `json:"products"`
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

func (s *SeedService) Load(doc *SeedDocument) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		properties := NewPropertyService(tx)
		products := NewProductService(tx)

		for i := range doc.Properties {
			if _, err := properties.CreateProperty(&doc.Properties[i]); err != nil {
				return fmt.Errorf("property %q: %w", doc.Properties[i].UID, err)
			}
		}

		for i := range doc.Products {
			if _, err := products.CreateProduct(&doc.Products[i]); err != nil {
				return fmt.Errorf("product %q: %w", doc.Products[i].UID, err)
			}
		}

		return nil
	})
}
