// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Player-18/catalog/internal/models"
	"github.com/Player-18/catalog/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type ProductPropertyInput struct {
	UID      string  `json:"uid" validate:"required"`
	ValueUID *string `json:"value_uid,omitempty"`
	Value    *int64  `json:"value,omitempty"`
}

type CreateProductRequest struct {
	UID        string                 `json:"uid" validate:"required,uid"`
	Name       string                 `json:"name" validate:"required,max=255"`
	Properties []ProductPropertyInput `json:"properties" validate:"dive"`
}

// ProductPropertyResponse is an association with the property name and
// the concrete value resolved.
type ProductPropertyResponse struct {
	UID      string  `json:"uid"`
	Name     string  `json:"name"`
	ValueUID *string `json:"value_uid,omitempty"`
	Value    *int64  `json:"value,omitempty"`
}

type ProductResponse struct {
	UID        string                    `json:"uid"`
	Name       string                    `json:"name"`
	Properties []ProductPropertyResponse `json:"properties"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// NewProductResponse maps a product with preloaded associations to the
// response shape.
func NewProductResponse(product *models.Product) *ProductResponse {
	resp := &ProductResponse{
		UID:        product.UID,
		Name:       product.Name,
		Properties: make([]ProductPropertyResponse, 0, len(product.Properties)),
	}
	for _, assoc := range product.Properties {
		resp.Properties = append(resp.Properties, ProductPropertyResponse{
			UID:      assoc.PropertyUID,
			Name:     assoc.Property.Name,
			ValueUID: assoc.ValueUID,
			Value:    assoc.Value,
		})
	}
	return resp
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var count int64
	if err := s.db.Model(&models.Product{}).Where("uid = ?", req.UID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("product %q: %w", req.UID, ErrConflict)
	}

	associations, err := s.buildAssociations(req)
	if err != nil {
		return nil, err
	}

	product := &models.Product{UID: req.UID, Name: req.Name}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		for i := range associations {
			if err := tx.Create(&associations[i]).Error; err != nil {
				return fmt.Errorf("failed to create association: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(req.UID)
}

// buildAssociations resolves the referenced properties and checks every
// supplied value against its property definition.
func (s *ProductService) buildAssociations(req *CreateProductRequest) ([]models.ProductProperty, error) {
	uids := make([]string, 0, len(req.Properties))
	for _, input := range req.Properties {
		uids = append(uids, input.UID)
	}

	var properties []models.Property
	if len(uids) > 0 {
		if err := s.db.Where("uid IN ?", uids).Find(&properties).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
	}
	byUID := make(map[string]*models.Property, len(properties))
	for i := range properties {
		byUID[properties[i].UID] = &properties[i]
	}

	seen := make(map[string]bool, len(req.Properties))
	associations := make([]models.ProductProperty, 0, len(req.Properties))

	for _, input := range req.Properties {
		property, ok := byUID[input.UID]
		if !ok {
			return nil, fmt.Errorf("%w: property %q not found", ErrInvalid, input.UID)
		}
		if seen[input.UID] {
			return nil, fmt.Errorf("%w: property %q referenced more than once", ErrInvalid, input.UID)
		}
		seen[input.UID] = true

		switch property.Kind {
		case models.PropertyKindList:
			if input.Value != nil {
				return nil, fmt.Errorf("%w: property %q takes a value_uid, not a number", ErrInvalid, input.UID)
			}
			if input.ValueUID != nil && !property.Values.Contains(*input.ValueUID) {
				return nil, fmt.Errorf("%w: value %q not declared for property %q", ErrInvalid, *input.ValueUID, input.UID)
			}
		case models.PropertyKindNumeric:
			if input.ValueUID != nil {
				return nil, fmt.Errorf("%w: property %q takes a number, not a value_uid", ErrInvalid, input.UID)
			}
		}

		associations = append(associations, models.ProductProperty{
			ProductUID:  req.UID,
			PropertyUID: input.UID,
			ValueUID:    input.ValueUID,
			Value:       input.Value,
		})
	}

	return associations, nil
}

func (s *ProductService) GetProduct(uid string) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Properties.Property").First(&product, "uid = ?", uid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %q: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// DeleteProduct removes the product and its associations.
func (s *ProductService) DeleteProduct(uid string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "uid = ?", uid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %q: %w", uid, ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Where("product_uid = ?", uid).Delete(&models.ProductProperty{}).Error; err != nil {
			return fmt.Errorf("failed to delete associations: %w", err)
		}

		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		return nil
	})
}
