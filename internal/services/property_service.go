// internal/services/property_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Player-18/catalog/internal/models"
	"github.com/Player-18/catalog/internal/utils"
)

type PropertyService struct {
	db *gorm.DB
}

type PropertyValueInput struct {
	ValueUID string `json:"value_uid" validate:"required,uid"`
	Label    string `json:"label,omitempty"`
}

type CreatePropertyRequest struct {
	UID    string               `json:"uid" validate:"required,uid"`
	Name   string               `json:"name" validate:"required,max=255"`
	Kind   models.PropertyKind  `json:"type" validate:"required,oneof=list int"`
	Values []PropertyValueInput `json:"values,omitempty" validate:"dive"`
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

func (s *PropertyService) CreateProperty(req *CreatePropertyRequest) (*models.Property, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	// A list property declares its value set up front; a numeric property
	// carries none.
	switch req.Kind {
	case models.PropertyKindList:
		if len(req.Values) == 0 {
			return nil, fmt.Errorf("%w: list property requires at least one value", ErrInvalid)
		}
	case models.PropertyKindNumeric:
		if len(req.Values) > 0 {
			return nil, fmt.Errorf("%w: numeric property must not declare values", ErrInvalid)
		}
	}

	seen := make(map[string]bool, len(req.Values))
	for _, value := range req.Values {
		if seen[value.ValueUID] {
			return nil, fmt.Errorf("%w: duplicate value %q", ErrInvalid, value.ValueUID)
		}
		seen[value.ValueUID] = true
	}

	var count int64
	if err := s.db.Model(&models.Property{}).Where("uid = ?", req.UID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("property %q: %w", req.UID, ErrConflict)
	}

	property := &models.Property{
		UID:  req.UID,
		Name: req.Name,
		Kind: req.Kind,
	}
	for _, value := range req.Values {
		property.Values = append(property.Values, models.PropertyValue{
			ValueUID: value.ValueUID,
			Label:    value.Label,
		})
	}

	if err := s.db.Create(property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

func (s *PropertyService) GetProperty(uid string) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property %q: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &property, nil
}

// DeleteProperty removes the property and every association referencing it.
func (s *PropertyService) DeleteProperty(uid string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.First(&property, "uid = ?", uid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("property %q: %w", uid, ErrNotFound)
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Where("property_uid = ?", uid).Delete(&models.ProductProperty{}).Error; err != nil {
			return fmt.Errorf("failed to delete associations: %w", err)
		}

		if err := tx.Delete(&property).Error; err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}

		return nil
	})
}
