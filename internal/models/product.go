// internal/models/product.go
package models

import "time"

type Product struct {
	UID       string    `json:"uid" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Properties []ProductProperty `json:"properties,omitempty" gorm:"foreignKey:ProductUID;references:UID"`
}

// ProductProperty links a product to a property it carries. ValueUID holds
// the chosen value for list properties, Value the number for numeric ones;
// legacy associations may carry neither. A product references a property at
// most once, enforced by the unique index.
type ProductProperty struct {
	ID          uint    `json:"-" gorm:"primaryKey"`
	ProductUID  string  `json:"-" gorm:"size:64;not null;uniqueIndex:idx_product_property"`
	PropertyUID string  `json:"uid" gorm:"size:64;not null;index;uniqueIndex:idx_product_property"`
	ValueUID    *string `json:"value_uid,omitempty" gorm:"size:64"`
	Value       *int64  `json:"value,omitempty"`

	Property Property `json:"-" gorm:"foreignKey:PropertyUID;references:UID"`
}
