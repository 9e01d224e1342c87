// internal/models/property.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type PropertyKind string

const (
	PropertyKindList    PropertyKind = "list"
	PropertyKindNumeric PropertyKind = "int"
)

// PropertyValue is one declared value of a list property.
type PropertyValue struct {
	ValueUID string `json:"value_uid"`
	Label    string `json:"label,omitempty"`
}

// PropertyValues is stored as a single JSON column, in declaration order.
type PropertyValues []PropertyValue

func (v PropertyValues) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (v *PropertyValues) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}

	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("unsupported property values type %T", value)
	}
}

// Contains reports whether valueUID is declared for this set of values.
func (v PropertyValues) Contains(valueUID string) bool {
	for _, value := range v {
		if value.ValueUID == valueUID {
			return true
		}
	}
	return false
}

// Property is a facet definition products can be associated with.
// Values is nil for numeric properties.
type Property struct {
	UID       string         `json:"uid" gorm:"primaryKey;size:64"`
	Name      string         `json:"name" gorm:"size:255;not null;index"`
	Kind      PropertyKind   `json:"type" gorm:"size:16;not null"`
	Values    PropertyValues `json:"values,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
