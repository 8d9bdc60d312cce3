package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents a registered seller on the marketplace.
type Company struct {
	gorm.Model

	// PublicID is the stable identifier exposed to clients and used as the
	// foreign key of translation rows.
	PublicID string `gorm:"type:uuid;uniqueIndex" json:"id"`
	// Name is the registered company name.
	Name string `gorm:"type:text;not null" json:"name"`
	// About is the company self-description in the source locale.
	About string `gorm:"type:text" json:"about"`
	// City is the company's home city.
	City string `gorm:"type:text" json:"city"`
}

// BeforeCreate generates the public UUID if one is not already set.
func (c *Company) BeforeCreate(tx *gorm.DB) (err error) {
	if c.PublicID == "" {
		c.PublicID = uuid.New().String()
	}
	return
}

// ObjectClass identifies the type for translation rows.
func (c *Company) ObjectClass() string { return "models.Company" }

// RecordKey returns the identifier translation rows are keyed by.
func (c *Company) RecordKey() string { return c.PublicID }
