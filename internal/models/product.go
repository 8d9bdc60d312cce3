package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product represents a machinery listing published by a company.
// Name and Description are authored in the source locale and rendered in
// other locales through the translation pipeline.
type Product struct {
	gorm.Model

	// PublicID is the stable identifier exposed to clients and used as the
	// foreign key of translation rows.
	PublicID string `gorm:"type:uuid;uniqueIndex" json:"id"`
	// Name is the listing title in the source locale.
	Name string `gorm:"type:text;not null" json:"name"`
	// Description is the free-form listing body in the source locale.
	Description string `gorm:"type:text" json:"description"`
	// Keywords are search tags attached by the listing company.
	Keywords pq.StringArray `gorm:"type:text[]" json:"keywords"`
	// CompanyID references the owning company listing.
	CompanyID uint `gorm:"index" json:"company_id"`
	// Price is the asking price in the listing currency, zero when the
	// company prefers contact-for-price.
	Price float64 `json:"price"`
}

// BeforeCreate generates the public UUID if one is not already set.
func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.PublicID == "" {
		p.PublicID = uuid.New().String()
	}
	return
}

// ObjectClass identifies the type for translation rows.
func (p *Product) ObjectClass() string { return "models.Product" }

// RecordKey returns the identifier translation rows are keyed by. It is
// empty until the product has been saved.
func (p *Product) RecordKey() string { return p.PublicID }
