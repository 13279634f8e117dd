package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Part catalog values used by the list filter. A part's catalog is derived
// from AssetID alone: NULL means inventory, anything else means used. There
// is deliberately no separate status flag that could disagree with it.
const (
	PartCatalogInventory = "inventory"
	PartCatalogUsed      = "used"
)

// AssetPartsInfo is a component, either sitting in inventory or installed in
// an asset.
type AssetPartsInfo struct {
	ID               string    `json:"id" gorm:"primaryKey;size:128"`
	AssetID          *string   `json:"asset_id" gorm:"size:128;index"`
	PartType         string    `json:"part_type" gorm:"size:128"`
	PartBrand        string    `json:"part_brand" gorm:"size:128"`
	PartConfig       string    `json:"part_config" gorm:"size:128"`
	PartNumber       string    `json:"part_number" gorm:"size:128;index"`
	PersonalUsedFlag bool      `json:"personal_used_flag" gorm:"default:false"`
	Surplus          string    `json:"surplus" gorm:"size:128"`
	Name             string    `json:"name" gorm:"size:128"`
	Description      string    `json:"description" gorm:"size:255"`
	Extra            ExtraMap  `json:"extra" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for AssetPartsInfo model
func (AssetPartsInfo) TableName() string {
	return "ops_assets_parts_info"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (p *AssetPartsInfo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// Catalog returns the derived inventory/used classification.
func (p *AssetPartsInfo) Catalog() string {
	if p.AssetID == nil || *p.AssetID == "" {
		return PartCatalogInventory
	}
	return PartCatalogUsed
}
