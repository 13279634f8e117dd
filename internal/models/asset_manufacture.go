package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetManufacturesInfo is vendor information for an asset. The table is
// list-capable but usage is one row per asset.
type AssetManufacturesInfo struct {
	ID          string    `json:"id" gorm:"primaryKey;size:128"`
	AssetID     *string   `json:"asset_id" gorm:"size:128;index"`
	Name        string    `json:"name" gorm:"size:128"`
	Description string    `json:"description" gorm:"size:255"`
	Extra       ExtraMap  `json:"extra" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for AssetManufacturesInfo model
func (AssetManufacturesInfo) TableName() string {
	return "ops_assets_manufactures_info"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (m *AssetManufacturesInfo) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
