package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset status values. The status column is an open set: the API stores what
// it is given, but import rows are validated against the known values so a
// typo in a spreadsheet fails that row instead of polluting the store.
const (
	AssetStatusInUse       = "in_use"
	AssetStatusFree        = "free"
	AssetStatusMaintenance = "maintenance"
	AssetStatusScrapped    = "scrapped"
)

// IsKnownAssetStatus reports whether s is one of the recognized status values.
func IsKnownAssetStatus(s string) bool {
	switch s {
	case AssetStatusInUse, AssetStatusFree, AssetStatusMaintenance, AssetStatusScrapped:
		return true
	}
	return false
}

// AssetBasicInfo is the identity record of one physical asset. All dependent
// records reference it by AssetID; it is the only table an asset cannot exist
// without.
type AssetBasicInfo struct {
	ID              string    `json:"id" gorm:"primaryKey;size:128"`
	AssetTypeID     string    `json:"asset_type_id" gorm:"size:128;index"`
	Name            string    `json:"name" gorm:"size:128"`
	Description     string    `json:"description" gorm:"size:255"`
	EquipmentNumber string    `json:"equipment_number" gorm:"size:128"`
	SnNumber        string    `json:"sn_number" gorm:"size:128;index"`
	AssetNumber     string    `json:"asset_number" gorm:"size:128;index"`
	AssetStatus     string    `json:"asset_status" gorm:"size:40"`
	Extra           ExtraMap  `json:"extra" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for AssetBasicInfo model
func (AssetBasicInfo) TableName() string {
	return "ops_assets_basic_info"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (a *AssetBasicInfo) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
