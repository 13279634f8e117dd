package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetType is a classification node. ParentID forms a forest; depth is
// unbounded but cycles are rejected by the service layer.
type AssetType struct {
	ID            string    `json:"id" gorm:"primaryKey;size:128"`
	ParentID      *string   `json:"parent_id" gorm:"size:128;index"`
	AssetTypeName string    `json:"asset_type_name" gorm:"size:128"`
	NameLocalized string    `json:"asset_type_name_zh" gorm:"size:128"`
	Queue         int       `json:"queue" gorm:"not null;default:0"`
	Description   string    `json:"description" gorm:"size:255"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for AssetType model
func (AssetType) TableName() string {
	return "ops_assets_types"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (t *AssetType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
