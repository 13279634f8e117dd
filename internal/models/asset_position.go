package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetPositionsInfo is the physical placement of an asset: machine room
// frame, cabinet and U slot.
type AssetPositionsInfo struct {
	ID              string    `json:"id" gorm:"primaryKey;size:128"`
	AssetID         *string   `json:"asset_id" gorm:"size:128;index"`
	FramePosition   string    `json:"frame_position" gorm:"size:128"`
	CabinetPosition string    `json:"cabinet_position" gorm:"size:128"`
	UPosition       string    `json:"u_position" gorm:"size:128"`
	Description     string    `json:"description" gorm:"size:255"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for AssetPositionsInfo model
func (AssetPositionsInfo) TableName() string {
	return "ops_assets_positions_info"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (p *AssetPositionsInfo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
