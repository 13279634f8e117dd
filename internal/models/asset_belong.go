package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetBelongsInfo is the owning department and responsible person of an
// asset.
type AssetBelongsInfo struct {
	ID             string    `json:"id" gorm:"primaryKey;size:128"`
	AssetID        *string   `json:"asset_id" gorm:"size:128;index"`
	DepartmentID   string    `json:"department_id" gorm:"size:128"`
	DepartmentName string    `json:"department_name" gorm:"size:128"`
	UserID         string    `json:"user_id" gorm:"size:128"`
	UserName       string    `json:"user_name" gorm:"size:128"`
	TelNumber      string    `json:"tel_number" gorm:"size:128"`
	Description    string    `json:"description" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for AssetBelongsInfo model
func (AssetBelongsInfo) TableName() string {
	return "ops_assets_belongs_info"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (b *AssetBelongsInfo) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
