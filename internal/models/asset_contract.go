package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetContractsInfo is the procurement record of an asset.
type AssetContractsInfo struct {
	ID             string     `json:"id" gorm:"primaryKey;size:128"`
	AssetID        *string    `json:"asset_id" gorm:"size:128;index"`
	ContractNumber string     `json:"contract_number" gorm:"size:128"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	BatchNumber    string     `json:"batch_number" gorm:"size:10"`
	Description    string     `json:"description" gorm:"size:255"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for AssetContractsInfo model
func (AssetContractsInfo) TableName() string {
	return "ops_assets_contracts_info"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (c *AssetContractsInfo) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
