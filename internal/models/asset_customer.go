package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetCustomersInfo is a tenant lease record. An asset may carry several,
// each time-bounded.
type AssetCustomersInfo struct {
	ID             string     `json:"id" gorm:"primaryKey;size:128"`
	AssetID        *string    `json:"asset_id" gorm:"size:128;index"`
	CustomerID     string     `json:"customer_id" gorm:"size:128"`
	CustomerName   string     `json:"customer_name" gorm:"size:128"`
	RentalDuration int        `json:"rental_duration" gorm:"default:0"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	VlanID         string     `json:"vlan_id" gorm:"size:128"`
	FloatIP        string     `json:"float_ip" gorm:"size:128"`
	BandWidth      string     `json:"band_width" gorm:"size:128"`
	Description    string     `json:"description" gorm:"size:255"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for AssetCustomersInfo model
func (AssetCustomersInfo) TableName() string {
	return "ops_assets_customers_info"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (c *AssetCustomersInfo) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
