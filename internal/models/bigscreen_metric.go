package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BigscreenMetric is one entry of the dashboard metrics catalog: a named
// monitoring query the machine-room bigscreen renders. The catalog is static
// data seeded by cmd/seed-metrics; the server only lists it.
type BigscreenMetric struct {
	ID          string    `json:"id" gorm:"primaryKey;size:128"`
	Name        string    `json:"name" gorm:"size:128;uniqueIndex"`
	Description string    `json:"description" gorm:"size:255"`
	Query       string    `json:"query" gorm:"type:text"`
	Extra       string    `json:"extra" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for BigscreenMetric model
func (BigscreenMetric) TableName() string {
	return "ops_bigscreen_metrics_config"
}

// BeforeCreate hook to allocate an identifier when none is supplied
func (b *BigscreenMetric) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
