package db

import (
	"fmt"

	"asset_ops_server/config"
	"asset_ops_server/internal/models"
	"asset_ops_server/pkg/colors"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

var DB *gorm.DB

// Initialize establishes the postgres connection and runs migrations
func Initialize() error {
	dbConfig := config.GetDatabaseConfig()
	dsn := dbConfig.GetDSN()

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	colors.PrintSuccess("Database connection established successfully")

	if err := RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	return nil
}

// InitializeSQLite opens an SQLite database (modernc driver, no cgo) and runs
// the same migrations. Used by the test suites and for standalone demo runs.
func InitializeSQLite(dsn string) error {
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}

	var err error
	DB, err = gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %v", err)
	}

	return RunMigrations()
}

// RunMigrations runs all database migrations
func RunMigrations() error {
	// Base tables first, then the tables that reference assets by id
	err := DB.AutoMigrate(&models.User{})
	if err != nil {
		return fmt.Errorf("user table migration failed: %v", err)
	}

	err = DB.AutoMigrate(&models.AssetType{})
	if err != nil {
		return fmt.Errorf("asset type table migration failed: %v", err)
	}

	err = DB.AutoMigrate(&models.AssetBasicInfo{})
	if err != nil {
		return fmt.Errorf("asset basic info table migration failed: %v", err)
	}

	dependents := []interface{}{
		&models.AssetPartsInfo{},
		&models.AssetManufacturesInfo{},
		&models.AssetPositionsInfo{},
		&models.AssetContractsInfo{},
		&models.AssetBelongsInfo{},
		&models.AssetCustomersInfo{},
	}
	for _, m := range dependents {
		if err := DB.AutoMigrate(m); err != nil {
			return fmt.Errorf("asset dependent table migration failed: %v", err)
		}
	}

	err = DB.AutoMigrate(&models.BigscreenMetric{})
	if err != nil {
		return fmt.Errorf("bigscreen metrics table migration failed: %v", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
