package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"asset_ops_server/config"
	"asset_ops_server/internal/db"
	"asset_ops_server/internal/http"
	"asset_ops_server/internal/models"
	"asset_ops_server/pkg/colors"

	"github.com/joho/godotenv"
)

func main() {
	// Print attractive banner
	colors.PrintBanner()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		colors.PrintWarning("No .env file found, using system environment variables")
	} else {
		colors.PrintSuccess("Environment configuration loaded from .env file")
	}

	// Initialize database connection
	colors.PrintInfo("Initializing database connection...")
	if err := db.Initialize(); err != nil {
		colors.PrintError("Failed to initialize database: %v", err)
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	if err := ensureDefaultAdmin(); err != nil {
		colors.PrintError("Failed to bootstrap admin account: %v", err)
		log.Fatalf("Admin bootstrap failed: %v", err)
	}

	// Export/template workbooks land here; fail early if it is unwritable
	excelDir, err := config.GetExcelTempDir()
	if err != nil {
		colors.PrintError("Excel working directory unavailable: %v", err)
		log.Fatalf("Excel directory bootstrap failed: %v", err)
	}
	colors.PrintInfo("Excel working directory: %s", excelDir)

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	colors.PrintHeader("OPS ASSET SERVER INITIALIZATION")
	colors.PrintServer("http", "HTTP Server configured for port %s (REST API Access)", httpPort)

	colors.PrintSubHeader("Available REST API Endpoints")
	colors.PrintEndpoint("GET", "/health", "Health check endpoint")
	colors.PrintEndpoint("POST", "/api/v1/auth/login", "User authentication")
	colors.PrintEndpoint("POST", "/api/v1/auth/logout", "Invalidate current token")
	colors.PrintEndpoint("GET", "/api/v1/auth/me", "Get user profile")

	colors.PrintSubHeader("Asset API Endpoints")
	colors.PrintEndpoint("GET", "/api/v1/assets", "List assets (filter, sort, paginate)")
	colors.PrintEndpoint("GET", "/api/v1/assets/:id", "Get one composed asset")
	colors.PrintEndpoint("POST", "/api/v1/assets", "Create asset")
	colors.PrintEndpoint("PUT", "/api/v1/assets/:id", "Update asset")
	colors.PrintEndpoint("DELETE", "/api/v1/assets/:id", "Delete asset (Admin)")
	colors.PrintEndpoint("POST", "/api/v1/assets/update_status", "Batch status update")
	colors.PrintEndpoint("GET", "/api/v1/assets/download", "Export workbook")
	colors.PrintEndpoint("POST", "/api/v1/assets/upload", "Import workbook")
	colors.PrintEndpoint("GET", "/api/v1/assets/templates/:template_id", "Download import template")

	colors.PrintSubHeader("Part & Catalog API Endpoints")
	colors.PrintEndpoint("GET", "/api/v1/parts", "List parts (inventory/used)")
	colors.PrintEndpoint("PUT", "/api/v1/parts/:id/bind/:asset_id", "Bind part to asset")
	colors.PrintEndpoint("PUT", "/api/v1/parts/:id/unbind/:asset_id", "Unbind part from asset")
	colors.PrintEndpoint("GET", "/api/v1/asset_types", "List classification tree")
	colors.PrintEndpoint("GET", "/api/v1/manufactures", "List manufacturers")
	colors.PrintEndpoint("GET", "/api/v1/bigscreens/metrics", "Dashboard metrics catalog")
	colors.PrintEndpoint("GET", "/api/v1/bigscreens/stats", "Dashboard inventory counters")

	colors.PrintSubHeader("WebSocket Connection")
	colors.PrintEndpoint("GET", "/ws", "Real-time asset status feed")

	errorChan := make(chan error, 1)
	go func() {
		httpServer := http.NewServer(httpPort)
		colors.PrintInfo("Starting HTTP Server for REST API...")
		if err := httpServer.Start(); err != nil {
			errorChan <- fmt.Errorf("HTTP server error: %v", err)
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errorChan:
		colors.PrintError("Server startup failed: %v", err)
		return
	case <-quit:
		colors.PrintShutdown()
		return
	}
}

// ensureDefaultAdmin creates the initial admin account when the user table is
// empty, so a fresh deployment can log in.
func ensureDefaultAdmin() error {
	database := db.GetDB()

	var count int64
	if err := database.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		colors.PrintWarning("ADMIN_PASSWORD not set, using the default; change it")
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: password,
		Role:     models.UserRoleAdmin,
	}
	if err := database.Create(&admin).Error; err != nil {
		return err
	}
	colors.PrintSuccess("Default admin account created: %s", email)
	return nil
}
