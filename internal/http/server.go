package http

import (
	"net/http"
	"os"

	"asset_ops_server/internal/services"
	"asset_ops_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	port   string
}

// NewServer creates a new HTTP server instance
func NewServer(port string) *Server {
	// Set Gin to release mode to reduce debug output
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	if os.Getenv("LOG_HTTP") == "true" {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())

	// Initialize WebSocket hub and point the status hook at it
	InitializeWebSocket()
	services.StatusNotifier = func(assetID, status string) {
		if WSHub != nil {
			WSHub.BroadcastAssetStatus(assetID, status)
		}
	}

	SetupRoutes(router)

	return &Server{
		router: router,
		port:   port,
	}
}

// Start runs the HTTP server
func (s *Server) Start() error {
	colors.PrintServer("http", "HTTP Server listening on port %s", s.port)
	return s.router.Run(":" + s.port)
}

// CORSMiddleware handles cross-origin requests from the dashboard frontend
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
