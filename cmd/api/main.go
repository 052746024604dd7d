package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	_ "requisicoes/api/swagger" // swagger docs
	"requisicoes/internal/app"
	"requisicoes/internal/config"
	"requisicoes/internal/websocket"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Requisições de Material API
// @version         1.0
// @description     Material requisitions, approvals and delivery form generation.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load("configs/.env")
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	a, err := app.New(context.Background(), cfg, true)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	go a.Hub.Run()

	router := gin.Default()
	router.Use(a.CORS())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(a.Hub, c, []byte(cfg.JWTSecret))
	})

	a.RegisterRoutes(router.Group(""))

	slog.Info("Server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
