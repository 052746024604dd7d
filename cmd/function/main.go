package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"requisicoes/internal/app"
	"requisicoes/internal/config"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/gin-gonic/gin"
)

var (
	generatePDF http.Handler
	validatePin http.Handler
	once        sync.Once
	initErr     error
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.HTTP("GeneratePDF", handleGeneratePDF)
	functions.HTTP("ValidatePin", handleValidatePin)
}

func setup() {
	cfg, err := config.Load("configs/.env")
	if err != nil {
		initErr = err
		return
	}
	gin.SetMode(gin.ReleaseMode)

	// No websocket clients reach a function instance.
	a, err := app.New(context.Background(), cfg, false)
	if err != nil {
		initErr = err
		return
	}
	h := a.FunctionHandler()

	// Each function answers on any path, the platform routes by function name.
	pdfEngine := gin.New()
	pdfEngine.Use(gin.Recovery(), a.CORS())
	pdfEngine.POST("/*path", h.GeneratePDF)
	generatePDF = pdfEngine

	pinEngine := gin.New()
	pinEngine.Use(gin.Recovery(), a.CORS())
	pinEngine.POST("/*path", h.ValidatePin)
	validatePin = pinEngine
}

func handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		http.Error(w, `{"error":"Erro interno"}`, http.StatusInternalServerError)
		return
	}
	generatePDF.ServeHTTP(w, r)
}

func handleValidatePin(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		http.Error(w, `{"valid":false,"error":"Erro interno"}`, http.StatusInternalServerError)
		return
	}
	validatePin.ServeHTTP(w, r)
}

// main starts the functions locally; FUNCTION_TARGET selects GeneratePDF or ValidatePin.
func main() {
	port := config.GetEnv("PORT", "8080")
	if err := funcframework.Start(port); err != nil {
		slog.Error("Function host failed", "error", err)
		os.Exit(1)
	}
}
