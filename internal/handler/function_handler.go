package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"requisicoes/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingID  = "ID da requisição é obrigatório"
	msgMissingPin = "PIN não fornecido"
	msgInternal   = "Erro interno"
)

// FunctionHandler serves the generate-pdf and validate-pin operations with
// the JSON contract the front-end already speaks.
type FunctionHandler struct {
	documents service.DocumentService
	pins      service.PinService
}

func NewFunctionHandler(documents service.DocumentService, pins service.PinService) *FunctionHandler {
	return &FunctionHandler{documents: documents, pins: pins}
}

func (h *FunctionHandler) RegisterRoutes(router *gin.RouterGroup) {
	fn := router.Group("/functions/v1")
	{
		fn.POST("/generate-pdf", h.GeneratePDF)
		fn.POST("/validate-pin", h.ValidatePin)
	}
}

type generatePDFRequest struct {
	RequisicaoID json.Number `json:"requisicaoId" swaggertype:"integer"`
}

type generatePDFResponse struct {
	Success  bool   `json:"success"`
	PDFURL   string `json:"pdfUrl"`
	FileName string `json:"fileName"`
}

type functionError struct {
	Error string `json:"error"`
}

// @Summary      Generate requisition PDF
// @Description  Renders the delivery form of a requisition, stores it and records its public URL
// @Tags         Functions
// @Accept       json
// @Produce      json
// @Param        request body generatePDFRequest true "Requisition id"
// @Success      200 {object} generatePDFResponse
// @Failure      500 {object} functionError
// @Router       /functions/v1/generate-pdf [post]
func (h *FunctionHandler) GeneratePDF(c *gin.Context) {
	var req generatePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, functionError{Error: err.Error()})
		return
	}

	id, err := req.RequisicaoID.Int64()
	if err != nil || id == 0 {
		c.JSON(http.StatusInternalServerError, functionError{Error: msgMissingID})
		return
	}

	res, err := h.documents.GenerateDocument(c.Request.Context(), id)
	if err != nil {
		slog.Error("Error generating PDF", "requisicaoId", id, "error", err)
		c.JSON(http.StatusInternalServerError, functionError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, generatePDFResponse{Success: true, PDFURL: res.PDFURL, FileName: res.FileName})
}

type validatePinRequest struct {
	Pin interface{} `json:"pin" swaggertype:"string"`
}

type validatePinResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// @Summary      Validate application PIN
// @Description  Checks a PIN against the configured application PIN
// @Tags         Functions
// @Accept       json
// @Produce      json
// @Param        request body validatePinRequest true "PIN"
// @Success      200 {object} validatePinResponse
// @Failure      400 {object} validatePinResponse "PIN missing"
// @Failure      500 {object} validatePinResponse "PIN not configured"
// @Router       /functions/v1/validate-pin [post]
func (h *FunctionHandler) ValidatePin(c *gin.Context) {
	var req validatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Failed to decode PIN request", "error", err)
		c.JSON(http.StatusInternalServerError, validatePinResponse{Valid: false, Error: msgInternal})
		return
	}

	pin, ok := req.Pin.(string)
	if !ok || pin == "" {
		c.JSON(http.StatusBadRequest, validatePinResponse{Valid: false, Error: msgMissingPin})
		return
	}

	valid, err := h.pins.Validate(pin)
	if err != nil {
		if errors.Is(err, service.ErrPinNotConfigured) {
			slog.Error("APP_PIN is not configured")
			c.JSON(http.StatusInternalServerError, validatePinResponse{Valid: false, Error: service.ErrPinNotConfigured.Error()})
			return
		}
		slog.Error("Failed to validate PIN", "error", err)
		c.JSON(http.StatusInternalServerError, validatePinResponse{Valid: false, Error: msgInternal})
		return
	}

	slog.Info("PIN validated", "valid", valid)
	c.JSON(http.StatusOK, validatePinResponse{Valid: valid})
}
