package handler

import (
	"net/http"

	"requisicoes/internal/middleware"
	"requisicoes/internal/service"
	"requisicoes/pkg/response"

	"github.com/gin-gonic/gin"
)

type OpcaoHandler struct {
	opcaoService service.OpcaoService
	auth         *middleware.Authenticator
}

func NewOpcaoHandler(opcaoService service.OpcaoService, auth *middleware.Authenticator) *OpcaoHandler {
	return &OpcaoHandler{opcaoService: opcaoService, auth: auth}
}

func (h *OpcaoHandler) RegisterRoutes(router *gin.RouterGroup) {
	opcoes := router.Group("/api/opcoes", h.auth.RequireStaff())
	{
		opcoes.GET("", h.List)
		opcoes.POST("", h.Add)
		opcoes.DELETE("/:tipo/:valor", h.Remove)
	}
}

// @Summary      List form options
// @Tags         Opcoes
// @Produce      json
// @Success      200 {object} response.Response{data=service.OpcoesResponse}
// @Security     BearerAuth
// @Router       /api/opcoes [get]
func (h *OpcaoHandler) List(c *gin.Context) {
	opcoes, err := h.opcaoService.GetOpcoes(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, opcoes))
}

// @Summary      Add form option
// @Tags         Opcoes
// @Accept       json
// @Produce      json
// @Param        request body service.OpcaoRequest true "Option"
// @Success      201 {object} response.Response{data=model.OpcaoFormulario}
// @Failure      400 {object} response.Response "Invalid input"
// @Security     BearerAuth
// @Router       /api/opcoes [post]
func (h *OpcaoHandler) Add(c *gin.Context) {
	var req service.OpcaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	opcao, err := h.opcaoService.AddOpcao(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, opcao))
}

// @Summary      Remove form option
// @Tags         Opcoes
// @Produce      json
// @Param        tipo  path string true "local_origem, destino, produto or unidade"
// @Param        valor path string true "Value"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "Not found"
// @Security     BearerAuth
// @Router       /api/opcoes/{tipo}/{valor} [delete]
func (h *OpcaoHandler) Remove(c *gin.Context) {
	if err := h.opcaoService.RemoveOpcao(c.Request.Context(), c.Param("tipo"), c.Param("valor")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Opção removida"}))
}
