package handler

import (
	"net/http"

	"requisicoes/internal/middleware"
	"requisicoes/internal/service"
	"requisicoes/pkg/pagination"
	"requisicoes/pkg/response"

	"github.com/gin-gonic/gin"
)

type RastreioHandler struct {
	rastreioService service.RastreioService
	auth            *middleware.Authenticator
}

func NewRastreioHandler(rastreioService service.RastreioService, auth *middleware.Authenticator) *RastreioHandler {
	return &RastreioHandler{rastreioService: rastreioService, auth: auth}
}

func (h *RastreioHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/rastreio", h.auth.RequireStaff(), h.List)
}

// @Summary      List approvals
// @Description  Approval records, newest first, with their requisition and items
// @Tags         Rastreio
// @Produce      json
// @Param        q     query string false "Search by destination, requester or id"
// @Param        page  query int    false "Page"
// @Param        limit query int    false "Page size"
// @Success      200 {object} response.Response{data=service.RastreioList}
// @Security     BearerAuth
// @Router       /api/rastreio [get]
func (h *RastreioHandler) List(c *gin.Context) {
	p := pagination.Parse(c)
	list, err := h.rastreioService.List(c.Request.Context(), c.Query("q"), p.Page, p.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}
