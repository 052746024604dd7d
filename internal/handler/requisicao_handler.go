package handler

import (
	"net/http"
	"strconv"

	"requisicoes/internal/middleware"
	"requisicoes/internal/model"
	"requisicoes/internal/repository"
	"requisicoes/internal/service"
	"requisicoes/pkg/pagination"
	"requisicoes/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequisicaoHandler struct {
	requisicaoService service.RequisicaoService
	auth              *middleware.Authenticator
}

func NewRequisicaoHandler(requisicaoService service.RequisicaoService, auth *middleware.Authenticator) *RequisicaoHandler {
	return &RequisicaoHandler{requisicaoService: requisicaoService, auth: auth}
}

func (h *RequisicaoHandler) RegisterRoutes(router *gin.RouterGroup) {
	reqGroup := router.Group("/api/requisicoes", h.auth.RequireStaff())
	{
		reqGroup.POST("", h.Create)
		reqGroup.GET("", h.List)
		reqGroup.GET("/:id", h.Get)
		reqGroup.PUT("/:id", h.Update)
		reqGroup.POST("/:id/pdf", h.Regenerate)
		reqGroup.POST("/:id/aprovar", h.auth.RequireRole(middleware.RoleAdmin, middleware.RoleAprovador), h.Approve)
	}
	router.GET("/api/destinos", h.auth.RequireStaff(), h.ListDestinos)
}

// @Summary      Create requisition
// @Description  Creates a pending material requisition with its items
// @Tags         Requisicoes
// @Accept       json
// @Produce      json
// @Param        request body service.CreateRequisicaoRequest true "Requisition"
// @Success      201 {object} response.Response{data=model.Requisicao}
// @Failure      400 {object} response.Response "Invalid input"
// @Failure      401 {object} response.Response "Unauthorized"
// @Security     BearerAuth
// @Router       /api/requisicoes [post]
func (h *RequisicaoHandler) Create(c *gin.Context) {
	var req service.CreateRequisicaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	created, err := h.requisicaoService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

// @Summary      List requisitions
// @Description  Lists requisitions, newest first
// @Tags         Requisicoes
// @Produce      json
// @Param        status  query string false "pendente, aprovada or gerada"
// @Param        destino query string false "Destination"
// @Param        q       query string false "Search by requester, destination or id"
// @Param        page    query int    false "Page"
// @Param        limit   query int    false "Page size"
// @Success      200 {object} response.Response{data=response.Page}
// @Security     BearerAuth
// @Router       /api/requisicoes [get]
func (h *RequisicaoHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !model.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid status filter"))
		return
	}

	p := pagination.Parse(c)
	filter := repository.RequisicaoFilter{
		Status:  status,
		Destino: c.Query("destino"),
		Search:  c.Query("q"),
		Page:    p.Page,
		Limit:   p.Limit,
	}

	reqs, total, err := h.requisicaoService.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, reqs, total, p))
}

// @Summary      Get requisition
// @Tags         Requisicoes
// @Produce      json
// @Param        id path int true "Requisition ID"
// @Success      200 {object} response.Response{data=model.Requisicao}
// @Failure      404 {object} response.Response "Not found"
// @Security     BearerAuth
// @Router       /api/requisicoes/{id} [get]
func (h *RequisicaoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, err := h.requisicaoService.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// @Summary      Edit requisition
// @Description  Edits a pending requisition and reconciles its items
// @Tags         Requisicoes
// @Accept       json
// @Produce      json
// @Param        id      path int                             true "Requisition ID"
// @Param        request body service.UpdateRequisicaoRequest true "Changes"
// @Success      200 {object} response.Response{data=model.Requisicao}
// @Failure      409 {object} response.Response "Not pending"
// @Security     BearerAuth
// @Router       /api/requisicoes/{id} [put]
func (h *RequisicaoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req service.UpdateRequisicaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	updated, err := h.requisicaoService.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, updated))
}

// @Summary      Approve requisition
// @Description  Generates the PDF, marks the requisition approved and records the approval
// @Tags         Requisicoes
// @Produce      json
// @Param        id path int true "Requisition ID"
// @Success      200 {object} response.Response{data=service.GenerateResult}
// @Failure      403 {object} response.Response "Forbidden"
// @Failure      409 {object} response.Response "Not pending"
// @Security     BearerAuth
// @Router       /api/requisicoes/{id}/aprovar [post]
func (h *RequisicaoHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.requisicaoService.Approve(c.Request.Context(), id, middleware.UserEmail(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// @Summary      Regenerate requisition PDF
// @Tags         Requisicoes
// @Produce      json
// @Param        id path int true "Requisition ID"
// @Success      200 {object} response.Response{data=service.GenerateResult}
// @Security     BearerAuth
// @Router       /api/requisicoes/{id}/pdf [post]
func (h *RequisicaoHandler) Regenerate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.requisicaoService.Regenerate(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// @Summary      List destinations
// @Description  Distinct destinations of stored requisitions
// @Tags         Requisicoes
// @Produce      json
// @Success      200 {object} response.Response{data=[]string}
// @Security     BearerAuth
// @Router       /api/destinos [get]
func (h *RequisicaoHandler) ListDestinos(c *gin.Context) {
	destinos, err := h.requisicaoService.ListDestinos(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, destinos))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid requisition id"))
		return 0, false
	}
	return id, true
}
