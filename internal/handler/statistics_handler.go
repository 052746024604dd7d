package handler

import (
	"net/http"

	"requisicoes/internal/middleware"
	"requisicoes/internal/service"
	"requisicoes/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	auth              *middleware.Authenticator
}

func NewStatisticsHandler(statisticsService service.StatisticsService, auth *middleware.Authenticator) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, auth: auth}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/dashboard", h.auth.RequireStaff(), h.GetDashboard)
}

// @Summary      Get dashboard
// @Description  Pending and approved counts, quantities requested in the last 7 days and requisitions per destination in the last 30 days
// @Tags         Statistics
// @Produce      json
// @Success      200 {object} response.Response{data=model.DashboardResponse}
// @Failure      401 {object} response.Response "Unauthorized"
// @Failure      500 {object} response.Response "Internal server error"
// @Security     BearerAuth
// @Router       /api/dashboard [get]
func (h *StatisticsHandler) GetDashboard(c *gin.Context) {
	stats, err := h.statisticsService.GetDashboard(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
