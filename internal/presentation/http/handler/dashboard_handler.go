package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/senicpos/pos-api/internal/application/service"
	"github.com/senicpos/pos-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard statistics requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles retrieving a tenant's dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId")
	if !ok {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard statistics retrieved successfully", stats)
}
