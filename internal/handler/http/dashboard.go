package http

import (
	"net/http"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/clockwise-hq/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Get implements DashboardHandler.
func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "Dashboard data retrieved successfully", result)
}
