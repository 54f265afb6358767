package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/meridianhr/payroll-backend-go/internal/domain/dashboard"
	"github.com/meridianhr/payroll-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	YearlyTrend(w http.ResponseWriter, r *http.Request)
	DepartmentCosts(w http.ResponseWriter, r *http.Request)
	RecentChanges(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// yearFromQuery defaults to the current year when no year is supplied.
func yearFromQuery(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

func (h *dashboardHandlerImpl) YearlyTrend(w http.ResponseWriter, r *http.Request) {
	year, ok := yearFromQuery(r)
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	results, err := h.dashboardService.YearlyTrend(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *dashboardHandlerImpl) DepartmentCosts(w http.ResponseWriter, r *http.Request) {
	year, ok := yearFromQuery(r)
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	results, err := h.dashboardService.DepartmentCosts(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *dashboardHandlerImpl) RecentChanges(w http.ResponseWriter, r *http.Request) {
	results, err := h.dashboardService.RecentChanges(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	year, ok := yearFromQuery(r)
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	result, err := h.dashboardService.Overview(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
