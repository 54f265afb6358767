package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/salary"
	"github.com/meridianhr/payroll-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	CreateComponent(w http.ResponseWriter, r *http.Request)
	GetComponent(w http.ResponseWriter, r *http.Request)
	ListComponents(w http.ResponseWriter, r *http.Request)
	UpdateComponent(w http.ResponseWriter, r *http.Request)

	AssignComponent(w http.ResponseWriter, r *http.Request)
	ListEmployeeStructures(w http.ResponseWriter, r *http.Request)
	EndAssignment(w http.ResponseWriter, r *http.Request)
	DeactivateAssignment(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// ========== COMPONENTS ==========

func (h *salaryHandlerImpl) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryService.CreateComponent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary component created", result)
}

func (h *salaryHandlerImpl) GetComponent(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetComponent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *salaryHandlerImpl) ListComponents(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	results, err := h.salaryService.ListComponents(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *salaryHandlerImpl) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	var req salary.UpdateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.salaryService.UpdateComponent(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary component updated", nil)
}

// ========== STRUCTURE ASSIGNMENTS ==========

func (h *salaryHandlerImpl) AssignComponent(w http.ResponseWriter, r *http.Request) {
	var req salary.AssignComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.salaryService.AssignComponent(r.Context(), actorEmail(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary component assigned", result)
}

func (h *salaryHandlerImpl) ListEmployeeStructures(w http.ResponseWriter, r *http.Request) {
	results, err := h.salaryService.ListEmployeeStructures(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *salaryHandlerImpl) EndAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EndDate string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.EndDate == "" {
		response.BadRequest(w, "end_date is required", nil)
		return
	}

	if err := h.salaryService.EndAssignment(r.Context(), chi.URLParam(r, "assignmentID"), req.EndDate); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment ended", nil)
}

func (h *salaryHandlerImpl) DeactivateAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.salaryService.DeactivateAssignment(r.Context(), chi.URLParam(r, "assignmentID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment deactivated", nil)
}
