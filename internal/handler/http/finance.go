package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/finance"
	"github.com/meridianhr/payroll-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	SaveSnapshot(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Latest(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	YearlyZakat(w http.ResponseWriter, r *http.Request)
	DeleteSnapshot(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

func (h *financeHandlerImpl) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req finance.SaveSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	// Snapshots are personal; the caller can only write their own.
	req.UserEmail = actorEmail(r)

	result, err := h.financeService.SaveSnapshot(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *financeHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	results, err := h.financeService.History(r.Context(), actorEmail(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

func (h *financeHandlerImpl) Latest(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.Latest(r.Context(), actorEmail(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *financeHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.Summary(r.Context(), actorEmail(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *financeHandlerImpl) YearlyZakat(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	total, err := h.financeService.YearlyZakat(r.Context(), actorEmail(r), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"year":        year,
		"total_zakat": total,
	})
}

func (h *financeHandlerImpl) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.financeService.DeleteSnapshot(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Snapshot deleted", nil)
}
