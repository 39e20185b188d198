package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdjustmentHandler interface {
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	GetAdjustment(w http.ResponseWriter, r *http.Request)
	ListAdjustments(w http.ResponseWriter, r *http.Request)
	UpdateAdjustment(w http.ResponseWriter, r *http.Request)
	DeleteAdjustment(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

// CreateAdjustment implements AdjustmentHandler
func (h *adjustmentHandlerImpl) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAdjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment created", results)
}

// GetAdjustment implements AdjustmentHandler
func (h *adjustmentHandlerImpl) GetAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Adjustment ID is required", nil)
		return
	}

	result, err := h.adjustmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAdjustments implements AdjustmentHandler - adjustments filed under one
// payroll period
func (h *adjustmentHandlerImpl) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	filter := adjustment.PeriodFilter{Year: year, Month: month}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	results, err := h.adjustmentService.ListForPeriod(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateAdjustment implements AdjustmentHandler
func (h *adjustmentHandlerImpl) UpdateAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Adjustment ID is required", nil)
		return
	}

	var req adjustment.UpdateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAdjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.adjustmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAdjustment implements AdjustmentHandler
func (h *adjustmentHandlerImpl) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Adjustment ID is required", nil)
		return
	}

	if err := h.adjustmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment deleted", nil)
}
