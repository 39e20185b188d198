package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dealerdesk/backoffice-go/internal/domain/payroll"
	"github.com/dealerdesk/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	CalculatePayroll(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	FinalizeRecords(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// CalculatePayroll implements PayrollHandler - runs the calculation for the
// requested employees, or every active employee when none are listed
func (h *payrollHandlerImpl) CalculatePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CalculatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.payrollService.CalculateForPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll calculated",
		"period_month", req.PeriodMonth, "period_year", req.PeriodYear,
		"records", len(results))
	response.Success(w, results)
}

// GetRecord implements PayrollHandler
func (h *payrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	result, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRecords implements PayrollHandler
func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	filter := payroll.ListFilter{Year: year, Month: month}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	results, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// FinalizeRecords implements PayrollHandler - marks draft records as paid
func (h *payrollHandlerImpl) FinalizeRecords(w http.ResponseWriter, r *http.Request) {
	var req payroll.FinalizePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("FinalizeRecords decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.FinalizeRecords(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll records finalized", "count", len(req.RecordIDs))
	response.SuccessWithMessage(w, "Payroll records finalized", nil)
}

// DeleteRecord implements PayrollHandler
func (h *payrollHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	if err := h.payrollService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}

// GetSummary implements PayrollHandler
func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	result, err := h.payrollService.GetSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
