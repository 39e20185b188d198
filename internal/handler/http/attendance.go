package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ImportPunches(w http.ResponseWriter, r *http.Request)
	GetMonthlyAttendance(w http.ResponseWriter, r *http.Request)
	GetRules(w http.ResponseWriter, r *http.Request)
	UpdateRules(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// monthYearQuery parses the month/year query parameters, defaulting to the
// current month.
func monthYearQuery(r *http.Request) (month, year int) {
	now := time.Now()
	month, year = int(now.Month()), now.Year()

	if m := r.URL.Query().Get("month"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil {
			month = parsed
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if parsed, err := strconv.Atoi(y); err == nil {
			year = parsed
		}
	}
	return month, year
}

// ImportPunches implements AttendanceHandler
func (h *attendanceHandlerImpl) ImportPunches(w http.ResponseWriter, r *http.Request) {
	var req attendance.ImportPunchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ImportPunches decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ImportPunches(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Punches imported", "count", result.Imported)
	response.Created(w, "Punches imported", result)
}

// GetMonthlyAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	filter := attendance.MonthlyFilter{Year: year, Month: month}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	results, err := h.attendanceService.GetMonthlyAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetRules implements AttendanceHandler
func (h *attendanceHandlerImpl) GetRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateRules implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateRules(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRuleSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRules decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.UpdateRules(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance rules updated")
	response.Success(w, result)
}

// ListHolidays implements AttendanceHandler
func (h *attendanceHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		if parsed, err := strconv.Atoi(y); err == nil {
			year = parsed
		}
	}

	results, err := h.attendanceService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateHoliday implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

// DeleteHoliday implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.attendanceService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
