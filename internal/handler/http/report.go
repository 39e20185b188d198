package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dealerdesk/backoffice-go/internal/handler/http/response"
	"github.com/dealerdesk/backoffice-go/internal/service/report"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	ExportPayroll(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// ExportPayroll implements ReportHandler - streams the period's payroll as
// an xlsx download
func (h *reportHandlerImpl) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	f, filename, err := h.reportService.ExportPayroll(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamXlsx(w, f, filename)
}

// ExportAttendance implements ReportHandler
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	f, filename, err := h.reportService.ExportMonthlyAttendance(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamXlsx(w, f, filename)
}

func streamXlsx(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(w); err != nil {
		slog.Error("xlsx stream error", "error", err, "filename", filename)
	}
}
