package report

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

// ReportService builds downloadable xlsx exports from the payroll and
// attendance views. The handler streams the returned file to the client.
type ReportService interface {
	ExportPayroll(ctx context.Context, month, year int) (*excelize.File, string, error)
	ExportMonthlyAttendance(ctx context.Context, month, year int) (*excelize.File, string, error)
}

type ReportServiceImpl struct {
	payrollService    payroll.PayrollService
	attendanceService attendance.AttendanceService
}

func NewReportService(
	payrollService payroll.PayrollService,
	attendanceService attendance.AttendanceService,
) ReportService {
	return &ReportServiceImpl{
		payrollService:    payrollService,
		attendanceService: attendanceService,
	}
}

var payrollHeaders = []string{
	"Employee Code", "Employee Name", "Grade", "Working Days", "Present Days",
	"Base Salary", "Prorated Salary", "Overtime Pay", "Bonus", "Advance",
	"Deductions", "Net Salary", "Status",
}

func (s *ReportServiceImpl) ExportPayroll(ctx context.Context, month, year int) (*excelize.File, string, error) {
	records, err := s.payrollService.ListRecords(ctx, payroll.ListFilter{Year: year, Month: month})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeHeaderRow(f, sheet, payrollHeaders); err != nil {
		return nil, "", err
	}

	for i, r := range records {
		row := i + 2
		cells := []interface{}{
			r.EmployeeCode,
			r.EmployeeName,
			r.Grade,
			r.WorkingDays,
			r.Attendance.TotalPresentDays,
			r.BaseSalary.InexactFloat64(),
			r.ProratedSalary.InexactFloat64(),
			r.OvertimePay.InexactFloat64(),
			r.TotalBonus.InexactFloat64(),
			r.AdvanceCredit.InexactFloat64(),
			r.TotalDeductions.InexactFloat64(),
			r.NetSalary.InexactFloat64(),
			string(r.Status),
		}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return nil, "", err
		}
	}

	filename := fmt.Sprintf("payroll-%04d-%02d.xlsx", year, month)
	return f, filename, nil
}

var attendanceHeaders = []string{
	"Employee Code", "Employee Name", "Present", "Late", "Absent", "Leave",
	"Holiday", "Total Present", "Raw Overtime (h)", "Payable Overtime (h)",
}

func (s *ReportServiceImpl) ExportMonthlyAttendance(ctx context.Context, month, year int) (*excelize.File, string, error) {
	summaries, err := s.attendanceService.GetMonthlyAttendance(ctx, attendance.MonthlyFilter{Year: year, Month: month})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeHeaderRow(f, sheet, attendanceHeaders); err != nil {
		return nil, "", err
	}

	for i, sm := range summaries {
		row := i + 2
		cells := []interface{}{
			sm.EmployeeCode,
			sm.EmployeeName,
			sm.PresentDays,
			sm.LateDays,
			sm.AbsentDays,
			sm.LeaveDays,
			sm.HolidayDays,
			sm.TotalPresentDays,
			sm.RawOvertimeHours.InexactFloat64(),
			sm.PayableOvertimeHours.InexactFloat64(),
		}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return nil, "", err
		}
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.xlsx", year, month)
	return f, filename, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return writeRow(f, sheet, 1, cells)
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
