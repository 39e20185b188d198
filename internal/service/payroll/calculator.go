package payroll

import (
	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/domain/payroll"
	"github.com/dealerdesk/backoffice-go/internal/pkg/period"
	attendancesvc "github.com/dealerdesk/backoffice-go/internal/service/attendance"
	"github.com/shopspring/decimal"
)

var hoursPerDay = decimal.NewFromInt(attendancesvc.StandardDayHours)

// CalculationInput carries everything the calculator needs. It is assembled
// by the service from the attendance pipeline and the adjustment ledger; the
// calculator itself touches no storage.
type CalculationInput struct {
	EmployeeID  string
	Period      period.Period
	BaseSalary  decimal.Decimal
	Grade       string
	Attendance  attendance.MonthlySummary
	Adjustments []adjustment.Adjustment
}

// Calculate produces a draft payroll record from one employee's attendance
// summary and period adjustments. Pure and deterministic: recalculating with
// the same input always yields the same figures.
//
// Working days are the days of the period's calendar month minus holidays.
// When that leaves zero days the prorated salary and hourly rate are both
// zero rather than a division error, so a fully-holiday month still
// produces a record.
func Calculate(in CalculationInput) payroll.Record {
	att := in.Attendance

	workingDays := in.Period.DaysInMonth() - att.HolidayDays
	if workingDays < 0 {
		workingDays = 0
	}

	var dailyRate, hourlyRate decimal.Decimal
	if workingDays > 0 {
		dailyRate = in.BaseSalary.Div(decimal.NewFromInt(int64(workingDays)))
		hourlyRate = dailyRate.Div(hoursPerDay)
	}

	prorated := dailyRate.Mul(decimal.NewFromInt(int64(att.TotalPresentDays)))
	overtimePay := att.PayableOvertimeHours.Mul(hourlyRate)

	totalBonus := decimal.Zero
	advanceCredit := decimal.Zero
	totalDeductions := decimal.Zero
	var deductions []payroll.DeductionItem

	for _, a := range in.Adjustments {
		switch a.Type {
		case adjustment.TypeBonus, adjustment.TypeAddition:
			totalBonus = totalBonus.Add(a.Amount)
		case adjustment.TypeAdvance:
			advanceCredit = advanceCredit.Add(a.Amount)
		case adjustment.TypeDeduction, adjustment.TypeEmployeeExpense:
			deductions = append(deductions, payroll.DeductionItem{
				Amount:  a.Amount,
				Remarks: a.Remarks,
			})
			totalDeductions = totalDeductions.Add(a.Amount)
		}
	}

	net := prorated.Add(overtimePay).Add(totalBonus).Add(advanceCredit).Sub(totalDeductions)

	return payroll.Record{
		EmployeeID:  in.EmployeeID,
		PeriodMonth: int(in.Period.Month),
		PeriodYear:  in.Period.Year,

		BaseSalary:     in.BaseSalary,
		Grade:          in.Grade,
		BaseHourlyRate: hourlyRate,
		Attendance: payroll.AttendanceSnapshot{
			PresentDays:          att.PresentDays,
			LateDays:             att.LateDays,
			AbsentDays:           att.AbsentDays,
			LeaveDays:            att.LeaveDays,
			HolidayDays:          att.HolidayDays,
			TotalPresentDays:     att.TotalPresentDays,
			RawOvertimeHours:     att.RawOvertimeHours,
			PayableOvertimeHours: att.PayableOvertimeHours,
		},
		Adjustments: in.Adjustments,

		WorkingDays:     workingDays,
		ProratedSalary:  prorated,
		OvertimePay:     overtimePay,
		TotalBonus:      totalBonus,
		AdvanceCredit:   advanceCredit,
		Deductions:      deductions,
		TotalDeductions: totalDeductions,
		NetSalary:       net,

		Status: payroll.StatusDraft,
	}
}
