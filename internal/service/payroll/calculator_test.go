package payroll

import (
	"testing"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/domain/payroll"
	"github.com/dealerdesk/backoffice-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// May 2024 has 31 calendar days; with 4 holidays that leaves 27 working days.
var may2024 = period.Period{Month: time.May, Year: 2024}

func TestCalculate_FullAttendanceNoAdjustments(t *testing.T) {
	rec := Calculate(CalculationInput{
		EmployeeID: "emp-1",
		Period:     may2024,
		BaseSalary: decimal.NewFromInt(24300),
		Grade:      "Senior",
		Attendance: attendance.MonthlySummary{
			PresentDays:      23,
			LateDays:         4,
			HolidayDays:      4,
			TotalPresentDays: 27,
		},
	})

	// 31 month days minus 4 holidays leaves 27 working days, a daily
	// rate of 900 and an hourly rate of 100.
	assert.Equal(t, 27, rec.WorkingDays)
	assert.True(t, rec.BaseHourlyRate.Equal(decimal.NewFromInt(100)), "hourly: %s", rec.BaseHourlyRate)
	assert.True(t, rec.ProratedSalary.Equal(decimal.NewFromInt(24300)))
	assert.True(t, rec.OvertimePay.IsZero())
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(24300)))
	assert.Equal(t, payroll.StatusDraft, rec.Status)
	assert.Equal(t, int(time.May), rec.PeriodMonth)
	assert.Equal(t, 2024, rec.PeriodYear)
}

func TestCalculate_WorkingDaysFollowCalendarMonth(t *testing.T) {
	// March 2024 has 31 days; with no holidays every one is a working day,
	// regardless of how long the adjustment-filing window before it was.
	rec := Calculate(CalculationInput{
		EmployeeID: "emp-1",
		Period:     period.Period{Month: time.March, Year: 2024},
		BaseSalary: decimal.NewFromInt(31000),
		Attendance: attendance.MonthlySummary{
			PresentDays:      31,
			TotalPresentDays: 31,
		},
	})

	assert.Equal(t, 31, rec.WorkingDays)
	assert.True(t, rec.ProratedSalary.Equal(decimal.NewFromInt(31000)))

	// February of a leap year.
	rec = Calculate(CalculationInput{
		EmployeeID: "emp-1",
		Period:     period.Period{Month: time.February, Year: 2024},
		BaseSalary: decimal.NewFromInt(29000),
		Attendance: attendance.MonthlySummary{
			PresentDays:      29,
			TotalPresentDays: 29,
		},
	})

	assert.Equal(t, 29, rec.WorkingDays)
	assert.True(t, rec.ProratedSalary.Equal(decimal.NewFromInt(29000)))
}

func TestCalculate_AbsenceProratesPay(t *testing.T) {
	rec := Calculate(CalculationInput{
		EmployeeID: "emp-1",
		Period:     may2024,
		BaseSalary: decimal.NewFromInt(24300),
		Attendance: attendance.MonthlySummary{
			PresentDays:      20,
			AbsentDays:       7,
			HolidayDays:      4,
			TotalPresentDays: 20,
		},
	})

	// 20 of 27 working days at 900 per day.
	assert.True(t, rec.ProratedSalary.Equal(decimal.NewFromInt(18000)), "prorated: %s", rec.ProratedSalary)
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(18000)))
}

func TestCalculate_OvertimePay(t *testing.T) {
	rec := Calculate(CalculationInput{
		EmployeeID: "emp-1",
		Period:     may2024,
		BaseSalary: decimal.NewFromInt(24300),
		Attendance: attendance.MonthlySummary{
			PresentDays:          27,
			HolidayDays:          4,
			TotalPresentDays:     27,
			PayableOvertimeHours: decimal.NewFromFloat(4.5),
		},
	})

	assert.True(t, rec.OvertimePay.Equal(decimal.NewFromInt(450)), "overtime pay: %s", rec.OvertimePay)
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(24750)))
}

func TestCalculate_AdjustmentPartitioning(t *testing.T) {
	adjustments := []adjustment.Adjustment{
		{Type: adjustment.TypeBonus, Amount: decimal.NewFromInt(500), Remarks: "Sales bonus"},
		{Type: adjustment.TypeAddition, Amount: decimal.NewFromInt(200)},
		{Type: adjustment.TypeAdvance, Amount: decimal.NewFromInt(1000)},
		{Type: adjustment.TypeDeduction, Amount: decimal.NewFromInt(300), Remarks: "Advance Installment 1/3"},
		{Type: adjustment.TypeEmployeeExpense, Amount: decimal.NewFromInt(150), Remarks: "Uniform"},
	}

	rec := Calculate(CalculationInput{
		EmployeeID: "emp-1",
		Period:     may2024,
		BaseSalary: decimal.NewFromInt(24300),
		Attendance: attendance.MonthlySummary{
			PresentDays:      27,
			HolidayDays:      4,
			TotalPresentDays: 27,
		},
		Adjustments: adjustments,
	})

	assert.True(t, rec.TotalBonus.Equal(decimal.NewFromInt(700)))
	assert.True(t, rec.AdvanceCredit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, rec.TotalDeductions.Equal(decimal.NewFromInt(450)))

	require.Len(t, rec.Deductions, 2)
	assert.Equal(t, "Advance Installment 1/3", rec.Deductions[0].Remarks)
	assert.Equal(t, "Uniform", rec.Deductions[1].Remarks)

	// 24300 + 700 + 1000 - 450
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(25550)), "net: %s", rec.NetSalary)
}

func TestCalculate_ZeroWorkingDays(t *testing.T) {
	rec := Calculate(CalculationInput{
		EmployeeID: "emp-1",
		Period:     may2024,
		BaseSalary: decimal.NewFromInt(24300),
		Attendance: attendance.MonthlySummary{
			HolidayDays: 31,
		},
	})

	assert.Equal(t, 0, rec.WorkingDays)
	assert.True(t, rec.ProratedSalary.IsZero())
	assert.True(t, rec.BaseHourlyRate.IsZero())
	assert.True(t, rec.NetSalary.IsZero())
}

func TestCalculate_Deterministic(t *testing.T) {
	in := CalculationInput{
		EmployeeID: "emp-1",
		Period:     may2024,
		BaseSalary: decimal.NewFromInt(17333),
		Attendance: attendance.MonthlySummary{
			PresentDays:          19,
			LateDays:             2,
			HolidayDays:          5,
			TotalPresentDays:     21,
			PayableOvertimeHours: decimal.NewFromFloat(7.25),
		},
		Adjustments: []adjustment.Adjustment{
			{Type: adjustment.TypeDeduction, Amount: decimal.NewFromFloat(123.45)},
		},
	}

	first := Calculate(in)
	second := Calculate(in)

	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.ProratedSalary.Equal(second.ProratedSalary))
	assert.True(t, first.OvertimePay.Equal(second.OvertimePay))
}
