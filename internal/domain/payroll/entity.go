package payroll

import (
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft Status = "draft"
	StatusPaid  Status = "paid"
)

// DeductionItem is one deduction line on a payroll record.
type DeductionItem struct {
	Amount  decimal.Decimal `json:"amount"`
	Remarks string          `json:"remarks"`
}

// AttendanceSnapshot is the attendance aggregate frozen into a payroll
// record at calculation time, so the record stays explainable after rules
// or punches change.
type AttendanceSnapshot struct {
	PresentDays          int             `json:"present_days"`
	LateDays             int             `json:"late_days"`
	AbsentDays           int             `json:"absent_days"`
	LeaveDays            int             `json:"leave_days"`
	HolidayDays          int             `json:"holiday_days"`
	TotalPresentDays     int             `json:"total_present_days"`
	RawOvertimeHours     decimal.Decimal `json:"raw_overtime_hours"`
	PayableOvertimeHours decimal.Decimal `json:"payable_overtime_hours"`
}

// Record is one calculated payroll result for an employee and period.
// Recalculation overwrites the existing row; records are not versioned.
type Record struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	// Calculation input snapshot
	BaseSalary     decimal.Decimal
	Grade          string
	BaseHourlyRate decimal.Decimal
	Attendance     AttendanceSnapshot
	Adjustments    []adjustment.Adjustment

	// Calculation output
	WorkingDays     int
	ProratedSalary  decimal.Decimal
	OvertimePay     decimal.Decimal
	TotalBonus      decimal.Decimal
	AdvanceCredit   decimal.Decimal
	Deductions      []DeductionItem
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status    Status
	PaidAt    *time.Time
	PaidBy    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
