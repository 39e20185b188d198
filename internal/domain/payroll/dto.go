package payroll

import (
	"github.com/dealerdesk/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculatePayrollRequest struct {
	PeriodYear  int      `json:"period_year"`
	PeriodMonth int      `json:"period_month"`
	EmployeeIDs []string `json:"employee_ids"` // empty = all active employees
}

func (r *CalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "period_year is out of range"})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "period_month must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FinalizePayrollRequest struct {
	RecordIDs []string `json:"record_ids"`
}

func (r *FinalizePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "record_ids", Message: "at least one record id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Year       int
	Month      int
	EmployeeID *string
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionItemResponse struct {
	Amount  decimal.Decimal `json:"amount"`
	Remarks string          `json:"remarks"`
}

type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`

	BaseSalary     decimal.Decimal    `json:"base_salary"`
	Grade          string             `json:"grade"`
	BaseHourlyRate decimal.Decimal    `json:"base_hourly_rate"`
	Attendance     AttendanceSnapshot `json:"attendance"`

	WorkingDays     int                     `json:"working_days"`
	ProratedSalary  decimal.Decimal         `json:"prorated_salary"`
	OvertimePay     decimal.Decimal         `json:"overtime_pay"`
	TotalBonus      decimal.Decimal         `json:"total_bonus"`
	AdvanceCredit   decimal.Decimal         `json:"advance_credit"`
	Deductions      []DeductionItemResponse `json:"deductions"`
	TotalDeductions decimal.Decimal         `json:"total_deductions"`
	NetSalary       decimal.Decimal         `json:"net_salary"`

	Status Status  `json:"status"`
	PaidAt *string `json:"paid_at,omitempty"`
}

type PayrollSummaryResponse struct {
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	EmployeeCount   int             `json:"employee_count"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	TotalOvertime   decimal.Decimal `json:"total_overtime_pay"`
	TotalBonus      decimal.Decimal `json:"total_bonus"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
}
