package adjustment

import (
	"github.com/dealerdesk/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdjustmentRequest struct {
	EmployeeID   string          `json:"employee_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Remarks      string          `json:"remarks"`
	Installments *int            `json:"installments"`
}

var knownTypes = []string{
	string(TypeBonus), string(TypeAddition), string(TypeDeduction),
	string(TypeEmployeeExpense), string(TypeAdvance),
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	if !validator.IsInSlice(r.Type, knownTypes) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of Bonus, Addition, Deduction, Employee Expense, Advance"})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if r.Installments != nil {
		if r.Type != string(TypeAdvance) {
			errs = append(errs, validator.ValidationError{Field: "installments", Message: "installments is only allowed for an Advance"})
		} else if *r.Installments < 1 {
			errs = append(errs, validator.ValidationError{Field: "installments", Message: "installments must be at least 1"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdjustmentRequest struct {
	ID      string           `json:"-"`
	Amount  *decimal.Decimal `json:"amount"`
	Date    *string          `json:"date"`
	Remarks *string          `json:"remarks"`
}

func (r *UpdateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}

	if r.Amount == nil && r.Date == nil && r.Remarks == nil {
		errs = append(errs, validator.ValidationError{Field: "request", Message: "no updatable fields provided"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodFilter struct {
	Year       int
	Month      int
	EmployeeID *string
}

func (f PeriodFilter) Validate() error {
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

type AdjustmentResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Remarks      string          `json:"remarks,omitempty"`
	Installments *int            `json:"installments,omitempty"`
	PeriodMonth  int             `json:"period_month"`
	PeriodYear   int             `json:"period_year"`
}
