package employee

import (
	"github.com/dealerdesk/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code"`
	FullName     string           `json:"full_name"`
	Grade        string           `json:"grade"`
	Department   *string          `json:"department"`
	PhoneNumber  *string          `json:"phone_number"`
	HireDate     string           `json:"hire_date"`
	BaseSalary   *decimal.Decimal `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code must look like EMP-0001"})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}

	if validator.IsEmpty(r.Grade) {
		errs = append(errs, validator.ValidationError{Field: "grade", Message: "grade is required"})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID              string           `json:"-"`
	FullName        *string          `json:"full_name"`
	Grade           *string          `json:"grade"`
	Department      *string          `json:"department"`
	PhoneNumber     *string          `json:"phone_number"`
	BaseSalary      *decimal.Decimal `json:"base_salary"`
	Status          *string          `json:"status"`
	ResignationDate *string          `json:"resignation_date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusResigned)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Active or Resigned"})
	}

	if r.ResignationDate != nil {
		if _, ok := validator.IsValidDate(*r.ResignationDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "resignation_date", Message: "resignation_date must be YYYY-MM-DD"})
		}
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string           `json:"id"`
	EmployeeCode    string           `json:"employee_code"`
	FullName        string           `json:"full_name"`
	Grade           string           `json:"grade"`
	Department      *string          `json:"department,omitempty"`
	PhoneNumber     *string          `json:"phone_number,omitempty"`
	HireDate        string           `json:"hire_date"`
	ResignationDate *string          `json:"resignation_date,omitempty"`
	Status          string           `json:"status"`
	BaseSalary      *decimal.Decimal `json:"base_salary,omitempty"`
}
