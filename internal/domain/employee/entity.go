package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "Active"
	StatusResigned EmploymentStatus = "Resigned"
)

type Employee struct {
	ID              string
	EmployeeCode    string
	FullName        string
	Grade           string
	Department      *string
	PhoneNumber     *string
	HireDate        time.Time
	ResignationDate *time.Time
	Status          EmploymentStatus
	BaseSalary      *decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the employee should be included in payroll runs.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
