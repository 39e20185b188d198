package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type tags a financial adjustment. The labels are stored as-is and matched
// exactly in payroll partitioning.
type Type string

const (
	TypeBonus           Type = "Bonus"
	TypeAddition        Type = "Addition"
	TypeDeduction       Type = "Deduction"
	TypeEmployeeExpense Type = "Employee Expense"
	TypeAdvance         Type = "Advance"
)

// Adjustment is one ad-hoc financial entry for an employee. It is filed under
// the payroll period whose 21st-to-20th window contains Date. Installment
// deductions synthesized from an Advance are first-class adjustments: they can
// be edited or deleted on their own, and deleting the parent Advance does not
// cascade to them.
type Adjustment struct {
	ID           string
	EmployeeID   string
	Type         Type
	Amount       decimal.Decimal
	Date         time.Time
	Remarks      string
	Installments *int // only set on an Advance
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// IsCredit reports whether the adjustment adds to net salary.
func (a Adjustment) IsCredit() bool {
	switch a.Type {
	case TypeBonus, TypeAddition, TypeAdvance:
		return true
	}
	return false
}
