package payroll

import "errors"

var (
	ErrPayrollRecordNotFound   = errors.New("payroll record not found")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
	ErrEmployeeHasNoBaseSalary = errors.New("employee has no base salary configured")
	ErrRecordAlreadyPaid       = errors.New("payroll record already paid, cannot modify")
	ErrCannotDeletePaidRecord  = errors.New("cannot delete paid payroll record")
)
