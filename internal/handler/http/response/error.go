package response

import (
	"errors"
	"net/http"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/domain/auth"
	"github.com/dealerdesk/backoffice-go/internal/domain/employee"
	"github.com/dealerdesk/backoffice-go/internal/domain/payroll"
	"github.com/dealerdesk/backoffice-go/internal/domain/user"
	"github.com/dealerdesk/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Attendance punch not found")
	case errors.Is(err, attendance.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, attendance.ErrHolidayExists):
		Conflict(w, "Holiday already exists on this date")
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Invalid attendance period", nil)

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")
	case errors.Is(err, adjustment.ErrInvalidType):
		BadRequest(w, "Invalid adjustment type", nil)
	case errors.Is(err, adjustment.ErrInvalidPeriod):
		BadRequest(w, "Invalid adjustment period", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrEmployeeHasNoBaseSalary):
		BadRequest(w, "Employee has no base salary configured", nil)
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrCannotDeletePaidRecord):
		Conflict(w, "Cannot delete a paid payroll record")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
