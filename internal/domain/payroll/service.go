package payroll

import "context"

// PayrollService defines business logic for payroll calculation
type PayrollService interface {
	// CalculateForEmployee runs the full pipeline for one employee and
	// period (enrich punches, aggregate, join adjustments, calculate) and
	// saves the resulting record, overwriting a previous calculation.
	CalculateForEmployee(ctx context.Context, employeeID string, year, month int) (RecordResponse, error)

	// CalculateForPeriod fans CalculateForEmployee out over the selected
	// employees (all active ones when none are given).
	CalculateForPeriod(ctx context.Context, req CalculatePayrollRequest) ([]RecordResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]RecordResponse, error)

	FinalizeRecords(ctx context.Context, req FinalizePayrollRequest) error
	DeleteRecord(ctx context.Context, id string) error

	GetSummary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
