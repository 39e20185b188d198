package payroll

import "context"

type PayrollRepository interface {
	// UpsertRecord saves a calculated record, overwriting any existing row
	// for the same employee and period (last write wins, no versioning).
	UpsertRecord(ctx context.Context, record Record) (Record, error)

	GetRecordByID(ctx context.Context, id string) (Record, error)
	GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Record, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]Record, error)

	FinalizeRecords(ctx context.Context, ids []string, paidBy string) error
	DeleteRecord(ctx context.Context, id string) error

	GetSummary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
