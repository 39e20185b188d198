package adjustment

import "context"

// AdjustmentService defines business logic for the financial adjustment ledger
type AdjustmentService interface {
	// Create records an adjustment. For an Advance with installments it
	// returns the advance followed by every synthesized installment
	// deduction.
	Create(ctx context.Context, req CreateAdjustmentRequest) ([]AdjustmentResponse, error)

	Get(ctx context.Context, id string) (AdjustmentResponse, error)

	// ListForPeriod returns the adjustments filed under one payroll period
	// (21st-to-20th window).
	ListForPeriod(ctx context.Context, filter PeriodFilter) ([]AdjustmentResponse, error)

	// Update replaces fields in place. It never regenerates installments,
	// even when an Advance amount changes.
	Update(ctx context.Context, req UpdateAdjustmentRequest) (AdjustmentResponse, error)

	// Delete removes a single adjustment. Deleting an Advance leaves its
	// installment deductions behind.
	Delete(ctx context.Context, id string) error
}
