package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	// Create persists one or more adjustments in a single transaction.
	// An Advance arrives together with its synthesized installment
	// deductions so they are stored atomically.
	Create(ctx context.Context, adjustments []Adjustment) ([]Adjustment, error)

	GetByID(ctx context.Context, id string) (Adjustment, error)

	// ListBetween returns adjustments whose date falls in [from, to],
	// optionally narrowed to one employee. Period windows are resolved by
	// the caller.
	ListBetween(ctx context.Context, from, to time.Time, employeeID *string) ([]Adjustment, error)

	Update(ctx context.Context, req UpdateAdjustmentRequest) error
	Delete(ctx context.Context, id string) error
}
