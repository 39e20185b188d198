package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ImportPunches stores a batch of raw punch rows from an upload
	ImportPunches(ctx context.Context, req ImportPunchesRequest) (ImportPunchesResponse, error)

	// GetMonthlyAttendance enriches and aggregates a calendar month,
	// per employee, using the current rule set
	GetMonthlyAttendance(ctx context.Context, filter MonthlyFilter) ([]MonthlySummaryResponse, error)

	// Rules
	GetRules(ctx context.Context) (RuleSetResponse, error)
	UpdateRules(ctx context.Context, req UpdateRuleSetRequest) (RuleSetResponse, error)

	// Holidays
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
