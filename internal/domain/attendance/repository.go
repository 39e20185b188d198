package attendance

import "context"

// AttendanceRepository defines data access for raw punches, the rule set and
// the public holiday calendar. Enriched records are never stored; they are
// recomputed from punches and rules on every read.
type AttendanceRepository interface {
	// Punches
	BulkInsertPunches(ctx context.Context, punches []Punch) (int, error)
	ListPunches(ctx context.Context, year, month int, employeeID *string) ([]Punch, error)

	// Rule set (singleton row)
	GetRules(ctx context.Context) (RuleSet, error)
	UpsertRules(ctx context.Context, rules RuleSet) (RuleSet, error)

	// Holidays
	ListHolidays(ctx context.Context, year int) ([]Holiday, error)
	CreateHoliday(ctx context.Context, holiday Holiday) (Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
}
