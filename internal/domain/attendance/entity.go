package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the final per-day classification of a punch.
type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusHoliday Status = "Holiday"
)

// Punch is one raw daily attendance record as imported from the punch
// machine export. Immutable once enriched; enrichment output is derived,
// never written back.
type Punch struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StatusHint Status     // pre-classified status from the import, may be empty
	InTime     *time.Time // clock-in on Date, nil when no punch
	OutTime    *time.Time // clock-out on Date, nil when no punch
	Remarks    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Holiday is one named public holiday date.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

// RuleSet is the attendance configuration consumed by enrichment. Editing it
// invalidates previously enriched records; callers recompute, the rule set
// carries no staleness tracking.
type RuleSet struct {
	StandardInTime     time.Time // time-of-day, date part ignored
	StandardOutTime    time.Time // time-of-day, date part ignored
	WeeklyHolidays     []time.Weekday
	Holidays           []Holiday
	MinOvertimeMinutes int
	UpdatedAt          time.Time
}

// Valid reports whether the rule set can drive enrichment: both standard
// times set and out after in. Invalid rules make every punch unenrichable.
func (rs RuleSet) Valid() bool {
	if rs.StandardInTime.IsZero() || rs.StandardOutTime.IsZero() {
		return false
	}
	return minuteOfDay(rs.StandardOutTime) > minuteOfDay(rs.StandardInTime)
}

// IsHoliday reports whether the date falls on a weekly holiday weekday or a
// configured public holiday.
func (rs RuleSet) IsHoliday(date time.Time) bool {
	for _, wd := range rs.WeeklyHolidays {
		if date.Weekday() == wd {
			return true
		}
	}
	for _, h := range rs.Holidays {
		if sameDate(h.Date, date) {
			return true
		}
	}
	return false
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EnrichedRecord is a punch plus its derived classification and overtime.
type EnrichedRecord struct {
	Punch
	Status               Status
	RawOvertimeHours     decimal.Decimal
	PayableOvertimeHours decimal.Decimal
}

// MonthlySummary aggregates one employee's enriched records for a calendar
// month. PresentDays + LateDays + AbsentDays + LeaveDays + HolidayDays always
// equals len(Records).
type MonthlySummary struct {
	EmployeeID           string
	PresentDays          int
	LateDays             int
	AbsentDays           int
	LeaveDays            int
	HolidayDays          int
	TotalPresentDays     int // present + late; lateness alone costs no pay
	RawOvertimeHours     decimal.Decimal
	PayableOvertimeHours decimal.Decimal
	Records              []EnrichedRecord
}
