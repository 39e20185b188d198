package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// StandardDayHours is the length of a standard working day. It caps the 2x
// holiday overtime band and converts a daily wage into an hourly rate.
const StandardDayHours = 9

var (
	weekdayOTRate     = decimal.NewFromFloat(1.5)
	holidayBaseRate   = decimal.NewFromInt(2)
	holidayExcessRate = decimal.NewFromInt(3)
	standardDayLength = decimal.NewFromInt(StandardDayHours)
	minutesPerHour    = decimal.NewFromInt(60)
)

// Enrich classifies one raw punch against the rule set and computes its raw
// and payable overtime. Pure: same punch and rules always produce the same
// record, and nothing is shared between invocations.
//
// Malformed input never errors. A punch with out <= in, or a rule set that
// cannot drive enrichment, falls back to the import's status hint (Absent
// when the hint is empty) with zero overtime, so one bad row cannot abort a
// whole month's payroll run.
func Enrich(p attendance.Punch, rules attendance.RuleSet) attendance.EnrichedRecord {
	rec := attendance.EnrichedRecord{
		Punch:                p,
		Status:               p.StatusHint,
		RawOvertimeHours:     decimal.Zero,
		PayableOvertimeHours: decimal.Zero,
	}
	if rec.Status == "" {
		rec.Status = attendance.StatusAbsent
	}

	if !rules.Valid() {
		return rec
	}

	isHoliday := rules.IsHoliday(p.Date)
	hasWorked := p.StatusHint != attendance.StatusAbsent &&
		p.StatusHint != attendance.StatusLeave &&
		p.InTime != nil && p.OutTime != nil

	if !hasWorked {
		// Absent and Leave pass through; anything else on a holiday
		// becomes Holiday.
		if isHoliday && p.StatusHint != attendance.StatusLeave && p.StatusHint != attendance.StatusAbsent {
			rec.Status = attendance.StatusHoliday
		}
		return rec
	}

	workedMinutes := int(p.OutTime.Sub(*p.InTime).Minutes())
	if workedMinutes <= 0 {
		return rec
	}

	if isHoliday {
		// Working a holiday still counts as present; the whole shift is
		// overtime, paid 2x up to a standard day and 3x beyond it.
		rec.Status = attendance.StatusPresent
		worked := minutesToHours(workedMinutes)
		rec.RawOvertimeHours = worked
		base := decimal.Min(worked, standardDayLength)
		excess := decimal.Max(worked.Sub(standardDayLength), decimal.Zero)
		rec.PayableOvertimeHours = base.Mul(holidayBaseRate).Add(excess.Mul(holidayExcessRate))
		return rec
	}

	if minuteOfDay(*p.InTime) > minuteOfDay(rules.StandardInTime) {
		rec.Status = attendance.StatusLate
	} else {
		rec.Status = attendance.StatusPresent
	}

	// Overtime starts at the standard out-time, and only counts at all once
	// past the minimum threshold. Below it there is no partial credit.
	diffMinutes := minuteOfDay(*p.OutTime) - minuteOfDay(rules.StandardOutTime)
	if diffMinutes > 0 && diffMinutes >= rules.MinOvertimeMinutes {
		rec.RawOvertimeHours = minutesToHours(diffMinutes)
		rec.PayableOvertimeHours = rec.RawOvertimeHours.Mul(weekdayOTRate)
	}

	return rec
}

// Aggregate reduces one employee's enriched records into a monthly summary.
// TotalPresentDays counts late days as worked days: lateness alone never
// reduces pay, only absence does.
func Aggregate(employeeID string, records []attendance.EnrichedRecord) attendance.MonthlySummary {
	s := attendance.MonthlySummary{
		EmployeeID:           employeeID,
		RawOvertimeHours:     decimal.Zero,
		PayableOvertimeHours: decimal.Zero,
		Records:              records,
	}

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			s.PresentDays++
		case attendance.StatusLate:
			s.LateDays++
		case attendance.StatusAbsent:
			s.AbsentDays++
		case attendance.StatusLeave:
			s.LeaveDays++
		case attendance.StatusHoliday:
			s.HolidayDays++
		}
		s.RawOvertimeHours = s.RawOvertimeHours.Add(r.RawOvertimeHours)
		s.PayableOvertimeHours = s.PayableOvertimeHours.Add(r.PayableOvertimeHours)
	}

	s.TotalPresentDays = s.PresentDays + s.LateDays
	return s
}

// DefaultRules is the rule set used before any explicit configuration: a
// 09:00 to 18:00 standard day, Sunday off, 30 minute overtime threshold.
func DefaultRules() attendance.RuleSet {
	return attendance.RuleSet{
		StandardInTime:     time.Date(0, time.January, 1, 9, 0, 0, 0, time.UTC),
		StandardOutTime:    time.Date(0, time.January, 1, 18, 0, 0, 0, time.UTC),
		WeeklyHolidays:     []time.Weekday{time.Sunday},
		MinOvertimeMinutes: 30,
	}
}

// LoadRules fetches the rule set, applying defaults when none has been
// configured yet, and attaches the holiday calendar for the given year.
func LoadRules(ctx context.Context, repo attendance.AttendanceRepository, year int) (attendance.RuleSet, error) {
	rules, err := repo.GetRules(ctx)
	if err != nil {
		if !errors.Is(err, attendance.ErrRuleSetNotFound) {
			return attendance.RuleSet{}, err
		}
		rules = DefaultRules()
	}

	holidays, err := repo.ListHolidays(ctx, year)
	if err != nil {
		return attendance.RuleSet{}, err
	}
	rules.Holidays = holidays

	return rules, nil
}

func minutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
