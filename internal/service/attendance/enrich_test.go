package attendance

import (
	"testing"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() attendance.RuleSet {
	return attendance.RuleSet{
		StandardInTime:     clock(9, 0),
		StandardOutTime:    clock(18, 0),
		WeeklyHolidays:     []time.Weekday{time.Sunday},
		MinOvertimeMinutes: 30,
	}
}

func clock(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// punchOn builds a worked punch on the given date with in/out clock times.
func punchOn(date time.Time, inH, inM, outH, outM int) attendance.Punch {
	in := time.Date(date.Year(), date.Month(), date.Day(), inH, inM, 0, 0, time.UTC)
	out := time.Date(date.Year(), date.Month(), date.Day(), outH, outM, 0, 0, time.UTC)
	return attendance.Punch{
		ID:         "p-1",
		EmployeeID: "emp-1",
		Date:       date,
		InTime:     &in,
		OutTime:    &out,
	}
}

// 2024-03-04 is a Monday, 2024-03-03 a Sunday.
var (
	monday = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
)

func TestEnrich_OnTimeWeekday(t *testing.T) {
	rec := Enrich(punchOn(monday, 9, 0, 18, 0), testRules())

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RawOvertimeHours.IsZero())
	assert.True(t, rec.PayableOvertimeHours.IsZero())
}

func TestEnrich_OneMinuteLate(t *testing.T) {
	rec := Enrich(punchOn(monday, 9, 1, 18, 0), testRules())

	assert.Equal(t, attendance.StatusLate, rec.Status)
	assert.True(t, rec.PayableOvertimeHours.IsZero())
}

func TestEnrich_OvertimeBelowThresholdIgnored(t *testing.T) {
	// 25 minutes past standard out, threshold is 30: no credit at all.
	rec := Enrich(punchOn(monday, 9, 0, 18, 25), testRules())

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RawOvertimeHours.IsZero())
	assert.True(t, rec.PayableOvertimeHours.IsZero())
}

func TestEnrich_WeekdayOvertime(t *testing.T) {
	rec := Enrich(punchOn(monday, 9, 0, 20, 0), testRules())

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RawOvertimeHours.Equal(decimal.NewFromInt(2)),
		"raw overtime: %s", rec.RawOvertimeHours)
	assert.True(t, rec.PayableOvertimeHours.Equal(decimal.NewFromInt(3)),
		"payable overtime: %s", rec.PayableOvertimeHours)
}

func TestEnrich_WeekdayOvertimeExactlyAtThreshold(t *testing.T) {
	rec := Enrich(punchOn(monday, 9, 0, 18, 30), testRules())

	assert.True(t, rec.RawOvertimeHours.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, rec.PayableOvertimeHours.Equal(decimal.NewFromFloat(0.75)))
}

func TestEnrich_HolidayWorkWithinStandardDay(t *testing.T) {
	// 8 hours on a Sunday: entirely in the 2x band.
	rec := Enrich(punchOn(sunday, 9, 0, 17, 0), testRules())

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RawOvertimeHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, rec.PayableOvertimeHours.Equal(decimal.NewFromInt(16)))
}

func TestEnrich_HolidayWorkBeyondStandardDay(t *testing.T) {
	// 10 hours on a Sunday: 9h at 2x plus 1h at 3x.
	rec := Enrich(punchOn(sunday, 8, 0, 18, 0), testRules())

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RawOvertimeHours.Equal(decimal.NewFromInt(10)))
	assert.True(t, rec.PayableOvertimeHours.Equal(decimal.NewFromInt(21)),
		"payable overtime: %s", rec.PayableOvertimeHours)
}

func TestEnrich_HolidayWithoutPunches(t *testing.T) {
	rec := Enrich(attendance.Punch{EmployeeID: "emp-1", Date: sunday}, testRules())

	assert.Equal(t, attendance.StatusHoliday, rec.Status)
	assert.True(t, rec.PayableOvertimeHours.IsZero())
}

func TestEnrich_PublicHoliday(t *testing.T) {
	rules := testRules()
	rules.Holidays = []attendance.Holiday{{Date: monday, Name: "Founders Day"}}

	rec := Enrich(punchOn(monday, 9, 0, 18, 0), rules)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RawOvertimeHours.Equal(decimal.NewFromInt(9)))
	assert.True(t, rec.PayableOvertimeHours.Equal(decimal.NewFromInt(18)))
}

func TestEnrich_LeaveOnHolidayStaysLeave(t *testing.T) {
	rec := Enrich(attendance.Punch{
		EmployeeID: "emp-1",
		Date:       sunday,
		StatusHint: attendance.StatusLeave,
	}, testRules())

	assert.Equal(t, attendance.StatusLeave, rec.Status)
}

func TestEnrich_MissingHintDefaultsToAbsent(t *testing.T) {
	rec := Enrich(attendance.Punch{EmployeeID: "emp-1", Date: monday}, testRules())

	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

func TestEnrich_OutBeforeInFallsBack(t *testing.T) {
	p := punchOn(monday, 18, 0, 9, 0)
	p.StatusHint = attendance.StatusPresent

	rec := Enrich(p, testRules())

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.RawOvertimeHours.IsZero())
	assert.True(t, rec.PayableOvertimeHours.IsZero())
}

func TestEnrich_InvalidRulesPassThroughHint(t *testing.T) {
	p := punchOn(monday, 9, 0, 20, 0)
	p.StatusHint = attendance.StatusLate

	rec := Enrich(p, attendance.RuleSet{})

	assert.Equal(t, attendance.StatusLate, rec.Status)
	assert.True(t, rec.PayableOvertimeHours.IsZero())
}

func TestAggregate(t *testing.T) {
	rules := testRules()

	punches := []attendance.Punch{
		punchOn(monday, 9, 0, 18, 0),                 // Present
		punchOn(monday.AddDate(0, 0, 1), 9, 30, 18, 0), // Late
		punchOn(monday.AddDate(0, 0, 2), 9, 0, 20, 0),  // Present, 2h OT
		{EmployeeID: "emp-1", Date: monday.AddDate(0, 0, 3), StatusHint: attendance.StatusLeave},
		{EmployeeID: "emp-1", Date: monday.AddDate(0, 0, 4), StatusHint: attendance.StatusAbsent},
		{EmployeeID: "emp-1", Date: sunday}, // Holiday
	}

	records := make([]attendance.EnrichedRecord, 0, len(punches))
	for _, p := range punches {
		records = append(records, Enrich(p, rules))
	}

	summary := Aggregate("emp-1", records)

	require.Len(t, summary.Records, 6)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.Equal(t, 1, summary.HolidayDays)
	assert.Equal(t, 3, summary.TotalPresentDays)

	total := summary.PresentDays + summary.LateDays + summary.AbsentDays +
		summary.LeaveDays + summary.HolidayDays
	assert.Equal(t, len(summary.Records), total)

	assert.True(t, summary.RawOvertimeHours.Equal(decimal.NewFromInt(2)))
	assert.True(t, summary.PayableOvertimeHours.Equal(decimal.NewFromInt(3)))
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate("emp-1", nil)

	assert.Equal(t, 0, summary.TotalPresentDays)
	assert.True(t, summary.RawOvertimeHours.IsZero())
}
