package period

import (
	"fmt"
	"time"
)

// Period identifies one payroll period. The books run on a 21st-to-20th
// window: period (M, Y) covers the 21st of month M-1 through the 20th of
// month M. A date on the 20th still belongs to the period ending that day;
// the 21st opens the next one.
type Period struct {
	Month time.Month
	Year  int
}

// Of returns the payroll period whose window contains the given date.
func Of(date time.Time) Period {
	month := date.Month()
	year := date.Year()
	if date.Day() > 20 {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return Period{Month: month, Year: year}
}

// New normalizes an arbitrary month/year pair into a Period, rolling month
// overflow and underflow across year boundaries.
func New(month, year int) Period {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Period{Month: t.Month(), Year: t.Year()}
}

// Start returns the first day of the window, the 21st of the previous month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 21, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
}

// End returns the last day of the window, the 20th of the period's month.
func (p Period) End() time.Time {
	return time.Date(p.Year, p.Month, 20, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the day count of the period's calendar month.
// Proration runs on the calendar month; only the window bounds follow
// the 21st-to-20th books.
func (p Period) DaysInMonth() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains reports whether the date falls inside the period's window.
func (p Period) Contains(date time.Time) bool {
	return Of(date) == p
}

// Add returns the period n windows after p (n may be negative).
func (p Period) Add(n int) Period {
	return New(int(p.Month)+n, p.Year)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
