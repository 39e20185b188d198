package period_test

import (
	"testing"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/pkg/period"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOf_TwentiethBelongsToEndingPeriod(t *testing.T) {
	p := period.Of(date(2024, time.March, 20))
	assert.Equal(t, period.Period{Month: time.March, Year: 2024}, p)
}

func TestOf_TwentyFirstOpensNextPeriod(t *testing.T) {
	p := period.Of(date(2024, time.March, 21))
	assert.Equal(t, period.Period{Month: time.April, Year: 2024}, p)
}

func TestOf_RollsAcrossYearBoundary(t *testing.T) {
	p := period.Of(date(2023, time.December, 25))
	assert.Equal(t, period.Period{Month: time.January, Year: 2024}, p)

	p = period.Of(date(2024, time.January, 5))
	assert.Equal(t, period.Period{Month: time.January, Year: 2024}, p)
}

func TestWindowBounds(t *testing.T) {
	p := period.Period{Month: time.March, Year: 2024}

	assert.Equal(t, date(2024, time.February, 21), p.Start())
	assert.Equal(t, date(2024, time.March, 20), p.End())

	assert.True(t, p.Contains(date(2024, time.February, 21)))
	assert.True(t, p.Contains(date(2024, time.March, 20)))
	assert.False(t, p.Contains(date(2024, time.March, 21)))
	assert.False(t, p.Contains(date(2024, time.February, 20)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, period.Period{Month: time.March, Year: 2024}.DaysInMonth())
	assert.Equal(t, 29, period.Period{Month: time.February, Year: 2024}.DaysInMonth())
	assert.Equal(t, 28, period.Period{Month: time.February, Year: 2023}.DaysInMonth())
	assert.Equal(t, 30, period.Period{Month: time.April, Year: 2024}.DaysInMonth())
}

func TestAdd_RollsYears(t *testing.T) {
	p := period.Period{Month: time.November, Year: 2024}

	assert.Equal(t, period.Period{Month: time.February, Year: 2025}, p.Add(3))
	assert.Equal(t, period.Period{Month: time.December, Year: 2023}, p.Add(-11))
}

func TestNew_NormalizesOverflow(t *testing.T) {
	assert.Equal(t, period.Period{Month: time.January, Year: 2025}, period.New(13, 2024))
	assert.Equal(t, period.Period{Month: time.December, Year: 2023}, period.New(0, 2024))
}

func TestString(t *testing.T) {
	p := period.Period{Month: time.April, Year: 2024}
	assert.Equal(t, "2024-04", p.String())
}
