package adjustment

import (
	"testing"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestExpandInstallments(t *testing.T) {
	// Advance on March 15 belongs to the March period, so installments
	// start on March 21, the first day of the April period.
	advance := adjustment.Adjustment{
		ID:           "adv-1",
		EmployeeID:   "emp-1",
		Type:         adjustment.TypeAdvance,
		Amount:       decimal.NewFromInt(3000),
		Date:         time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Installments: intPtr(3),
	}

	deductions := ExpandInstallments(advance)
	require.Len(t, deductions, 3)

	expectedDates := []time.Time{
		time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 21, 0, 0, 0, 0, time.UTC),
	}

	for i, d := range deductions {
		assert.Equal(t, adjustment.TypeDeduction, d.Type)
		assert.Equal(t, "emp-1", d.EmployeeID)
		assert.True(t, d.Amount.Equal(decimal.NewFromInt(1000)), "amount: %s", d.Amount)
		assert.True(t, d.Date.Equal(expectedDates[i]), "date %d: %s", i, d.Date)
		assert.Nil(t, d.Installments)
		assert.NotEmpty(t, d.ID)
	}

	assert.Equal(t, "Advance Installment 1/3", deductions[0].Remarks)
	assert.Equal(t, "Advance Installment 3/3", deductions[2].Remarks)
}

func TestExpandInstallments_AfterThe20th(t *testing.T) {
	// Advance on March 25 already belongs to the April period, so the
	// first installment lands on April 21.
	advance := adjustment.Adjustment{
		EmployeeID:   "emp-1",
		Type:         adjustment.TypeAdvance,
		Amount:       decimal.NewFromInt(500),
		Date:         time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
		Installments: intPtr(1),
	}

	deductions := ExpandInstallments(advance)
	require.Len(t, deductions, 1)
	assert.True(t, deductions[0].Date.Equal(time.Date(2024, time.April, 21, 0, 0, 0, 0, time.UTC)))
}

func TestExpandInstallments_YearRollover(t *testing.T) {
	advance := adjustment.Adjustment{
		EmployeeID:   "emp-1",
		Type:         adjustment.TypeAdvance,
		Amount:       decimal.NewFromInt(200),
		Date:         time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
		Installments: intPtr(2),
	}

	deductions := ExpandInstallments(advance)
	require.Len(t, deductions, 2)
	assert.True(t, deductions[0].Date.Equal(time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC)))
	assert.True(t, deductions[1].Date.Equal(time.Date(2025, time.January, 21, 0, 0, 0, 0, time.UTC)))
}

func TestExpandInstallments_UnevenSplit(t *testing.T) {
	advance := adjustment.Adjustment{
		EmployeeID:   "emp-1",
		Type:         adjustment.TypeAdvance,
		Amount:       decimal.NewFromInt(1000),
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Installments: intPtr(3),
	}

	deductions := ExpandInstallments(advance)
	require.Len(t, deductions, 3)

	total := decimal.Zero
	for _, d := range deductions {
		total = total.Add(d.Amount)
	}
	diff := total.Sub(decimal.NewFromInt(1000)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)), "total drifted: %s", total)
}

func TestExpandInstallments_NotAnAdvance(t *testing.T) {
	bonus := adjustment.Adjustment{
		Type:   adjustment.TypeBonus,
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Nil(t, ExpandInstallments(bonus))

	noPlan := adjustment.Adjustment{
		Type:   adjustment.TypeAdvance,
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Nil(t, ExpandInstallments(noPlan))
}
