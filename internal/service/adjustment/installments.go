package adjustment

import (
	"fmt"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/pkg/period"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpandInstallments synthesizes the repayment deductions for an advance.
// Installment i is a plain Deduction of amount/n dated on the start (the
// 21st) of the i-th period after the advance's own period, so the first
// repayment lands in the month after the advance is paid out.
//
// The returned deductions are independent records: editing or deleting the
// advance later never touches them.
func ExpandInstallments(advance adjustment.Adjustment) []adjustment.Adjustment {
	if advance.Type != adjustment.TypeAdvance || advance.Installments == nil {
		return nil
	}

	n := *advance.Installments
	if n < 1 {
		return nil
	}

	per := advance.Amount.Div(decimal.NewFromInt(int64(n)))
	base := period.Of(advance.Date)

	deductions := make([]adjustment.Adjustment, 0, n)
	for i := 1; i <= n; i++ {
		deductions = append(deductions, adjustment.Adjustment{
			ID:         uuid.New().String(),
			EmployeeID: advance.EmployeeID,
			Type:       adjustment.TypeDeduction,
			Amount:     per,
			Date:       base.Add(i).Start(),
			Remarks:    fmt.Sprintf("Advance Installment %d/%d", i, n),
		})
	}
	return deductions
}
