package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/domain/payroll"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const payrollColumns = `r.id, r.employee_id, r.period_month, r.period_year, r.base_salary, r.grade,
	r.base_hourly_rate, r.attendance, r.adjustments, r.working_days, r.prorated_salary,
	r.overtime_pay, r.total_bonus, r.advance_credit, r.deductions, r.total_deductions,
	r.net_salary, r.status, r.paid_at, r.paid_by, r.created_at, r.updated_at,
	e.full_name, e.employee_code`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var (
		r               payroll.Record
		attendanceJSON  []byte
		adjustmentsJSON []byte
		deductionsJSON  []byte
	)
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.PeriodMonth, &r.PeriodYear, &r.BaseSalary, &r.Grade,
		&r.BaseHourlyRate, &attendanceJSON, &adjustmentsJSON, &r.WorkingDays, &r.ProratedSalary,
		&r.OvertimePay, &r.TotalBonus, &r.AdvanceCredit, &deductionsJSON, &r.TotalDeductions,
		&r.NetSalary, &r.Status, &r.PaidAt, &r.PaidBy, &r.CreatedAt, &r.UpdatedAt,
		&r.EmployeeName, &r.EmployeeCode,
	)
	if err != nil {
		return payroll.Record{}, err
	}

	if err := json.Unmarshal(attendanceJSON, &r.Attendance); err != nil {
		return payroll.Record{}, fmt.Errorf("decode attendance snapshot: %w", err)
	}
	if len(adjustmentsJSON) > 0 {
		var adjustments []adjustment.Adjustment
		if err := json.Unmarshal(adjustmentsJSON, &adjustments); err != nil {
			return payroll.Record{}, fmt.Errorf("decode adjustments: %w", err)
		}
		r.Adjustments = adjustments
	}
	if len(deductionsJSON) > 0 {
		var deductions []payroll.DeductionItem
		if err := json.Unmarshal(deductionsJSON, &deductions); err != nil {
			return payroll.Record{}, fmt.Errorf("decode deductions: %w", err)
		}
		r.Deductions = deductions
	}

	return r, nil
}

// UpsertRecord implements payroll.PayrollRepository. One row per employee and
// period; recalculation replaces every calculated column in place.
func (p *payrollRepositoryImpl) UpsertRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	attendanceJSON, err := json.Marshal(record.Attendance)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("encode attendance snapshot: %w", err)
	}
	adjustmentsJSON, err := json.Marshal(record.Adjustments)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("encode adjustments: %w", err)
	}
	deductionsJSON, err := json.Marshal(record.Deductions)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("encode deductions: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_month, period_year, base_salary, grade,
			base_hourly_rate, attendance, adjustments, working_days, prorated_salary,
			overtime_pay, total_bonus, advance_credit, deductions, total_deductions,
			net_salary, status
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18
		)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			grade = EXCLUDED.grade,
			base_hourly_rate = EXCLUDED.base_hourly_rate,
			attendance = EXCLUDED.attendance,
			adjustments = EXCLUDED.adjustments,
			working_days = EXCLUDED.working_days,
			prorated_salary = EXCLUDED.prorated_salary,
			overtime_pay = EXCLUDED.overtime_pay,
			total_bonus = EXCLUDED.total_bonus,
			advance_credit = EXCLUDED.advance_credit,
			deductions = EXCLUDED.deductions,
			total_deductions = EXCLUDED.total_deductions,
			net_salary = EXCLUDED.net_salary,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id
	`

	var id string
	err = q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.PeriodMonth, record.PeriodYear,
		record.BaseSalary, record.Grade, record.BaseHourlyRate, attendanceJSON,
		adjustmentsJSON, record.WorkingDays, record.ProratedSalary, record.OvertimePay,
		record.TotalBonus, record.AdvanceCredit, deductionsJSON, record.TotalDeductions,
		record.NetSalary, record.Status,
	).Scan(&id)
	if err != nil {
		return payroll.Record{}, err
	}

	return p.GetRecordByID(ctx, id)
}

// GetRecordByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRecordByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, err
	}

	return record, nil
}

// GetRecordByEmployeePeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.employee_id = $1 AND r.period_month = $2 AND r.period_year = $3`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, err
	}

	return record, nil
}

// ListRecords implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListRecords(ctx context.Context, filter payroll.ListFilter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.period_year = $1 AND r.period_month = $2
			AND ($3::text IS NULL OR r.employee_id = $3)
		ORDER BY e.employee_code`

	rows, err := q.Query(ctx, query, filter.Year, filter.Month, filter.EmployeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		record, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// FinalizeRecords implements payroll.PayrollRepository. Only drafts flip to
// paid; already-paid rows are left untouched.
func (p *payrollRepositoryImpl) FinalizeRecords(ctx context.Context, ids []string, paidBy string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_records
		SET status = $1, paid_at = NOW(), paid_by = $2, updated_at = NOW()
		WHERE id = ANY($3) AND status = $4
	`

	_, err := q.Exec(ctx, query, payroll.StatusPaid, paidBy, ids, payroll.StatusDraft)
	return err
}

// DeleteRecord implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

// GetSummary implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(overtime_pay), 0),
			COALESCE(SUM(total_bonus), 0),
			COALESCE(SUM(total_deductions), 0)
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2
	`

	summary := payroll.PayrollSummaryResponse{PeriodMonth: month, PeriodYear: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.EmployeeCount, &summary.TotalNetSalary, &summary.TotalOvertime,
		&summary.TotalBonus, &summary.TotalDeductions,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	return summary, nil
}
