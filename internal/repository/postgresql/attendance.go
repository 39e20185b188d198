package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ========== PUNCHES ==========

// BulkInsertPunches implements attendance.AttendanceRepository.
// Re-importing a day overwrites the stored punch for that employee and date.
func (a *attendanceRepositoryImpl) BulkInsertPunches(ctx context.Context, punches []attendance.Punch) (int, error) {
	query := `
		INSERT INTO attendance_punches (id, employee_id, date, status_hint, in_time, out_time, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status_hint = EXCLUDED.status_hint,
			in_time = EXCLUDED.in_time,
			out_time = EXCLUDED.out_time,
			remarks = EXCLUDED.remarks,
			updated_at = NOW()
	`

	inserted := 0
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		for _, p := range punches {
			var inTime, outTime *string
			if p.InTime != nil {
				v := p.InTime.Format("15:04")
				inTime = &v
			}
			if p.OutTime != nil {
				v := p.OutTime.Format("15:04")
				outTime = &v
			}

			_, err := tx.Exec(ctx, query,
				p.ID, p.EmployeeID, p.Date, p.StatusHint, inTime, outTime, p.Remarks,
			)
			if err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// ListPunches implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListPunches(ctx context.Context, year, month int, employeeID *string) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT p.id, p.employee_id, p.date, p.status_hint, p.in_time, p.out_time, p.remarks,
			p.created_at, p.updated_at, e.full_name, e.employee_code
		FROM attendance_punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE EXTRACT(YEAR FROM p.date) = $1 AND EXTRACT(MONTH FROM p.date) = $2
			AND ($3::text IS NULL OR p.employee_id = $3)
		ORDER BY p.employee_id, p.date
	`

	rows, err := q.Query(ctx, query, year, month, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		var inTime, outTime *string
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date, &p.StatusHint, &inTime, &outTime,
			&p.Remarks, &p.CreatedAt, &p.UpdatedAt, &p.EmployeeName, &p.EmployeeCode,
		)
		if err != nil {
			return nil, err
		}
		p.InTime = clockOnDate(inTime, p.Date)
		p.OutTime = clockOnDate(outTime, p.Date)
		punches = append(punches, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

// clockOnDate rebuilds a full timestamp from a stored HH:MM clock string.
func clockOnDate(clock *string, date time.Time) *time.Time {
	if clock == nil {
		return nil
	}
	parsed, err := time.Parse("15:04", *clock)
	if err != nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
	return &t
}

// ========== RULES ==========

// GetRules implements attendance.AttendanceRepository. The rule set is a
// singleton row; holidays are attached by the caller.
func (a *attendanceRepositoryImpl) GetRules(ctx context.Context) (attendance.RuleSet, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT standard_in_time, standard_out_time, weekly_holidays, min_overtime_minutes, updated_at
		FROM attendance_rules
		WHERE id = 1
	`

	var (
		inClock, outClock string
		weekdays          []int32
		rules             attendance.RuleSet
	)
	err := q.QueryRow(ctx, query).Scan(
		&inClock, &outClock, &weekdays, &rules.MinOvertimeMinutes, &rules.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RuleSet{}, attendance.ErrRuleSetNotFound
		}
		return attendance.RuleSet{}, err
	}

	rules.StandardInTime, _ = time.Parse("15:04", inClock)
	rules.StandardOutTime, _ = time.Parse("15:04", outClock)
	for _, wd := range weekdays {
		rules.WeeklyHolidays = append(rules.WeeklyHolidays, time.Weekday(wd))
	}

	return rules, nil
}

// UpsertRules implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpsertRules(ctx context.Context, rules attendance.RuleSet) (attendance.RuleSet, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_rules (id, standard_in_time, standard_out_time, weekly_holidays, min_overtime_minutes, updated_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			standard_in_time = EXCLUDED.standard_in_time,
			standard_out_time = EXCLUDED.standard_out_time,
			weekly_holidays = EXCLUDED.weekly_holidays,
			min_overtime_minutes = EXCLUDED.min_overtime_minutes,
			updated_at = NOW()
	`

	weekdays := make([]int32, 0, len(rules.WeeklyHolidays))
	for _, wd := range rules.WeeklyHolidays {
		weekdays = append(weekdays, int32(wd))
	}

	_, err := q.Exec(ctx, query,
		rules.StandardInTime.Format("15:04"), rules.StandardOutTime.Format("15:04"),
		weekdays, rules.MinOvertimeMinutes,
	)
	if err != nil {
		return attendance.RuleSet{}, err
	}

	return a.GetRules(ctx)
}

// ========== HOLIDAYS ==========

// ListHolidays implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListHolidays(ctx context.Context, year int) ([]attendance.Holiday, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, date, name, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []attendance.Holiday
	for rows.Next() {
		var h attendance.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// CreateHoliday implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CreateHoliday(ctx context.Context, holiday attendance.Holiday) (attendance.Holiday, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES ($1, $2, $3)
		RETURNING id, date, name, created_at
	`

	var created attendance.Holiday
	err := q.QueryRow(ctx, query, holiday.ID, holiday.Date, holiday.Name).Scan(
		&created.ID, &created.Date, &created.Name, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Holiday{}, attendance.ErrHolidayExists
		}
		return attendance.Holiday{}, err
	}

	return created, nil
}

// DeleteHoliday implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteHoliday(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrHolidayNotFound
	}

	return nil
}
