package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

// Create implements adjustment.AdjustmentRepository. The whole batch commits
// or rolls back together, so an advance is never stored without its
// installment deductions.
func (a *adjustmentRepositoryImpl) Create(ctx context.Context, adjustments []adjustment.Adjustment) ([]adjustment.Adjustment, error) {
	query := `
		INSERT INTO adjustments (id, employee_id, type, amount, date, remarks, installments)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, type, amount, date, remarks, installments, created_at, updated_at
	`

	created := make([]adjustment.Adjustment, 0, len(adjustments))
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		for _, adj := range adjustments {
			var saved adjustment.Adjustment
			err := tx.QueryRow(ctx, query,
				adj.ID, adj.EmployeeID, adj.Type, adj.Amount, adj.Date, adj.Remarks, adj.Installments,
			).Scan(
				&saved.ID, &saved.EmployeeID, &saved.Type, &saved.Amount, &saved.Date,
				&saved.Remarks, &saved.Installments, &saved.CreatedAt, &saved.UpdatedAt,
			)
			if err != nil {
				return err
			}
			created = append(created, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (a *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.type, a.amount, a.date, a.remarks, a.installments,
			a.created_at, a.updated_at, e.full_name, e.employee_code
		FROM adjustments a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var adj adjustment.Adjustment
	err := q.QueryRow(ctx, query, id).Scan(
		&adj.ID, &adj.EmployeeID, &adj.Type, &adj.Amount, &adj.Date, &adj.Remarks,
		&adj.Installments, &adj.CreatedAt, &adj.UpdatedAt, &adj.EmployeeName, &adj.EmployeeCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, err
	}

	return adj, nil
}

// ListBetween implements adjustment.AdjustmentRepository.
func (a *adjustmentRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time, employeeID *string) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.type, a.amount, a.date, a.remarks, a.installments,
			a.created_at, a.updated_at, e.full_name, e.employee_code
		FROM adjustments a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
			AND ($3::text IS NULL OR a.employee_id = $3)
		ORDER BY a.date, a.created_at
	`

	rows, err := q.Query(ctx, query, from, to, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var adj adjustment.Adjustment
		err := rows.Scan(
			&adj.ID, &adj.EmployeeID, &adj.Type, &adj.Amount, &adj.Date, &adj.Remarks,
			&adj.Installments, &adj.CreatedAt, &adj.UpdatedAt, &adj.EmployeeName, &adj.EmployeeCode,
		)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}

// Update implements adjustment.AdjustmentRepository.
func (a *adjustmentRepositoryImpl) Update(ctx context.Context, req adjustment.UpdateAdjustmentRequest) error {
	q := GetQuerier(ctx, a.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Amount != nil {
		addSet("amount", *req.Amount)
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		addSet("date", date)
	}
	if req.Remarks != nil {
		addSet("remarks", *req.Remarks)
	}

	query := fmt.Sprintf("UPDATE adjustments SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}

	return nil
}

// Delete implements adjustment.AdjustmentRepository.
func (a *adjustmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM adjustments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}

	return nil
}
