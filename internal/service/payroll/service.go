package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/domain/auth"
	"github.com/dealerdesk/backoffice-go/internal/domain/employee"
	"github.com/dealerdesk/backoffice-go/internal/domain/payroll"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/dealerdesk/backoffice-go/internal/pkg/period"
	attendancesvc "github.com/dealerdesk/backoffice-go/internal/service/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// calculateConcurrency caps the fan-out of a period-wide payroll run so a
// large roster does not exhaust the connection pool.
const calculateConcurrency = 8

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	adjustmentRepo adjustment.AdjustmentRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Helper to get user_id from JWT context
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: missing user_id claim", auth.ErrInvalidToken)
	}
	return userID, nil
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) CalculateForEmployee(ctx context.Context, employeeID string, year, month int) (payroll.RecordResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return payroll.RecordResponse{}, payroll.ErrInvalidPeriod
	}
	p := period.New(month, year)

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	if emp.BaseSalary == nil || !emp.BaseSalary.IsPositive() {
		return payroll.RecordResponse{}, payroll.ErrEmployeeHasNoBaseSalary
	}

	// A paid record is frozen; recalculation only overwrites drafts.
	existing, err := s.payrollRepo.GetRecordByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil && !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.RecordResponse{}, err
	}
	if err == nil && existing.Status == payroll.StatusPaid {
		return payroll.RecordResponse{}, payroll.ErrRecordAlreadyPaid
	}

	summary, err := s.attendanceForPeriod(ctx, employeeID, p)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	adjustments, err := s.adjustmentRepo.ListBetween(ctx, p.Start(), p.End(), &employeeID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	record := Calculate(CalculationInput{
		EmployeeID:  employeeID,
		Period:      p,
		BaseSalary:  *emp.BaseSalary,
		Grade:       emp.Grade,
		Attendance:  summary,
		Adjustments: adjustments,
	})
	record.ID = uuid.New().String()

	saved, err := s.payrollRepo.UpsertRecord(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	resp := toRecordResponse(saved)
	if resp.EmployeeName == "" {
		resp.EmployeeName = emp.FullName
		resp.EmployeeCode = emp.EmployeeCode
	}
	return resp, nil
}

// attendanceForPeriod enriches and aggregates one employee's punches for
// the period's calendar month. Attendance and proration run on the calendar
// month; only adjustment filing follows the 21st-to-20th window.
func (s *PayrollServiceImpl) attendanceForPeriod(ctx context.Context, employeeID string, p period.Period) (attendance.MonthlySummary, error) {
	rules, err := attendancesvc.LoadRules(ctx, s.attendanceRepo, p.Year)
	if err != nil {
		return attendance.MonthlySummary{}, err
	}

	punches, err := s.attendanceRepo.ListPunches(ctx, p.Year, int(p.Month), &employeeID)
	if err != nil {
		return attendance.MonthlySummary{}, err
	}

	records := make([]attendance.EnrichedRecord, 0, len(punches))
	for _, punch := range punches {
		records = append(records, attendancesvc.Enrich(punch, rules))
	}

	return attendancesvc.Aggregate(employeeID, records), nil
}

func (s *PayrollServiceImpl) CalculateForPeriod(ctx context.Context, req payroll.CalculatePayrollRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeIDs := req.EmployeeIDs
	if len(employeeIDs) == 0 {
		active, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		for _, emp := range active {
			employeeIDs = append(employeeIDs, emp.ID)
		}
	}

	var (
		mu        sync.Mutex
		responses []payroll.RecordResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(calculateConcurrency)

	for _, employeeID := range employeeIDs {
		g.Go(func() error {
			resp, err := s.CalculateForEmployee(gctx, employeeID, req.PeriodYear, req.PeriodMonth)
			if err != nil {
				// Employees without a configured salary are skipped,
				// not fatal for the whole run.
				if errors.Is(err, payroll.ErrEmployeeHasNoBaseSalary) {
					return nil
				}
				return err
			}
			mu.Lock()
			responses = append(responses, resp)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(responses, func(i, j int) bool {
		return responses[i].EmployeeID < responses[j].EmployeeID
	})
	return responses, nil
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.ListFilter) ([]payroll.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toRecordResponse(r))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) FinalizeRecords(ctx context.Context, req payroll.FinalizePayrollRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	paidBy, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	for _, id := range req.RecordIDs {
		record, err := s.payrollRepo.GetRecordByID(ctx, id)
		if err != nil {
			return err
		}
		if record.Status == payroll.StatusPaid {
			return payroll.ErrRecordAlreadyPaid
		}
	}

	return s.payrollRepo.FinalizeRecords(ctx, req.RecordIDs, paidBy)
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.ErrCannotDeletePaidRecord
	}
	return s.payrollRepo.DeleteRecord(ctx, id)
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}
	return s.payrollRepo.GetSummary(ctx, month, year)
}

func toRecordResponse(r payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,

		BaseSalary:     r.BaseSalary,
		Grade:          r.Grade,
		BaseHourlyRate: r.BaseHourlyRate,
		Attendance:     r.Attendance,

		WorkingDays:     r.WorkingDays,
		ProratedSalary:  r.ProratedSalary,
		OvertimePay:     r.OvertimePay,
		TotalBonus:      r.TotalBonus,
		AdvanceCredit:   r.AdvanceCredit,
		Deductions:      make([]payroll.DeductionItemResponse, 0, len(r.Deductions)),
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,

		Status: r.Status,
	}

	for _, d := range r.Deductions {
		resp.Deductions = append(resp.Deductions, payroll.DeductionItemResponse{
			Amount:  d.Amount,
			Remarks: d.Remarks,
		})
	}
	if r.PaidAt != nil {
		v := r.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		resp.EmployeeCode = *r.EmployeeCode
	}

	return resp
}
