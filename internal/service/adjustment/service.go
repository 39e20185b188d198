package adjustment

import (
	"context"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/adjustment"
	"github.com/dealerdesk/backoffice-go/internal/domain/employee"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/dealerdesk/backoffice-go/internal/pkg/period"
	"github.com/google/uuid"
)

type AdjustmentServiceImpl struct {
	db             *database.DB
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAdjustmentService(
	db *database.DB,
	adjustmentRepo adjustment.AdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		db:             db,
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) ([]adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	entry := adjustment.Adjustment{
		ID:           uuid.New().String(),
		EmployeeID:   req.EmployeeID,
		Type:         adjustment.Type(req.Type),
		Amount:       req.Amount,
		Date:         date,
		Remarks:      req.Remarks,
		Installments: req.Installments,
	}

	batch := append([]adjustment.Adjustment{entry}, ExpandInstallments(entry)...)

	created, err := s.adjustmentRepo.Create(ctx, batch)
	if err != nil {
		return nil, err
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(created))
	for _, a := range created {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

func (s *AdjustmentServiceImpl) Get(ctx context.Context, id string) (adjustment.AdjustmentResponse, error) {
	a, err := s.adjustmentRepo.GetByID(ctx, id)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return toResponse(a), nil
}

func (s *AdjustmentServiceImpl) ListForPeriod(ctx context.Context, filter adjustment.PeriodFilter) ([]adjustment.AdjustmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	p := period.New(filter.Month, filter.Year)
	adjustments, err := s.adjustmentRepo.ListBetween(ctx, p.Start(), p.End(), filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

func (s *AdjustmentServiceImpl) Update(ctx context.Context, req adjustment.UpdateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	// Updating an advance never regenerates its installments; the stored
	// deductions keep their original amounts and dates.
	if err := s.adjustmentRepo.Update(ctx, req); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	updated, err := s.adjustmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *AdjustmentServiceImpl) Delete(ctx context.Context, id string) error {
	// No cascade: deleting an advance leaves its installment deductions in
	// the ledger, each to be removed individually if needed.
	return s.adjustmentRepo.Delete(ctx, id)
}

func toResponse(a adjustment.Adjustment) adjustment.AdjustmentResponse {
	p := period.Of(a.Date)
	resp := adjustment.AdjustmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Type:         string(a.Type),
		Amount:       a.Amount,
		Date:         a.Date.Format("2006-01-02"),
		Remarks:      a.Remarks,
		Installments: a.Installments,
		PeriodMonth:  int(p.Month),
		PeriodYear:   p.Year,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	return resp
}
