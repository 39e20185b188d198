package attendance

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/attendance"
	"github.com/dealerdesk/backoffice-go/internal/domain/employee"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ========== PUNCH IMPORT ==========

func (s *AttendanceServiceImpl) ImportPunches(ctx context.Context, req attendance.ImportPunchesRequest) (attendance.ImportPunchesResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportPunchesResponse{}, err
	}

	punches := make([]attendance.Punch, 0, len(req.Records))
	for _, in := range req.Records {
		p := in.ToPunch()
		p.ID = uuid.New().String()
		punches = append(punches, p)
	}

	inserted, err := s.attendanceRepo.BulkInsertPunches(ctx, punches)
	if err != nil {
		return attendance.ImportPunchesResponse{}, err
	}

	return attendance.ImportPunchesResponse{Imported: inserted}, nil
}

// ========== MONTHLY VIEW ==========

func (s *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, filter attendance.MonthlyFilter) ([]attendance.MonthlySummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rules, err := LoadRules(ctx, s.attendanceRepo, filter.Year)
	if err != nil {
		return nil, err
	}

	punches, err := s.attendanceRepo.ListPunches(ctx, filter.Year, filter.Month, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]attendance.EnrichedRecord)
	for _, p := range punches {
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], Enrich(p, rules))
	}

	responses := make([]attendance.MonthlySummaryResponse, 0, len(byEmployee))
	for employeeID, records := range byEmployee {
		sort.Slice(records, func(i, j int) bool {
			return records[i].Date.Before(records[j].Date)
		})
		responses = append(responses, toSummaryResponse(Aggregate(employeeID, records)))
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].EmployeeID < responses[j].EmployeeID
	})

	return responses, nil
}

func toSummaryResponse(s attendance.MonthlySummary) attendance.MonthlySummaryResponse {
	resp := attendance.MonthlySummaryResponse{
		EmployeeID:           s.EmployeeID,
		PresentDays:          s.PresentDays,
		LateDays:             s.LateDays,
		AbsentDays:           s.AbsentDays,
		LeaveDays:            s.LeaveDays,
		HolidayDays:          s.HolidayDays,
		TotalPresentDays:     s.TotalPresentDays,
		RawOvertimeHours:     s.RawOvertimeHours,
		PayableOvertimeHours: s.PayableOvertimeHours,
		Records:              make([]attendance.EnrichedRecordResponse, 0, len(s.Records)),
	}

	for _, r := range s.Records {
		if resp.EmployeeName == "" && r.EmployeeName != nil {
			resp.EmployeeName = *r.EmployeeName
		}
		if resp.EmployeeCode == "" && r.EmployeeCode != nil {
			resp.EmployeeCode = *r.EmployeeCode
		}
		resp.Records = append(resp.Records, toRecordResponse(r))
	}

	return resp
}

func toRecordResponse(r attendance.EnrichedRecord) attendance.EnrichedRecordResponse {
	resp := attendance.EnrichedRecordResponse{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		Date:                 r.Date.Format("2006-01-02"),
		Status:               string(r.Status),
		RawOvertimeHours:     r.RawOvertimeHours,
		PayableOvertimeHours: r.PayableOvertimeHours,
		Remarks:              r.Remarks,
	}
	if r.InTime != nil {
		v := r.InTime.Format("15:04")
		resp.InTime = &v
	}
	if r.OutTime != nil {
		v := r.OutTime.Format("15:04")
		resp.OutTime = &v
	}
	return resp
}

// ========== RULES ==========

func (s *AttendanceServiceImpl) GetRules(ctx context.Context) (attendance.RuleSetResponse, error) {
	rules, err := s.attendanceRepo.GetRules(ctx)
	if err != nil {
		if errors.Is(err, attendance.ErrRuleSetNotFound) {
			return toRuleSetResponse(DefaultRules()), nil
		}
		return attendance.RuleSetResponse{}, err
	}
	return toRuleSetResponse(rules), nil
}

func (s *AttendanceServiceImpl) UpdateRules(ctx context.Context, req attendance.UpdateRuleSetRequest) (attendance.RuleSetResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RuleSetResponse{}, err
	}

	current, err := s.attendanceRepo.GetRules(ctx)
	if err != nil {
		if !errors.Is(err, attendance.ErrRuleSetNotFound) {
			return attendance.RuleSetResponse{}, err
		}
		current = DefaultRules()
	}

	if req.StandardInTime != nil {
		current.StandardInTime, _ = time.Parse("15:04", *req.StandardInTime)
	}
	if req.StandardOutTime != nil {
		current.StandardOutTime, _ = time.Parse("15:04", *req.StandardOutTime)
	}
	if req.WeeklyHolidays != nil {
		weekdays := make([]time.Weekday, 0, len(*req.WeeklyHolidays))
		for _, wd := range *req.WeeklyHolidays {
			weekdays = append(weekdays, time.Weekday(wd))
		}
		current.WeeklyHolidays = weekdays
	}
	if req.MinOvertimeMinutes != nil {
		current.MinOvertimeMinutes = *req.MinOvertimeMinutes
	}

	saved, err := s.attendanceRepo.UpsertRules(ctx, current)
	if err != nil {
		return attendance.RuleSetResponse{}, err
	}

	return toRuleSetResponse(saved), nil
}

func toRuleSetResponse(rules attendance.RuleSet) attendance.RuleSetResponse {
	weekdays := make([]int, 0, len(rules.WeeklyHolidays))
	for _, wd := range rules.WeeklyHolidays {
		weekdays = append(weekdays, int(wd))
	}
	return attendance.RuleSetResponse{
		StandardInTime:     rules.StandardInTime.Format("15:04"),
		StandardOutTime:    rules.StandardOutTime.Format("15:04"),
		WeeklyHolidays:     weekdays,
		MinOvertimeMinutes: rules.MinOvertimeMinutes,
	}
}

// ========== HOLIDAYS ==========

func (s *AttendanceServiceImpl) ListHolidays(ctx context.Context, year int) ([]attendance.HolidayResponse, error) {
	holidays, err := s.attendanceRepo.ListHolidays(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) CreateHoliday(ctx context.Context, req attendance.CreateHolidayRequest) (attendance.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	holiday := attendance.Holiday{
		ID:   uuid.New().String(),
		Date: date,
		Name: req.Name,
	}

	created, err := s.attendanceRepo.CreateHoliday(ctx, holiday)
	if err != nil {
		return attendance.HolidayResponse{}, err
	}

	return toHolidayResponse(created), nil
}

func (s *AttendanceServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.attendanceRepo.DeleteHoliday(ctx, id)
}

func toHolidayResponse(h attendance.Holiday) attendance.HolidayResponse {
	return attendance.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
