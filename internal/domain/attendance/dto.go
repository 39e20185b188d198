package attendance

import (
	"fmt"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PUNCH IMPORT
// ========================================

// PunchInput is one row of a punch-machine export upload.
type PunchInput struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	InTime     *string `json:"in_time"`
	OutTime    *string `json:"out_time"`
	Remarks    *string `json:"remarks"`
}

type ImportPunchesRequest struct {
	Records []PunchInput `json:"records"`
}

var knownStatuses = []string{
	string(StatusPresent), string(StatusLate), string(StatusAbsent),
	string(StatusLeave), string(StatusHoliday),
}

func (r *ImportPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "at least one record is required"})
	}

	for i, rec := range r.Records {
		field := func(name string) string { return fmt.Sprintf("records[%d].%s", i, name) }

		if validator.IsEmpty(rec.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: field("employee_id"), Message: "employee_id is required"})
		}
		if _, ok := validator.IsValidDate(rec.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: field("date"), Message: "date must be YYYY-MM-DD"})
		}
		if rec.Status != "" && !validator.IsInSlice(rec.Status, knownStatuses) {
			errs = append(errs, validator.ValidationError{Field: field("status"), Message: "unknown status"})
		}
		if rec.InTime != nil {
			if _, ok := validator.IsValidClockTime(*rec.InTime); !ok {
				errs = append(errs, validator.ValidationError{Field: field("in_time"), Message: "in_time must be HH:MM"})
			}
		}
		if rec.OutTime != nil {
			if _, ok := validator.IsValidClockTime(*rec.OutTime); !ok {
				errs = append(errs, validator.ValidationError{Field: field("out_time"), Message: "out_time must be HH:MM"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPunch converts one validated input row to a Punch entity.
func (in PunchInput) ToPunch() Punch {
	date, _ := time.Parse("2006-01-02", in.Date)

	p := Punch{
		EmployeeID: in.EmployeeID,
		Date:       date,
		StatusHint: Status(in.Status),
		Remarks:    in.Remarks,
	}
	if in.InTime != nil {
		if clock, ok := validator.IsValidClockTime(*in.InTime); ok {
			t := combine(date, clock)
			p.InTime = &t
		}
	}
	if in.OutTime != nil {
		if clock, ok := validator.IsValidClockTime(*in.OutTime); ok {
			t := combine(date, clock)
			p.OutTime = &t
		}
	}
	return p
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

type ImportPunchesResponse struct {
	Imported int `json:"imported"`
}

// ========================================
// RULES
// ========================================

type UpdateRuleSetRequest struct {
	StandardInTime     *string `json:"standard_in_time"`
	StandardOutTime    *string `json:"standard_out_time"`
	WeeklyHolidays     *[]int  `json:"weekly_holidays"`
	MinOvertimeMinutes *int    `json:"min_overtime_minutes"`
}

func (r *UpdateRuleSetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StandardInTime != nil {
		if _, ok := validator.IsValidClockTime(*r.StandardInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "standard_in_time", Message: "standard_in_time must be HH:MM"})
		}
	}
	if r.StandardOutTime != nil {
		if _, ok := validator.IsValidClockTime(*r.StandardOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "standard_out_time", Message: "standard_out_time must be HH:MM"})
		}
	}
	if r.WeeklyHolidays != nil {
		for _, wd := range *r.WeeklyHolidays {
			if wd < 0 || wd > 6 {
				errs = append(errs, validator.ValidationError{Field: "weekly_holidays", Message: "weekday must be between 0 (Sunday) and 6 (Saturday)"})
				break
			}
		}
	}
	if r.MinOvertimeMinutes != nil && *r.MinOvertimeMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "min_overtime_minutes", Message: "min_overtime_minutes must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RuleSetResponse struct {
	StandardInTime     string `json:"standard_in_time"`
	StandardOutTime    string `json:"standard_out_time"`
	WeeklyHolidays     []int  `json:"weekly_holidays"`
	MinOvertimeMinutes int    `json:"min_overtime_minutes"`
}

// ========================================
// HOLIDAYS
// ========================================

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// ========================================
// MONTHLY VIEW
// ========================================

type MonthlyFilter struct {
	Year       int
	Month      int
	EmployeeID *string
}

func (f MonthlyFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EnrichedRecordResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	Date                 string          `json:"date"`
	InTime               *string         `json:"in_time,omitempty"`
	OutTime              *string         `json:"out_time,omitempty"`
	Status               string          `json:"status"`
	RawOvertimeHours     decimal.Decimal `json:"raw_overtime_hours"`
	PayableOvertimeHours decimal.Decimal `json:"payable_overtime_hours"`
	Remarks              *string         `json:"remarks,omitempty"`
}

type MonthlySummaryResponse struct {
	EmployeeID           string                   `json:"employee_id"`
	EmployeeName         string                   `json:"employee_name,omitempty"`
	EmployeeCode         string                   `json:"employee_code,omitempty"`
	PresentDays          int                      `json:"present_days"`
	LateDays             int                      `json:"late_days"`
	AbsentDays           int                      `json:"absent_days"`
	LeaveDays            int                      `json:"leave_days"`
	HolidayDays          int                      `json:"holiday_days"`
	TotalPresentDays     int                      `json:"total_present_days"`
	RawOvertimeHours     decimal.Decimal          `json:"raw_overtime_hours"`
	PayableOvertimeHours decimal.Decimal          `json:"payable_overtime_hours"`
	Records              []EnrichedRecordResponse `json:"records"`
}
