package attendance

import "errors"

var (
	ErrPunchNotFound   = errors.New("attendance punch not found")
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("holiday already exists on this date")
	ErrRuleSetNotFound = errors.New("attendance rule set not found")
	ErrInvalidPeriod   = errors.New("invalid attendance period")
)
