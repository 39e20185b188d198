package adjustment

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrInvalidType        = errors.New("invalid adjustment type")
	ErrInvalidPeriod      = errors.New("invalid adjustment period")
)
