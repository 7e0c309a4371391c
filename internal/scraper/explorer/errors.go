package explorer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStartDate = errors.New("invalid start date, expected YYYY-MM-DD")

	ErrParsingFailed = errors.New("failed to parse explorer page")
	ErrTimeout       = errors.New("operation timed out")
)

// ScraperError provides detailed error context
type ScraperError struct {
	Operation string
	Cause     error
	Details   string
}

func (e *ScraperError) Error() string {
	return fmt.Sprintf("%s failed: %v - %s", e.Operation, e.Cause, e.Details)
}

func (e *ScraperError) Unwrap() error {
	return e.Cause
}
