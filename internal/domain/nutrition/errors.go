package nutrition

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrCalculation     = errors.New("calculation error")
)

// InvalidDateError is returned when a calendar date is not a real YYYY-MM-DD date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// InvalidTimezoneError is returned when a timezone is not a known IANA identifier.
type InvalidTimezoneError struct {
	Value string
}

func (e *InvalidTimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone %q", e.Value)
}

func (e *InvalidTimezoneError) Unwrap() error { return ErrInvalidTimezone }

// CalculationError reports a food whose portion model cannot produce a protein value.
type CalculationError struct {
	FoodID string
	Reason string
}

func (e *CalculationError) Error() string {
	if e.FoodID == "" {
		return "calculation: " + e.Reason
	}
	return fmt.Sprintf("calculation for food %s: %s", e.FoodID, e.Reason)
}

func (e *CalculationError) Unwrap() error { return ErrCalculation }
