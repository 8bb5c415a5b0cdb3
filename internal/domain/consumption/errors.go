package consumption

import "errors"

var (
	ErrConsumedMealNotFound = errors.New("consumed meal not found")
	ErrMealNotFound         = errors.New("meal not found")
	ErrInvalidInput         = errors.New("invalid consumed meal")
)
