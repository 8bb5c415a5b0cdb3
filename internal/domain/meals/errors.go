package meals

import "errors"

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrUnknownFood  = errors.New("food does not exist")
	ErrInvalidInput = errors.New("invalid meal")
)
