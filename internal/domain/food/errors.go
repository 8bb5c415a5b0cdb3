package food

import "errors"

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrInvalidInput = errors.New("invalid food")
)
