package goal

import "errors"

var ErrInvalidInput = errors.New("invalid daily goal")
