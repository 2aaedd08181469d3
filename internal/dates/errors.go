package dates

import "errors"

// ErrInvalidDate — строку не удалось разобрать как дату.
var ErrInvalidDate = errors.New("invalid date")
