package cli

import "errors"

// ErrInvalidJSON — ответ сервиса не является JSON, а запрошен --pretty.
var ErrInvalidJSON = errors.New("response is not valid JSON")
