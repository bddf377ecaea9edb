package ticket

import "errors"

var (
	ErrSourceUnavailable = errors.New("ticket source unavailable")
)
