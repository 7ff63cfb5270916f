package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request that passed binding but failed a
// deterministic-layer check (e.g. a non-positive wage where division is
// required).
var ErrInvalidInput = errors.New("service: invalid input")

// FormatError reports a malformed delimited profile or CSV payload in the
// comparison endpoint. Controllers map it to a 400.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("service: malformed %s: %s", e.Field, e.Reason)
}
