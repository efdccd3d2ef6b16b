package roster

import (
	"context"
	"errors"
)

// ErrUnavailable wraps any failure to obtain the roster from the employee
// directory service, transport or payload level.
var ErrUnavailable = errors.New("employee service unavailable")

// Client reads the external employee directory.
type Client interface {
	// All returns the full roster.
	All(ctx context.Context) ([]Employee, error)
}
