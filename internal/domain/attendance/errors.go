package attendance

import "errors"

var (
	// ErrNoActiveSession is returned by a clock-out with no open record for
	// the employee today.
	ErrNoActiveSession = errors.New("no active clock-in record found")

	// ErrNoRecords is returned by lookups whose result set is empty.
	ErrNoRecords = errors.New("no attendance records found")
)
