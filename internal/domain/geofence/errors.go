package geofence

// RejectedError signals that an enforced geofence check failed. It carries
// the rejection log written for the attempt so the transport layer can return
// it as the response payload.
type RejectedError struct {
	Log RejectionLog
}

func (e *RejectedError) Error() string {
	return "you are outside the allowed location for clock-in/out"
}
