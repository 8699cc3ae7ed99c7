package remoteerror

import "fmt"

// RemoteError is a structured server-side failure envelope surfaced
// to callers. Status is the HTTP status the response carried; Code,
// Name, InstanceID, and Parameters come from the JSON error envelope.
type RemoteError struct {
	Status     int
	Code       string
	Name       string
	InstanceID string
	Parameters map[string]string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("RemoteException: %s (%s) with instance ID %s", e.Code, e.Name, e.InstanceID)
}
