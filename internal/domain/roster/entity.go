package roster

// Employee is a read-only view of the employee directory. The attendance core
// consumes it for name resolution and headcounts and never mutates it.
type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Designation string `json:"designation,omitempty"`
}
