package domain

// Status is the display label of a task's completion state.
type Status string

// Task statuses as shown in listings.
const (
	StatusPending   Status = "Pendiente"
	StatusCompleted Status = "Completada"
)

// String returns the status label.
func (s Status) String() string {
	return string(s)
}

// IsCompleted returns true for the completed status.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}
