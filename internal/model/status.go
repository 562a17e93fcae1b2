package model

// BatchStatus represents the lifecycle state of a batch download run
type BatchStatus string

const (
	// BatchStatusIdle means no batch has been started yet
	BatchStatusIdle BatchStatus = "Idle"

	// BatchStatusRunning means a batch is being processed
	BatchStatusRunning BatchStatus = "Running"

	// BatchStatusCompleted means the last batch finished (successfully or not)
	BatchStatusCompleted BatchStatus = "Completed"
)

// String returns the string representation of BatchStatus
func (bs BatchStatus) String() string {
	return string(bs)
}

// IsActive returns true if a batch is currently occupying the run slot
func (bs BatchStatus) IsActive() bool {
	return bs == BatchStatusRunning
}

// IsFinished returns true if the status is terminal for a run
func (bs BatchStatus) IsFinished() bool {
	return bs == BatchStatusCompleted
}
