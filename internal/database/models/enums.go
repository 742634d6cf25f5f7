package models

// StageStatus represents the lifecycle status of a roadmap phase or stage.
// The state machine is locked -> active -> completed with no other
// transitions; skipping and reopening are not allowed.
type StageStatus string

const (
	StageStatusLocked    StageStatus = "locked"
	StageStatusActive    StageStatus = "active"
	StageStatusCompleted StageStatus = "completed"
)

// IsValid checks if the StageStatus is valid
func (s StageStatus) IsValid() bool {
	switch s {
	case StageStatusLocked, StageStatusActive, StageStatusCompleted:
		return true
	}
	return false
}

// TaskStatus represents the execution status of a task
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "to_do"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusApproved   TaskStatus = "approved"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone, TaskStatusApproved:
		return true
	}
	return false
}

// DefaultTerminalTaskStatuses is the default set of statuses that count as
// finished work when deciding whether a stage can be completed. Deployments
// that skip the approval step can override this via configuration.
func DefaultTerminalTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusDone, TaskStatusApproved}
}
