package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidTransitionError represents a rejected stage or phase state
// transition: activating a non-locked stage, completing a non-active stage,
// or completing a stage whose tasks are not all terminal.
type InvalidTransitionError struct {
	Entity string
	From   string
	Action string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s %s in status %q: %s", e.Action, e.Entity, e.From, e.Reason)
	}
	return fmt.Sprintf("cannot %s %s in status %q", e.Action, e.Entity, e.From)
}

// Is enables errors.Is() comparison for InvalidTransitionError. Matching is
// by entity and action so callers can test against sentinel instances
// without knowing the runtime status. A sentinel carrying a Reason matches
// only rejections with that exact reason, which distinguishes "tasks are not
// terminal" from "stage was never activated".
func (e *InvalidTransitionError) Is(target error) bool {
	t, ok := target.(*InvalidTransitionError)
	if !ok {
		return false
	}
	if e.Entity != t.Entity || e.Action != t.Action {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// ConcurrentModificationError signals lock contention on the row being
// transitioned. The operation was not applied and the caller may retry.
type ConcurrentModificationError struct {
	Entity string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s is being modified by another request, retry", e.Entity)
}

// Is enables errors.Is() comparison for ConcurrentModificationError
func (e *ConcurrentModificationError) Is(target error) bool {
	_, ok := target.(*ConcurrentModificationError)
	return ok
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrProjectMemberNotFound = &NotFoundError{Entity: "project member"}
	ErrPhaseNotFound         = &NotFoundError{Entity: "phase"}
	ErrStageTemplateNotFound = &NotFoundError{Entity: "stage template"}
	ErrPhaseStatusNotFound   = &NotFoundError{Entity: "project phase status"}
	ErrProjectStageNotFound  = &NotFoundError{Entity: "project stage"}
	ErrTaskNotFound          = &NotFoundError{Entity: "task"}
)

// Already Exists Errors
var (
	ErrOrganizationExists  = &AlreadyExistsError{Entity: "organization", Context: "with this name or domain"}
	ErrProjectExists       = &AlreadyExistsError{Entity: "project", Context: "with this name in the organization"}
	ErrProjectMemberExists = &AlreadyExistsError{Entity: "project member", Context: "for this user in the project"}
	ErrPhaseExists         = &AlreadyExistsError{Entity: "phase", Context: "with this name or order index"}
)

// Transition Errors
var (
	ErrStageNotLocked    = &InvalidTransitionError{Entity: "project stage", Action: "activate"}
	ErrStageNotActive    = &InvalidTransitionError{Entity: "project stage", Action: "complete"}
	ErrStageModified     = &ConcurrentModificationError{Entity: "project stage"}
	ErrPhaseModified     = &ConcurrentModificationError{Entity: "project phase status"}
	ErrTasksNotTerminal  = &InvalidTransitionError{Entity: "project stage", Action: "complete", Reason: "tasks are not in a terminal status"}
	ErrRoadmapNotStarted = errors.New("project roadmap has not been bootstrapped")
	ErrEmptyPhaseCatalog = errors.New("phase catalog is empty")
)

// Business Logic Errors
var (
	// ErrNoCapableAssignee is non-fatal: activation degrades to an
	// unassigned task and logs the miss for human triage.
	ErrNoCapableAssignee       = errors.New("no project member matches the required capability")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsConcurrentModification checks if an error is a ConcurrentModificationError
func IsConcurrentModification(err error) bool {
	var concurrentErr *ConcurrentModificationError
	return errors.As(err, &concurrentErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(entity, from, action, reason string) error {
	return &InvalidTransitionError{Entity: entity, From: from, Action: action, Reason: reason}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
