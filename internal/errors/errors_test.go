package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidTransitionErrorMatchesSentinelByEntityAndAction(t *testing.T) {
	err := NewInvalidTransitionError("project stage", "completed", "activate", "stage is already completed")

	assert.True(t, errors.Is(err, ErrStageNotLocked))
	assert.False(t, errors.Is(err, ErrStageNotActive), "different action must not match")
	assert.Contains(t, err.Error(), "cannot activate project stage")
	assert.Contains(t, err.Error(), "stage is already completed")
}

func TestInvalidTransitionErrorMatchesSentinelByReason(t *testing.T) {
	blocked := NewInvalidTransitionError("project stage", "active", "complete", ErrTasksNotTerminal.Reason)
	neverActivated := NewInvalidTransitionError("project stage", "locked", "complete", "stage was never activated")

	assert.True(t, errors.Is(blocked, ErrTasksNotTerminal))
	assert.True(t, errors.Is(blocked, ErrStageNotActive), "the broad category still matches")
	assert.False(t, errors.Is(neverActivated, ErrTasksNotTerminal),
		"a sentinel with a reason only matches that reason")
}

func TestNotFoundErrorMatching(t *testing.T) {
	wrapped := fmt.Errorf("loading stage: %w", ErrProjectStageNotFound)

	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrProjectStageNotFound))
	assert.False(t, errors.Is(wrapped, ErrProjectNotFound), "entities are distinct")
	assert.Equal(t, "project stage not found", ErrProjectStageNotFound.Error())
}

func TestAlreadyExistsErrorMessage(t *testing.T) {
	assert.Equal(t, "project already exists with this name in the organization", ErrProjectExists.Error())
	assert.Equal(t, "widget already exists", (&AlreadyExistsError{Entity: "widget"}).Error())
	assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrProjectExists)))
}

func TestConcurrentModificationMatching(t *testing.T) {
	wrapped := fmt.Errorf("transition: %w", ErrStageModified)

	assert.True(t, IsConcurrentModification(wrapped))
	assert.True(t, errors.Is(ErrStageModified, ErrPhaseModified),
		"any concurrent modification matches the category")
	assert.Contains(t, ErrStageModified.Error(), "retry")
}

func TestValidationErrorMessage(t *testing.T) {
	withField := NewValidationError("name", "is required")
	assert.Equal(t, "validation error: name - is required", withField.Error())
	assert.True(t, IsValidation(withField))

	withoutField := &ValidationError{Message: "bad payload"}
	assert.Equal(t, "validation error: bad payload", withoutField.Error())
}

func TestHelpersRejectUnrelatedErrors(t *testing.T) {
	err := errors.New("boom")

	assert.False(t, IsNotFound(err))
	assert.False(t, IsAlreadyExists(err))
	assert.False(t, IsInvalidTransition(err))
	assert.False(t, IsConcurrentModification(err))
	assert.False(t, IsValidation(err))
}
