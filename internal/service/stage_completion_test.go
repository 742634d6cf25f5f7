package service

import (
	"testing"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeStage persists an active stage carrying one task in the given status.
func (env *roadmapTestEnv) activeStage(t *testing.T, project *models.Project, phaseID uuid.UUID, order int, taskStatus models.TaskStatus) *models.ProjectStage {
	t.Helper()
	stage := env.factories.ProjectStage.WithProject(project, phaseID)
	stage.Status = models.StageStatusActive
	stage.OrderIndex = order
	env.create(t, stage)

	task := env.factories.Task.WithStage(stage)
	task.Status = taskStatus
	env.create(t, task)
	return stage
}

func TestCompleteStageBlocksOnNonTerminalTasks(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.activeStage(t, project, phases[0].ID, 0, models.TaskStatusInProgress)

	_, err := env.svc.CompleteStage(stage.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
	assert.ErrorIs(t, err, apperrors.ErrTasksNotTerminal)
	assert.Contains(t, err.Error(), "terminal")

	var reloaded models.ProjectStage
	require.NoError(t, env.db.First(&reloaded, "id = ?", stage.ID).Error)
	assert.Equal(t, models.StageStatusActive, reloaded.Status)
}

func TestCompleteStageAdvancesWithinPhase(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	current := env.activeStage(t, project, phases[0].ID, 0, models.TaskStatusDone)

	next := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	next.OrderIndex = 1
	env.create(t, next)

	result, err := env.svc.CompleteStage(current.ID)
	require.NoError(t, err)

	assert.Equal(t, AdvancedStage, result.Advanced)
	require.NotNil(t, result.NextID)
	assert.Equal(t, next.ID, *result.NextID)

	var completed, activated models.ProjectStage
	require.NoError(t, env.db.First(&completed, "id = ?", current.ID).Error)
	require.NoError(t, env.db.First(&activated, "id = ?", next.ID).Error)
	assert.Equal(t, models.StageStatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, models.StageStatusActive, activated.Status)
	assert.NotNil(t, activated.StartedAt)
}

func TestCompleteStageCascadesIntoNextPhase(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	last := env.activeStage(t, project, phases[0].ID, 0, models.TaskStatusApproved)

	nextPhaseStage := env.factories.ProjectStage.WithProject(project, phases[1].ID)
	env.create(t, nextPhaseStage)

	result, err := env.svc.CompleteStage(last.ID)
	require.NoError(t, err)

	assert.Equal(t, AdvancedPhase, result.Advanced)
	require.NotNil(t, result.NextID)
	assert.Equal(t, nextPhaseStage.ID, *result.NextID)

	// The whole cascade lands in one call: old phase completed, new phase
	// active, its first stage active.
	var firstPhase, secondPhase models.ProjectPhaseStatus
	require.NoError(t, env.db.First(&firstPhase,
		"project_id = ? AND phase_id = ?", project.ID, phases[0].ID).Error)
	require.NoError(t, env.db.First(&secondPhase,
		"project_id = ? AND phase_id = ?", project.ID, phases[1].ID).Error)
	assert.Equal(t, models.StageStatusCompleted, firstPhase.Status)
	assert.NotNil(t, firstPhase.CompletedAt)
	assert.Equal(t, models.StageStatusActive, secondPhase.Status)
	assert.NotNil(t, secondPhase.StartedAt)

	var activated models.ProjectStage
	require.NoError(t, env.db.First(&activated, "id = ?", nextPhaseStage.ID).Error)
	assert.Equal(t, models.StageStatusActive, activated.Status)
}

func TestCompleteStageOpensEmptyNextPhase(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	last := env.activeStage(t, project, phases[0].ID, 0, models.TaskStatusDone)

	result, err := env.svc.CompleteStage(last.ID)
	require.NoError(t, err)

	// The next phase has no stages yet; it still becomes active so later
	// attaches activate into it.
	assert.Equal(t, AdvancedPhase, result.Advanced)
	require.NotNil(t, result.NextID)

	var secondPhase models.ProjectPhaseStatus
	require.NoError(t, env.db.First(&secondPhase,
		"project_id = ? AND phase_id = ?", project.ID, phases[1].ID).Error)
	assert.Equal(t, secondPhase.ID, *result.NextID)
	assert.Equal(t, models.StageStatusActive, secondPhase.Status)
}

func TestCompleteStageFinishesRoadmap(t *testing.T) {
	env := newRoadmapTestEnv(t)

	org := env.factories.Organization.Create()
	project := env.factories.Project.WithOrganization(org.ID)
	phase := env.factories.Phase.WithOrder(0)
	env.create(t, org, project, phase)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	last := env.activeStage(t, project, phase.ID, 0, models.TaskStatusApproved)

	result, err := env.svc.CompleteStage(last.ID)
	require.NoError(t, err)

	assert.Equal(t, AdvancedNone, result.Advanced)
	assert.Nil(t, result.NextID)

	var status models.ProjectPhaseStatus
	require.NoError(t, env.db.First(&status,
		"project_id = ? AND phase_id = ?", project.ID, phase.ID).Error)
	assert.Equal(t, models.StageStatusCompleted, status.Status)
}

func TestCompleteStageIsIdempotentWhenCompleted(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.Status = models.StageStatusCompleted
	env.create(t, stage)

	result, err := env.svc.CompleteStage(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, AdvancedNone, result.Advanced)
	assert.Nil(t, result.NextID)
}

func TestCompleteStageRejectsLocked(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	env.create(t, stage)

	_, err := env.svc.CompleteStage(stage.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
	assert.NotErrorIs(t, err, apperrors.ErrTasksNotTerminal,
		"a never-activated stage is a different rejection than open tasks")
}

func TestCompleteStageNotFound(t *testing.T) {
	env := newRoadmapTestEnv(t)

	_, err := env.svc.CompleteStage(env.factories.ProjectStage.Create().ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCompleteStageRespectsCustomTerminalSet(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	// With done excluded from the terminal set, a done task blocks
	// completion until it is approved.
	env.svc.terminalStatuses = []models.TaskStatus{models.TaskStatusApproved}

	stage := env.activeStage(t, project, phases[0].ID, 0, models.TaskStatusDone)

	_, err = env.svc.CompleteStage(stage.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
	assert.ErrorIs(t, err, apperrors.ErrTasksNotTerminal)

	require.NoError(t, env.db.Model(&models.Task{}).
		Where("project_stage_id = ?", stage.ID).
		Update("status", models.TaskStatusApproved).Error)

	result, err := env.svc.CompleteStage(stage.ID)
	require.NoError(t, err)
	require.NotNil(t, result)

	var reloaded models.ProjectStage
	require.NoError(t, env.db.First(&reloaded, "id = ?", stage.ID).Error)
	assert.Equal(t, models.StageStatusCompleted, reloaded.Status)
}
