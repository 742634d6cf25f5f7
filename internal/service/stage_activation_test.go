package service

import (
	"testing"
	"time"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateStageMaterializesWaterfallTasks(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, member, phases, template, _ := env.seedFixture(t)

	// Replace the fixture blueprint set: two Editor tasks queue on the
	// member's track, one Designer task runs in parallel and unassigned.
	require.NoError(t, env.db.Where("stage_template_id = ?", template.ID).
		Delete(&models.TaskBlueprint{}).Error)

	draft := env.factories.TaskBlueprint.WithTemplate(template.ID)
	draft.Title = "Draft copy"
	draft.RequiredCapability = "Editor"
	draft.DurationDays = 2
	draft.OrderIndex = 0

	polish := env.factories.TaskBlueprint.WithTemplate(template.ID)
	polish.Title = "Polish copy"
	polish.RequiredCapability = "Editor"
	polish.DurationDays = 3
	polish.OrderIndex = 1

	mockups := env.factories.TaskBlueprint.WithTemplate(template.ID)
	mockups.Title = "Mockups"
	mockups.RequiredCapability = "Designer"
	mockups.DurationDays = 1
	mockups.OrderIndex = 2

	env.create(t, draft, polish, mockups)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.TemplateStageID = &template.ID
	env.create(t, stage)

	result, err := env.svc.ActivateStage(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, AdvancedStage, result.Advanced)
	require.NotNil(t, result.NextID)
	assert.Equal(t, stage.ID, *result.NextID)

	var reloaded models.ProjectStage
	require.NoError(t, env.db.First(&reloaded, "id = ?", stage.ID).Error)
	assert.Equal(t, models.StageStatusActive, reloaded.Status)
	require.NotNil(t, reloaded.StartedAt)
	start := *reloaded.StartedAt

	var tasks []models.Task
	require.NoError(t, env.db.Where("project_stage_id = ?", stage.ID).Find(&tasks).Error)
	require.Len(t, tasks, 3)

	byTitle := make(map[string]models.Task, len(tasks))
	for _, task := range tasks {
		byTitle[task.Title] = task
	}

	draftTask := byTitle["Draft copy"]
	require.NotNil(t, draftTask.Deadline)
	assert.WithinDuration(t, start.AddDate(0, 0, 2), *draftTask.Deadline, time.Second)
	require.NotNil(t, draftTask.AssigneeID)
	assert.Equal(t, member.ID, *draftTask.AssigneeID)
	assert.True(t, draftTask.AutoAssigned)

	polishTask := byTitle["Polish copy"]
	require.NotNil(t, polishTask.Deadline)
	assert.WithinDuration(t, start.AddDate(0, 0, 5), *polishTask.Deadline, time.Second)

	mockupsTask := byTitle["Mockups"]
	require.NotNil(t, mockupsTask.Deadline)
	assert.WithinDuration(t, start.AddDate(0, 0, 1), *mockupsTask.Deadline, time.Second)
	assert.Nil(t, mockupsTask.AssigneeID, "no Designer on the roster")
	assert.False(t, mockupsTask.AutoAssigned)
}

func TestActivateStageIsIdempotentWhenActive(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, template, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.TemplateStageID = &template.ID
	env.create(t, stage)

	_, err = env.svc.ActivateStage(stage.ID)
	require.NoError(t, err)

	retry, err := env.svc.ActivateStage(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, AdvancedNone, retry.Advanced)
	require.NotNil(t, retry.NextID)
	assert.Equal(t, stage.ID, *retry.NextID)

	// The retry must not re-materialize the task set.
	var count int64
	require.NoError(t, env.db.Model(&models.Task{}).
		Where("project_stage_id = ?", stage.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestActivateStageRejectsCompleted(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.Status = models.StageStatusCompleted
	env.create(t, stage)

	_, err := env.svc.ActivateStage(stage.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestActivateStageNotFound(t *testing.T) {
	env := newRoadmapTestEnv(t)

	_, err := env.svc.ActivateStage(env.factories.ProjectStage.Create().ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestActivateManualStageSchedulesExistingTasks(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	env.create(t, stage)

	base := time.Now().UTC().Add(-time.Minute)
	first := env.factories.Task.WithStage(stage)
	first.Title = "Write brief"
	first.DurationDays = 2
	first.CreatedAt = base
	second := env.factories.Task.WithStage(stage)
	second.Title = "Edit brief"
	second.DurationDays = 3
	second.CreatedAt = base.Add(time.Second)
	env.create(t, first, second)

	result, err := env.svc.ActivateStage(stage.ID)
	require.NoError(t, err)
	assert.Equal(t, AdvancedStage, result.Advanced)

	var reloaded models.ProjectStage
	require.NoError(t, env.db.First(&reloaded, "id = ?", stage.ID).Error)
	require.NotNil(t, reloaded.StartedAt)
	start := *reloaded.StartedAt

	var firstTask, secondTask models.Task
	require.NoError(t, env.db.First(&firstTask, "id = ?", first.ID).Error)
	require.NoError(t, env.db.First(&secondTask, "id = ?", second.ID).Error)

	// Both tasks share the Editor track, so the second queues after the
	// first. Assignees chosen by the user are never recomputed.
	require.NotNil(t, firstTask.Deadline)
	assert.WithinDuration(t, start.AddDate(0, 0, 2), *firstTask.Deadline, time.Second)
	require.NotNil(t, secondTask.Deadline)
	assert.WithinDuration(t, start.AddDate(0, 0, 5), *secondTask.Deadline, time.Second)
	assert.Nil(t, firstTask.AssigneeID)
	assert.False(t, firstTask.AutoAssigned)

	var count int64
	require.NoError(t, env.db.Model(&models.Task{}).
		Where("project_stage_id = ?", stage.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count, "manual activation must not create tasks")
}

func TestActivateStageRejectsSecondActiveInPhase(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	first := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	first.OrderIndex = 0
	second := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	second.OrderIndex = 1
	env.create(t, first, second)

	_, err = env.svc.ActivateStage(first.ID)
	require.NoError(t, err)

	_, err = env.svc.ActivateStage(second.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))

	var active int64
	require.NoError(t, env.db.Model(&models.ProjectStage{}).
		Where("project_id = ? AND phase_id = ? AND status = ?",
			project.ID, phases[0].ID, models.StageStatusActive).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)

	var reloaded models.ProjectStage
	require.NoError(t, env.db.First(&reloaded, "id = ?", second.ID).Error)
	assert.Equal(t, models.StageStatusLocked, reloaded.Status)
}

func TestActivateStageRejectsLockedPhase(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)

	// phases[1] is still locked after bootstrap.
	stage := env.factories.ProjectStage.WithProject(project, phases[1].ID)
	env.create(t, stage)

	_, err = env.svc.ActivateStage(stage.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
	assert.Contains(t, err.Error(), "phase")
}

func TestActivateStageRejectsUnbootstrappedProject(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	env.create(t, stage)

	_, err := env.svc.ActivateStage(stage.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestResolveAssigneeMatchesRoleCaseInsensitively(t *testing.T) {
	roster := []models.ProjectMember{
		{FullName: "Ada", Role: "designer"},
		{FullName: "Ben", Role: "EDITOR"},
	}

	assert.Equal(t, "Ben", resolveAssignee(roster, "Editor").FullName)
	assert.Equal(t, "Ada", resolveAssignee(roster, "Designer").FullName)
	assert.Nil(t, resolveAssignee(roster, "QA"))
	assert.Nil(t, resolveAssignee(roster, ""))
}
