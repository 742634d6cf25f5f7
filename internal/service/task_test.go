package service

import (
	"testing"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"
	"project-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(env *roadmapTestEnv) *TaskService {
	return NewTaskService(
		repository.NewTaskRepository(env.db),
		repository.NewProjectStageRepository(env.db),
		repository.NewProjectRepository(env.db),
		validator.New(),
	)
}

func TestTaskCreateOnLockedStage(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	env.create(t, stage)

	task, err := svc.Create(&CreateTaskRequest{
		ProjectID:          project.ID,
		ProjectStageID:     &stage.ID,
		Title:              "Prepare assets",
		DurationDays:       2,
		RequiredCapability: "Designer",
	})
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusToDo, task.Status)
	assert.Equal(t, project.OrganizationID, task.OrganizationID)
	assert.Equal(t, stage.ID, *task.ProjectStageID)
	assert.Nil(t, task.Deadline, "deadlines are computed at stage activation")
}

func TestTaskCreateRejectedOnActiveStage(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.Status = models.StageStatusActive
	env.create(t, stage)

	_, err := svc.Create(&CreateTaskRequest{
		ProjectID:      project.ID,
		ProjectStageID: &stage.ID,
		Title:          "Too late",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestTaskCreateUnboundToStage(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)
	project, _, _, _, _ := env.seedFixture(t)

	task, err := svc.Create(&CreateTaskRequest{
		ProjectID: project.ID,
		Title:     "Backlog item",
	})
	require.NoError(t, err)
	assert.Nil(t, task.ProjectStageID)
}

func TestTaskCreateProjectNotFound(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)

	_, err := svc.Create(&CreateTaskRequest{
		ProjectID: uuid.New(),
		Title:     "Orphan",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestTaskUpdateStatus(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	task := env.factories.Task.WithStage(stage)
	env.create(t, stage, task)

	updated, err := svc.UpdateStatus(task.ID, &UpdateStatusRequest{Status: models.TaskStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)

	_, err = svc.UpdateStatus(task.ID, &UpdateStatusRequest{Status: "shipped"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestTaskUpdateStatusNotFound(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)

	_, err := svc.UpdateStatus(uuid.New(), &UpdateStatusRequest{Status: models.TaskStatusDone})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskListByProjectPagination(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	env.create(t, stage)
	for i := 0; i < 3; i++ {
		env.create(t, env.factories.Task.WithStage(stage))
	}

	tasks, total, err := svc.ListByProject(project.ID, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, tasks, 2)

	_, _, err = svc.ListByProject(project.ID, 0, 20)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaginationParams)
}

func TestTaskDelete(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newTaskService(env)
	project, _, phases, _, _ := env.seedFixture(t)

	stage := env.factories.ProjectStage.WithProject(project, phases[0].ID)
	task := env.factories.Task.WithStage(stage)
	env.create(t, stage, task)

	require.NoError(t, svc.Delete(task.ID))

	_, err := svc.GetByID(task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	assert.ErrorIs(t, svc.Delete(task.ID), apperrors.ErrTaskNotFound)
}
