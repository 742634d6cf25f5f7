package repository

import (
	"testing"
	"time"

	"project-roadmap-backend/internal/database/models"
	"project-roadmap-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCountNonTerminal(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewTaskRepository(db)
	factories := testutils.NewFactorySet()

	project := factories.Project.Create()
	stage := factories.ProjectStage.WithProject(project, project.ID)
	require.NoError(t, db.Create(stage).Error)

	statuses := []models.TaskStatus{
		models.TaskStatusToDo,
		models.TaskStatusInProgress,
		models.TaskStatusReview,
		models.TaskStatusDone,
		models.TaskStatusApproved,
	}
	for _, status := range statuses {
		task := factories.Task.WithStage(stage)
		task.Status = status
		require.NoError(t, db.Create(task).Error)
	}

	terminal := models.DefaultTerminalTaskStatuses()

	count, err := repo.CountNonTerminal(stage.ID, terminal)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	// Shrinking the terminal set to approved-only makes done block too.
	count, err = repo.CountNonTerminal(stage.ID, []models.TaskStatus{models.TaskStatusApproved})
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestTaskListByStageOrdersByCreation(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewTaskRepository(db)
	factories := testutils.NewFactorySet()

	project := factories.Project.Create()
	stage := factories.ProjectStage.WithProject(project, project.ID)
	require.NoError(t, db.Create(stage).Error)

	base := time.Now().UTC().Add(-time.Minute)
	titles := []string{"first", "second", "third"}
	for i, title := range titles {
		task := factories.Task.WithStage(stage)
		task.Title = title
		task.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, db.Create(task).Error)
	}

	tasks, err := repo.ListByStage(stage.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, title := range titles {
		assert.Equal(t, title, tasks[i].Title)
	}
}

func TestTaskUpdateDeadline(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewTaskRepository(db)
	factories := testutils.NewFactorySet()

	project := factories.Project.Create()
	stage := factories.ProjectStage.WithProject(project, project.ID)
	require.NoError(t, db.Create(stage).Error)

	task := factories.Task.WithStage(stage)
	require.NoError(t, db.Create(task).Error)

	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateDeadline(task.ID, deadline))

	reloaded, err := repo.GetByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Deadline)
	assert.WithinDuration(t, deadline, *reloaded.Deadline, time.Second)
}

func TestTaskCreateBatchEmptyIsNoop(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewTaskRepository(db)

	require.NoError(t, repo.CreateBatch(nil))
	require.NoError(t, repo.CreateBatch([]models.Task{}))
}
