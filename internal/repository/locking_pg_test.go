package repository

import (
	"testing"

	"project-roadmap-backend/internal/database/models"
	"project-roadmap-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need the shared Postgres container because SQLite has no
// FOR UPDATE NOWAIT. Run with -short to skip them.

func TestStageRowLockContention(t *testing.T) {
	if testing.Short() {
		t.Skip("needs the shared Postgres container")
	}
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		factories := testutils.NewFactorySet()
		org := factories.Organization.Create()
		project := factories.Project.WithOrganization(org.ID)
		phase := factories.Phase.Create()
		stage := factories.ProjectStage.WithProject(project, phase.ID)
		require.NoError(t, s.DB.Create(org).Error)
		require.NoError(t, s.DB.Create(project).Error)
		require.NoError(t, s.DB.Create(phase).Error)
		require.NoError(t, s.DB.Create(stage).Error)

		tx1 := s.DB.Begin()
		require.NoError(t, tx1.Error)
		defer tx1.Rollback()

		locked, err := NewProjectStageRepository(tx1).GetByIDForUpdate(stage.ID)
		require.NoError(t, err)
		assert.Equal(t, stage.ID, locked.ID)

		tx2 := s.DB.Begin()
		require.NoError(t, tx2.Error)
		defer tx2.Rollback()

		_, err = NewProjectStageRepository(tx2).GetByIDForUpdate(stage.ID)
		require.Error(t, err)
		assert.True(t, IsLockContention(err), "NOWAIT lock failure should map to lock contention, got: %v", err)
	})
}

func TestPhaseStatusRowLockContention(t *testing.T) {
	if testing.Short() {
		t.Skip("needs the shared Postgres container")
	}
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		factories := testutils.NewFactorySet()
		org := factories.Organization.Create()
		project := factories.Project.WithOrganization(org.ID)
		phase := factories.Phase.Create()
		require.NoError(t, s.DB.Create(org).Error)
		require.NoError(t, s.DB.Create(project).Error)
		require.NoError(t, s.DB.Create(phase).Error)

		status := &models.ProjectPhaseStatus{
			ProjectID:  project.ID,
			PhaseID:    phase.ID,
			OrderIndex: phase.OrderIndex,
			Status:     models.StageStatusActive,
		}
		require.NoError(t, s.DB.Create(status).Error)

		tx1 := s.DB.Begin()
		require.NoError(t, tx1.Error)
		defer tx1.Rollback()

		_, err := NewProjectPhaseStatusRepository(tx1).GetByProjectAndPhase(project.ID, phase.ID)
		require.NoError(t, err)

		tx2 := s.DB.Begin()
		require.NoError(t, tx2.Error)
		defer tx2.Rollback()

		_, err = NewProjectPhaseStatusRepository(tx2).GetByProjectAndPhase(project.ID, phase.ID)
		require.Error(t, err)
		assert.True(t, IsLockContention(err))
	})
}

func TestTaskTagsPersistOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("needs the shared Postgres container")
	}
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		factories := testutils.NewFactorySet()
		org := factories.Organization.Create()
		project := factories.Project.WithOrganization(org.ID)
		phase := factories.Phase.Create()
		stage := factories.ProjectStage.WithProject(project, phase.ID)
		require.NoError(t, s.DB.Create(org).Error)
		require.NoError(t, s.DB.Create(project).Error)
		require.NoError(t, s.DB.Create(phase).Error)
		require.NoError(t, s.DB.Create(stage).Error)

		task := factories.Task.WithStage(stage)
		task.Tags = []string{"backend", "migration"}
		require.NoError(t, s.DB.Create(task).Error)

		reloaded, err := NewTaskRepository(s.DB).GetByID(task.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"backend", "migration"}, reloaded.Tags)
	})
}
