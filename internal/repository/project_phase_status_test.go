package repository

import (
	"testing"

	"project-roadmap-backend/internal/database/models"
	"project-roadmap-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPhaseStatuses(t *testing.T, db *gorm.DB, projectID uuid.UUID, statuses ...models.StageStatus) []models.ProjectPhaseStatus {
	t.Helper()
	rows := make([]models.ProjectPhaseStatus, 0, len(statuses))
	for i, status := range statuses {
		rows = append(rows, models.ProjectPhaseStatus{
			OrganizationID: uuid.New(),
			ProjectID:      projectID,
			PhaseID:        uuid.New(),
			Status:         status,
			OrderIndex:     i,
		})
	}
	require.NoError(t, db.Create(&rows).Error)
	return rows
}

func TestPhaseStatusGetActiveByProject(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewProjectPhaseStatusRepository(db)
	projectID := uuid.New()

	active, err := repo.GetActiveByProject(projectID)
	require.NoError(t, err)
	assert.Nil(t, active, "nil rather than an error when no phase is active")

	rows := seedPhaseStatuses(t, db, projectID,
		models.StageStatusCompleted, models.StageStatusActive, models.StageStatusLocked)

	active, err = repo.GetActiveByProject(projectID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, rows[1].ID, active.ID)
}

func TestPhaseStatusNextLocked(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewProjectPhaseStatusRepository(db)
	projectID := uuid.New()

	rows := seedPhaseStatuses(t, db, projectID,
		models.StageStatusActive, models.StageStatusLocked, models.StageStatusLocked)

	next, err := repo.NextLocked(projectID, 0)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, rows[1].ID, next.ID)

	next, err = repo.NextLocked(projectID, 2)
	require.NoError(t, err)
	assert.Nil(t, next, "nil marks the end of the roadmap")
}

func TestPhaseStatusListByProjectOrder(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewProjectPhaseStatusRepository(db)
	projectID := uuid.New()

	// Insert out of order; the listing must come back in roadmap order.
	rows := []models.ProjectPhaseStatus{
		{OrganizationID: uuid.New(), ProjectID: projectID, PhaseID: uuid.New(), Status: models.StageStatusLocked, OrderIndex: 2},
		{OrganizationID: uuid.New(), ProjectID: projectID, PhaseID: uuid.New(), Status: models.StageStatusActive, OrderIndex: 0},
		{OrganizationID: uuid.New(), ProjectID: projectID, PhaseID: uuid.New(), Status: models.StageStatusLocked, OrderIndex: 1},
	}
	require.NoError(t, db.Create(&rows).Error)

	listed, err := repo.ListByProject(projectID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{listed[0].OrderIndex, listed[1].OrderIndex, listed[2].OrderIndex})

	count, err := repo.CountByProject(projectID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
