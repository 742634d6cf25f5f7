package repository

import (
	"testing"

	"project-roadmap-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTemplateListByPhaseVisibility(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewStageTemplateRepository(db)
	factories := testutils.NewFactorySet()

	phaseID := uuid.New()
	orgID := uuid.New()
	otherOrgID := uuid.New()

	global := factories.StageTemplate.WithPhase(phaseID)
	global.Position = 0

	owned := factories.StageTemplate.WithPhase(phaseID)
	owned.OrganizationID = &orgID
	owned.Position = 1

	foreign := factories.StageTemplate.WithPhase(phaseID)
	foreign.OrganizationID = &otherOrgID
	foreign.Position = 2

	require.NoError(t, db.Create(global).Error)
	require.NoError(t, db.Create(owned).Error)
	require.NoError(t, db.Create(foreign).Error)

	// The organization sees global templates plus its own, in position order.
	templates, err := repo.ListByPhase(phaseID, &orgID)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, global.ID, templates[0].ID)
	assert.Equal(t, owned.ID, templates[1].ID)

	// Without an organization only global templates are visible.
	templates, err = repo.ListByPhase(phaseID, nil)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, global.ID, templates[0].ID)
}

func TestStageTemplateListByIDs(t *testing.T) {
	db := testutils.NewSQLiteTestDB(t)
	repo := NewStageTemplateRepository(db)
	factories := testutils.NewFactorySet()

	phaseID := uuid.New()
	second := factories.StageTemplate.WithPhase(phaseID)
	second.Position = 1
	first := factories.StageTemplate.WithPhase(phaseID)
	first.Position = 0

	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(first).Error)

	templates, err := repo.ListByIDs([]uuid.UUID{second.ID, first.ID})
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, first.ID, templates[0].ID)
	assert.Equal(t, second.ID, templates[1].ID)
}
