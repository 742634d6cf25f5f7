package service

import (
	"testing"

	apperrors "project-roadmap-backend/internal/errors"
	"project-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(env *roadmapTestEnv) *CatalogService {
	return NewCatalogService(
		repository.NewPhaseRepository(env.db),
		repository.NewStageTemplateRepository(env.db),
		repository.NewTaskBlueprintRepository(env.db),
		validator.New(),
	)
}

func TestCatalogCreateAndListPhases(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newCatalogService(env)

	_, err := svc.ListPhases()
	assert.ErrorIs(t, err, apperrors.ErrEmptyPhaseCatalog)

	second, err := svc.CreatePhase(&CreatePhaseRequest{
		Name:       "production",
		Title:      "Production",
		OrderIndex: 1,
	})
	require.NoError(t, err)

	first, err := svc.CreatePhase(&CreatePhaseRequest{
		Name:       "discovery",
		Title:      "Discovery",
		OrderIndex: 0,
		Color:      "#00aa55",
	})
	require.NoError(t, err)

	phases, err := svc.ListPhases()
	require.NoError(t, err)
	require.Len(t, phases, 2)
	assert.Equal(t, first.ID, phases[0].ID, "catalog is ordered by index")
	assert.Equal(t, second.ID, phases[1].ID)
}

func TestCatalogCreatePhaseValidation(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newCatalogService(env)

	_, err := svc.CreatePhase(&CreatePhaseRequest{Title: "No name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCatalogCreateStageTemplate(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newCatalogService(env)

	phase, err := svc.CreatePhase(&CreatePhaseRequest{Name: "discovery", Title: "Discovery"})
	require.NoError(t, err)

	template, err := svc.CreateStageTemplate(&CreateStageTemplateRequest{
		PhaseID:      phase.ID,
		Name:         "Stakeholder interviews",
		DurationDays: 5,
	})
	require.NoError(t, err)
	assert.Nil(t, template.OrganizationID, "templates are global unless scoped")

	_, err = svc.CreateStageTemplate(&CreateStageTemplateRequest{
		PhaseID: uuid.New(),
		Name:    "Orphan",
	})
	assert.ErrorIs(t, err, apperrors.ErrPhaseNotFound)
}

func TestCatalogCreateAndListTaskBlueprints(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newCatalogService(env)

	phase, err := svc.CreatePhase(&CreatePhaseRequest{Name: "discovery", Title: "Discovery"})
	require.NoError(t, err)
	template, err := svc.CreateStageTemplate(&CreateStageTemplateRequest{
		PhaseID: phase.ID,
		Name:    "Stakeholder interviews",
	})
	require.NoError(t, err)

	second, err := svc.CreateTaskBlueprint(&CreateTaskBlueprintRequest{
		StageTemplateID:    template.ID,
		Title:              "Summarize findings",
		DurationDays:       1,
		RequiredCapability: "Strategist",
		OrderIndex:         1,
	})
	require.NoError(t, err)

	first, err := svc.CreateTaskBlueprint(&CreateTaskBlueprintRequest{
		StageTemplateID: template.ID,
		Title:           "Schedule sessions",
		DurationDays:    2,
		OrderIndex:      0,
	})
	require.NoError(t, err)

	blueprints, err := svc.ListTaskBlueprints(template.ID)
	require.NoError(t, err)
	require.Len(t, blueprints, 2)
	assert.Equal(t, first.ID, blueprints[0].ID, "blueprints come back in materialization order")
	assert.Equal(t, second.ID, blueprints[1].ID)

	_, err = svc.ListTaskBlueprints(uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrStageTemplateNotFound)
}

func TestCatalogListStageTemplatesUnknownPhase(t *testing.T) {
	env := newRoadmapTestEnv(t)
	svc := newCatalogService(env)

	_, err := svc.ListStageTemplates(uuid.New(), nil)
	assert.ErrorIs(t, err, apperrors.ErrPhaseNotFound)
}
