package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"project-roadmap-backend/internal/database/models"
	"project-roadmap-backend/internal/service"
	"project-roadmap-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type roadmapHandlerTest struct {
	*testutils.HTTPTestSuite
	db        *gorm.DB
	factories *testutils.FactorySet
}

func setupRoadmapHandlerTest(t *testing.T) *roadmapHandlerTest {
	t.Helper()
	suite := testutils.SetupHTTPTest()
	db := testutils.NewSQLiteTestDB(t)

	handler := NewRoadmapHandler(service.NewRoadmapService(db, validator.New(), nil))
	suite.Router.POST("/projects/:id/roadmap/bootstrap", handler.BootstrapProject)
	suite.Router.POST("/projects/:id/roadmap/attach", handler.AttachTemplates)
	suite.Router.GET("/projects/:id/roadmap", handler.GetRoadmap)
	suite.Router.POST("/projects/:id/stages", handler.CreateStage)
	suite.Router.POST("/stages/:id/activate", handler.ActivateStage)
	suite.Router.POST("/stages/:id/complete", handler.CompleteStage)
	suite.Router.GET("/stages/:id/tasks-terminal", handler.TasksTerminal)

	return &roadmapHandlerTest{
		HTTPTestSuite: suite,
		db:            db,
		factories:     testutils.NewFactorySet(),
	}
}

func (ht *roadmapHandlerTest) seedFixture(t *testing.T) (*models.Project, []*models.Phase, *models.StageTemplate) {
	t.Helper()
	org, project, member, phases, template, blueprint := ht.factories.CreateRoadmapFixture()
	for _, record := range []interface{}{org, project, member, phases[0], phases[1], template, blueprint} {
		require.NoError(t, ht.db.Create(record).Error)
	}
	return project, phases, template
}

func TestBootstrapProjectEndpoint(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, _, _ := ht.seedFixture(t)

	url := fmt.Sprintf("/projects/%s/roadmap/bootstrap", project.ID)

	var resp service.BootstrapResponse
	recorder := ht.MakeRequest(http.MethodPost, url, nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &resp)
	assert.False(t, resp.AlreadyBootstrapped)
	assert.Len(t, resp.Phases, 2)

	// Repeat bootstraps return the existing rows with 200.
	recorder = ht.MakeRequest(http.MethodPost, url, nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.True(t, resp.AlreadyBootstrapped)
}

func TestBootstrapProjectEndpointErrors(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)

	recorder := ht.MakeRequest(http.MethodPost, "/projects/not-a-uuid/roadmap/bootstrap", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid project ID")

	recorder = ht.MakeRequest(http.MethodPost,
		fmt.Sprintf("/projects/%s/roadmap/bootstrap", ht.factories.Project.Create().ID), nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "project")
}

func TestAttachTemplatesEndpoint(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, phases, _ := ht.seedFixture(t)

	bootstrapURL := fmt.Sprintf("/projects/%s/roadmap/bootstrap", project.ID)
	require.Equal(t, http.StatusCreated, ht.MakeRequest(http.MethodPost, bootstrapURL, nil).Code)

	var resp service.AttachTemplatesResponse
	recorder := ht.MakeRequest(http.MethodPost,
		fmt.Sprintf("/projects/%s/roadmap/attach", project.ID),
		map[string]interface{}{"phase_id": phases[0].ID})
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)

	assert.Len(t, resp.CreatedStageIDs, 1)
	require.NotNil(t, resp.Activation)
	assert.Equal(t, service.AdvancedStage, resp.Activation.Advanced)
}

func TestAttachTemplatesEndpointRequiresSelector(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, _, _ := ht.seedFixture(t)

	recorder := ht.MakeRequest(http.MethodPost,
		fmt.Sprintf("/projects/%s/roadmap/attach", project.ID),
		map[string]interface{}{})
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "stage_template_ids")
}

func TestActivateStageEndpoint(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, phases, template := ht.seedFixture(t)

	bootstrapURL := fmt.Sprintf("/projects/%s/roadmap/bootstrap", project.ID)
	require.Equal(t, http.StatusCreated, ht.MakeRequest(http.MethodPost, bootstrapURL, nil).Code)

	stage := ht.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.TemplateStageID = &template.ID
	require.NoError(t, ht.db.Create(stage).Error)

	var result service.AdvanceResult
	recorder := ht.MakeRequest(http.MethodPost, fmt.Sprintf("/stages/%s/activate", stage.ID), nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &result)
	assert.Equal(t, service.AdvancedStage, result.Advanced)
}

func TestActivateStageEndpointConflict(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, phases, _ := ht.seedFixture(t)

	stage := ht.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.Status = models.StageStatusCompleted
	require.NoError(t, ht.db.Create(stage).Error)

	recorder := ht.MakeRequest(http.MethodPost, fmt.Sprintf("/stages/%s/activate", stage.ID), nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "completed")
}

func TestCompleteStageEndpointBlocksUnfinishedTasks(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, phases, _ := ht.seedFixture(t)

	stage := ht.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.Status = models.StageStatusActive
	require.NoError(t, ht.db.Create(stage).Error)

	task := ht.factories.Task.WithStage(stage)
	require.NoError(t, ht.db.Create(task).Error)

	recorder := ht.MakeRequest(http.MethodPost, fmt.Sprintf("/stages/%s/complete", stage.ID), nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "terminal")
}

func TestTasksTerminalEndpoint(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, phases, _ := ht.seedFixture(t)

	stage := ht.factories.ProjectStage.WithProject(project, phases[0].ID)
	stage.Status = models.StageStatusActive
	require.NoError(t, ht.db.Create(stage).Error)

	var body map[string]bool
	recorder := ht.MakeRequest(http.MethodGet, fmt.Sprintf("/stages/%s/tasks-terminal", stage.ID), nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
	assert.True(t, body["all_tasks_terminal"])

	task := ht.factories.Task.WithStage(stage)
	require.NoError(t, ht.db.Create(task).Error)

	recorder = ht.MakeRequest(http.MethodGet, fmt.Sprintf("/stages/%s/tasks-terminal", stage.ID), nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
	assert.False(t, body["all_tasks_terminal"])
}

func TestGetRoadmapEndpoint(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, _, _ := ht.seedFixture(t)

	url := fmt.Sprintf("/projects/%s/roadmap", project.ID)

	// Before bootstrap the roadmap does not exist.
	recorder := ht.MakeRequest(http.MethodGet, url, nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "bootstrapped")

	bootstrapURL := fmt.Sprintf("/projects/%s/roadmap/bootstrap", project.ID)
	require.Equal(t, http.StatusCreated, ht.MakeRequest(http.MethodPost, bootstrapURL, nil).Code)

	var snapshot service.RoadmapSnapshot
	recorder = ht.MakeRequest(http.MethodGet, url, nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &snapshot)
	assert.Equal(t, project.ID, snapshot.ProjectID)
	assert.Len(t, snapshot.Phases, 2)
}

func TestCreateStageEndpoint(t *testing.T) {
	ht := setupRoadmapHandlerTest(t)
	project, phases, _ := ht.seedFixture(t)

	url := fmt.Sprintf("/projects/%s/stages", project.ID)

	var stage models.ProjectStage
	recorder := ht.MakeRequest(http.MethodPost, url, map[string]interface{}{
		"phase_id":      phases[0].ID,
		"name":          "Client review",
		"duration_days": 2,
	})
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &stage)
	assert.Equal(t, models.StageStatusLocked, stage.Status)
	assert.Equal(t, 0, stage.OrderIndex)

	// Missing name fails service validation.
	recorder = ht.MakeRequest(http.MethodPost, url, map[string]interface{}{
		"phase_id": phases[0].ID,
	})
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation failed")
}
