package service

import (
	"testing"

	"project-roadmap-backend/internal/database/models"
	"project-roadmap-backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapProgressionCounters(t *testing.T) {
	env := newRoadmapTestEnv(t)
	project, _, phases, _, _ := env.seedFixture(t)

	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	env.svc.WithMetrics(m)

	_, err := env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RoadmapsBootstrappedTotal))

	// An idempotent re-bootstrap must not count again.
	_, err = env.svc.BootstrapProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RoadmapsBootstrappedTotal))

	attach, err := env.svc.AttachTemplates(project.ID, &AttachTemplatesRequest{PhaseID: &phases[0].ID})
	require.NoError(t, err)
	require.NotNil(t, attach.Activation)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StagesActivatedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TasksMaterializedTotal))

	// Finish the materialized task, then complete the stage. The phase is
	// exhausted so the same call closes it and opens the next one.
	require.NoError(t, env.db.Model(&models.Task{}).
		Where("project_id = ?", project.ID).
		Update("status", models.TaskStatusDone).Error)

	result, err := env.svc.CompleteStage(*attach.Activation.NextID)
	require.NoError(t, err)
	assert.Equal(t, AdvancedPhase, result.Advanced)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.StagesCompletedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PhasesCompletedTotal))
	assert.Zero(t, testutil.ToFloat64(m.AdvanceConflictsTotal))
}
