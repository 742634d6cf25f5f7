package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stageSource is the tagged variant behind "template-bound vs manual"
// stages, resolved once at the top of an activation so the scheduling loop
// never branches on template_stage_id again.
type stageSource struct {
	blueprints []models.TaskBlueprint // template-bound: definitions to copy
	tasks      []models.Task          // manual: pre-existing tasks to schedule
}

func (src *stageSource) isTemplateBound() bool {
	return src.blueprints != nil
}

// resolveStageSource loads the ordered task definitions for a stage
func (s *RoadmapService) resolveStageSource(repos *roadmapRepos, stage *models.ProjectStage) (*stageSource, error) {
	if stage.IsTemplateBound() {
		blueprints, err := repos.blueprints.ListByStageTemplate(*stage.TemplateStageID)
		if err != nil {
			return nil, fmt.Errorf("failed to list task blueprints: %w", err)
		}
		if blueprints == nil {
			blueprints = []models.TaskBlueprint{}
		}
		return &stageSource{blueprints: blueprints}, nil
	}

	tasks, err := repos.tasks.ListByStage(stage.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage tasks: %w", err)
	}
	return &stageSource{tasks: tasks}, nil
}

// ActivateStage transitions a locked stage to active and materializes its
// tasks with waterfall deadlines, all inside one transaction. Re-invoking on
// an already-active stage is a safe no-op returning the current state, so
// caller retries never re-materialize tasks.
func (s *RoadmapService) ActivateStage(stageID uuid.UUID) (*AdvanceResult, error) {
	result := &AdvanceResult{Advanced: AdvancedNone}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newRoadmapRepos(tx)

		stage, err := repos.stages.GetByIDForUpdate(stageID)
		if err != nil {
			return mapStageError(err)
		}

		switch stage.Status {
		case models.StageStatusActive:
			// Idempotent retry: the task set already exists.
			result.Advanced = AdvancedNone
			result.NextID = &stage.ID
			return nil
		case models.StageStatusCompleted:
			return apperrors.NewInvalidTransitionError(
				"project stage", string(stage.Status), "activate", "stage is already completed")
		}

		activated, err := s.activateStageTx(repos, stage)
		if err != nil {
			return err
		}
		result.Advanced = AdvancedStage
		result.NextID = &activated.ID
		return nil
	})
	if err != nil {
		if s.metrics != nil && apperrors.IsConcurrentModification(err) {
			s.metrics.AdvanceConflictsTotal.Inc()
		}
		return nil, err
	}
	return result, nil
}

// activateStageTx performs the locked->active transition and task
// materialization for a stage already locked by the enclosing transaction.
// Shared by ActivateStage, template attachment, and the completion advancer.
func (s *RoadmapService) activateStageTx(repos *roadmapRepos, stage *models.ProjectStage) (*models.ProjectStage, error) {
	if stage.Status != models.StageStatusLocked {
		return nil, apperrors.NewInvalidTransitionError(
			"project stage", string(stage.Status), "activate", "only locked stages can be activated")
	}

	// The stage's phase must be the project's active phase and nothing else
	// may be running in it, otherwise a direct activation call could put two
	// stages of one phase in flight.
	phase, err := repos.phaseStatuses.GetByProjectAndPhase(stage.ProjectID, stage.PhaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewInvalidTransitionError(
				"project stage", string(stage.Status), "activate", "the stage's phase is not active")
		}
		return nil, mapPhaseStatusError(err)
	}
	if phase.Status != models.StageStatusActive {
		return nil, apperrors.NewInvalidTransitionError(
			"project stage", string(stage.Status), "activate", "the stage's phase is not active")
	}

	running, err := repos.stages.ActiveExistsInPhase(stage.ProjectID, stage.PhaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for an active stage: %w", err)
	}
	if running {
		return nil, apperrors.NewInvalidTransitionError(
			"project stage", string(stage.Status), "activate", "another stage is active in this phase")
	}

	t0 := time.Now().UTC()
	stage.Status = models.StageStatusActive
	stage.StartedAt = &t0
	if err := repos.stages.Update(stage); err != nil {
		return nil, fmt.Errorf("failed to activate stage: %w", err)
	}

	source, err := s.resolveStageSource(repos, stage)
	if err != nil {
		return nil, err
	}

	roster, err := repos.members.GetRoster(stage.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project roster: %w", err)
	}

	schedule := newWaterfall(t0)

	if source.isTemplateBound() {
		tasks := make([]models.Task, 0, len(source.blueprints))
		for _, bp := range source.blueprints {
			task := models.Task{
				OrganizationID:     stage.OrganizationID,
				ProjectID:          stage.ProjectID,
				ProjectStageID:     &stage.ID,
				Title:              bp.Title,
				Description:        bp.Description,
				Status:             models.TaskStatusToDo,
				DurationDays:       bp.DurationDays,
				EstimatedHours:     bp.EstimatedHours,
				RequiredCapability: bp.RequiredCapability,
				Tags:               bp.Tags,
			}

			if member := resolveAssignee(roster, bp.RequiredCapability); member != nil {
				memberID := member.ID
				task.AssigneeID = &memberID
				task.AutoAssigned = true
			} else if bp.RequiredCapability != "" {
				// Not fatal: the task stays unassigned for human triage.
				s.log.WithFields(map[string]interface{}{
					"project_id": stage.ProjectID,
					"stage_id":   stage.ID,
					"capability": bp.RequiredCapability,
					"task_title": bp.Title,
				}).Warn(apperrors.ErrNoCapableAssignee.Error())
			}

			deadline := schedule.deadline(bp.RequiredCapability, bp.DurationDays)
			task.Deadline = &deadline
			tasks = append(tasks, task)
		}

		if err := repos.tasks.CreateBatch(tasks); err != nil {
			return nil, fmt.Errorf("failed to materialize tasks: %w", err)
		}
	} else {
		// Manual stage: tasks already exist, only deadlines are computed.
		// Assignees were chosen by the user and are never recomputed.
		for _, task := range source.tasks {
			deadline := schedule.deadline(task.RequiredCapability, task.DurationDays)
			if err := repos.tasks.UpdateDeadline(task.ID, deadline); err != nil {
				return nil, fmt.Errorf("failed to set task deadline: %w", err)
			}
		}
	}

	s.log.WithFields(map[string]interface{}{
		"project_id": stage.ProjectID,
		"stage_id":   stage.ID,
		"stage_name": stage.Name,
	}).Info("stage activated")
	if s.metrics != nil {
		s.metrics.StagesActivatedTotal.Inc()
		if source.isTemplateBound() {
			s.metrics.TasksMaterializedTotal.Add(float64(len(source.blueprints)))
		}
	}
	return stage, nil
}

// resolveAssignee finds the first active roster member whose role matches
// the required capability. The roster is ordered by full name, which keeps
// the pick deterministic across retries.
func resolveAssignee(roster []models.ProjectMember, capability string) *models.ProjectMember {
	if strings.TrimSpace(capability) == "" {
		return nil
	}
	for i := range roster {
		if strings.EqualFold(roster[i].Role, capability) {
			return &roster[i]
		}
	}
	return nil
}
