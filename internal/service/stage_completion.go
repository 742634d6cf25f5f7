package service

import (
	"fmt"
	"time"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transitionKind enumerates the pending-transition steps of the advancement
// loop. Cross-level advancement (stage completion cascading into phase
// completion cascading into the next phase's first stage) is driven by a
// bounded work queue instead of recursion.
type transitionKind int

const (
	advanceWithinPhase transitionKind = iota
	advanceToNextPhase
)

type pendingTransition struct {
	kind       transitionKind
	projectID  uuid.UUID
	phaseID    uuid.UUID
	afterOrder int
}

// CompleteStage validates that every task under the stage is terminal, marks
// the stage completed, and advances the roadmap: next stage in the phase,
// or next phase and its first stage when the phase is exhausted. The whole
// cascade runs in one transaction. Completing an already-completed stage is
// a safe no-op returning {advanced: "none"}.
func (s *RoadmapService) CompleteStage(stageID uuid.UUID) (*AdvanceResult, error) {
	result := &AdvanceResult{Advanced: AdvancedNone}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newRoadmapRepos(tx)

		stage, err := repos.stages.GetByIDForUpdate(stageID)
		if err != nil {
			return mapStageError(err)
		}

		switch stage.Status {
		case models.StageStatusCompleted:
			// Idempotent retry.
			return nil
		case models.StageStatusLocked:
			return apperrors.NewInvalidTransitionError(
				"project stage", string(stage.Status), "complete", "stage was never activated")
		}

		nonTerminal, err := repos.tasks.CountNonTerminal(stage.ID, s.terminalStatuses)
		if err != nil {
			return fmt.Errorf("failed to count non-terminal tasks: %w", err)
		}
		if nonTerminal > 0 {
			s.log.WithFields(map[string]interface{}{
				"stage_id":     stage.ID,
				"non_terminal": nonTerminal,
			}).Debug("completion rejected, tasks still open")
			return apperrors.NewInvalidTransitionError(
				"project stage", string(stage.Status), "complete",
				apperrors.ErrTasksNotTerminal.Reason)
		}

		now := time.Now().UTC()
		stage.Status = models.StageStatusCompleted
		stage.CompletedAt = &now
		if err := repos.stages.Update(stage); err != nil {
			return fmt.Errorf("failed to complete stage: %w", err)
		}

		s.log.WithFields(map[string]interface{}{
			"project_id": stage.ProjectID,
			"stage_id":   stage.ID,
			"stage_name": stage.Name,
		}).Info("stage completed")
		if s.metrics != nil {
			s.metrics.StagesCompletedTotal.Inc()
		}

		advanced, err := s.advance(repos, pendingTransition{
			kind:       advanceWithinPhase,
			projectID:  stage.ProjectID,
			phaseID:    stage.PhaseID,
			afterOrder: stage.OrderIndex,
		})
		if err != nil {
			return err
		}
		*result = *advanced
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

// advance drains the pending-transition queue. Each iteration either
// activates a stage (terminating the loop) or converts a phase-exhausted
// step into the next one. The queue length is bounded by the number of
// phases, so the loop always terminates.
func (s *RoadmapService) advance(repos *roadmapRepos, first pendingTransition) (*AdvanceResult, error) {
	queue := []pendingTransition{first}

	for len(queue) > 0 {
		step := queue[0]
		queue = queue[1:]

		switch step.kind {
		case advanceWithinPhase:
			next, err := repos.stages.NextLockedInPhase(step.projectID, step.phaseID, step.afterOrder)
			if err != nil {
				return nil, mapStageError(err)
			}
			if next != nil {
				activated, err := s.activateStageTx(repos, next)
				if err != nil {
					return nil, err
				}
				return &AdvanceResult{Advanced: AdvancedStage, NextID: &activated.ID}, nil
			}
			// Phase exhausted: complete it and move on.
			queue = append(queue, pendingTransition{
				kind:      advanceToNextPhase,
				projectID: step.projectID,
				phaseID:   step.phaseID,
			})

		case advanceToNextPhase:
			result, err := s.completePhaseTx(repos, step.projectID, step.phaseID)
			if err != nil {
				return nil, err
			}
			return result, nil
		}
	}

	return &AdvanceResult{Advanced: AdvancedNone}, nil
}

// completePhaseTx marks the phase completed and bootstraps the next one:
// the next locked phase becomes active and its first locked stage is
// activated. When no phase remains the roadmap is complete.
func (s *RoadmapService) completePhaseTx(repos *roadmapRepos, projectID, phaseID uuid.UUID) (*AdvanceResult, error) {
	status, err := repos.phaseStatuses.GetByProjectAndPhase(projectID, phaseID)
	if err != nil {
		return nil, mapPhaseStatusError(err)
	}

	now := time.Now().UTC()
	if status.Status != models.StageStatusCompleted {
		status.Status = models.StageStatusCompleted
		status.CompletedAt = &now
		if err := repos.phaseStatuses.Update(status); err != nil {
			return nil, fmt.Errorf("failed to complete phase: %w", err)
		}
		s.log.WithFields(map[string]interface{}{
			"project_id": projectID,
			"phase_id":   phaseID,
		}).Info("phase completed")
		if s.metrics != nil {
			s.metrics.PhasesCompletedTotal.Inc()
		}
	}

	nextPhase, err := repos.phaseStatuses.NextLocked(projectID, status.OrderIndex)
	if err != nil {
		return nil, mapPhaseStatusError(err)
	}
	if nextPhase == nil {
		// Terminal state: every phase of the roadmap is completed.
		s.log.WithField("project_id", projectID).Info("roadmap complete")
		return &AdvanceResult{Advanced: AdvancedNone}, nil
	}

	nextPhase.Status = models.StageStatusActive
	nextPhase.StartedAt = &now
	if err := repos.phaseStatuses.Update(nextPhase); err != nil {
		return nil, fmt.Errorf("failed to activate phase: %w", err)
	}

	first, err := repos.stages.FirstLockedInPhase(projectID, nextPhase.PhaseID)
	if err != nil {
		return nil, mapStageError(err)
	}
	if first == nil {
		// The next phase has no stages yet; it still becomes the active
		// phase so later attaches activate into it.
		return &AdvanceResult{Advanced: AdvancedPhase, NextID: &nextPhase.ID}, nil
	}

	activated, err := s.activateStageTx(repos, first)
	if err != nil {
		return nil, err
	}
	return &AdvanceResult{Advanced: AdvancedPhase, NextID: &activated.ID}, nil
}
