package service

import (
	"errors"
	"fmt"
	"time"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"
	"project-roadmap-backend/internal/logger"
	"project-roadmap-backend/internal/metrics"
	"project-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Advanced describes how far a mutating roadmap call moved the project
type Advanced string

const (
	// AdvancedStage means the next stage within the same phase was activated
	AdvancedStage Advanced = "stage"
	// AdvancedPhase means the phase was exhausted and the next phase opened
	AdvancedPhase Advanced = "phase"
	// AdvancedNone means nothing further was activated (no-op retries and
	// the roadmap-complete terminal state)
	AdvancedNone Advanced = "none"
)

// AdvanceResult is the structured outcome of activateStage/completeStage
type AdvanceResult struct {
	Advanced Advanced   `json:"advanced"`
	NextID   *uuid.UUID `json:"next_id,omitempty"`
}

// RoadmapService implements the stage progression engine: bootstrap,
// template attachment, stage activation with task materialization, and
// stage/phase completion advancement. All mutating operations run inside a
// single transaction with a row lock on the stage or phase row being
// transitioned.
type RoadmapService struct {
	db               *gorm.DB
	validator        *validator.Validate
	terminalStatuses []models.TaskStatus
	metrics          *metrics.Metrics
	log              *logger.Logger
}

// NewRoadmapService creates a new roadmap service. A nil terminalStatuses
// falls back to the default terminal set (done, approved).
func NewRoadmapService(db *gorm.DB, validate *validator.Validate, terminalStatuses []models.TaskStatus) *RoadmapService {
	if len(terminalStatuses) == 0 {
		terminalStatuses = models.DefaultTerminalTaskStatuses()
	}
	return &RoadmapService{
		db:               db,
		validator:        validate,
		terminalStatuses: terminalStatuses,
		log:              logger.New().WithField("component", "roadmap"),
	}
}

// WithMetrics attaches progression counters. A service without metrics
// records nothing, so tests need no registry setup.
func (s *RoadmapService) WithMetrics(m *metrics.Metrics) *RoadmapService {
	s.metrics = m
	return s
}

// roadmapRepos bundles transaction-scoped repositories so the multi-step
// transitions compose over a single *gorm.DB handle.
type roadmapRepos struct {
	phases        *repository.PhaseRepository
	templates     *repository.StageTemplateRepository
	blueprints    *repository.TaskBlueprintRepository
	projects      *repository.ProjectRepository
	members       *repository.ProjectMemberRepository
	phaseStatuses *repository.ProjectPhaseStatusRepository
	stages        *repository.ProjectStageRepository
	tasks         *repository.TaskRepository
}

func newRoadmapRepos(tx *gorm.DB) *roadmapRepos {
	return &roadmapRepos{
		phases:        repository.NewPhaseRepository(tx),
		templates:     repository.NewStageTemplateRepository(tx),
		blueprints:    repository.NewTaskBlueprintRepository(tx),
		projects:      repository.NewProjectRepository(tx),
		members:       repository.NewProjectMemberRepository(tx),
		phaseStatuses: repository.NewProjectPhaseStatusRepository(tx),
		stages:        repository.NewProjectStageRepository(tx),
		tasks:         repository.NewTaskRepository(tx),
	}
}

// mapStageError translates storage-level failures on stage rows into the
// service error taxonomy.
func mapStageError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrProjectStageNotFound
	}
	if repository.IsLockContention(err) {
		return apperrors.ErrStageModified
	}
	return err
}

func mapPhaseStatusError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrPhaseStatusNotFound
	}
	if repository.IsLockContention(err) {
		return apperrors.ErrPhaseModified
	}
	return err
}

// PhaseStatusResponse represents one phase row of a project roadmap
type PhaseStatusResponse struct {
	ID          uuid.UUID          `json:"id"`
	PhaseID     uuid.UUID          `json:"phase_id"`
	Status      models.StageStatus `json:"status"`
	OrderIndex  int                `json:"order_index"`
	StartedAt   *time.Time         `json:"started_at,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

// BootstrapResponse is the result of bootstrapping a project roadmap
type BootstrapResponse struct {
	ProjectID           uuid.UUID             `json:"project_id"`
	Phases              []PhaseStatusResponse `json:"phases"`
	AlreadyBootstrapped bool                  `json:"already_bootstrapped"`
}

// BootstrapProject creates one phase status row per catalog phase, all
// locked except the first, which becomes active. Idempotent: a second call
// returns the existing rows untouched.
func (s *RoadmapService) BootstrapProject(projectID uuid.UUID) (*BootstrapResponse, error) {
	resp := &BootstrapResponse{ProjectID: projectID}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newRoadmapRepos(tx)

		if _, err := repos.projects.GetByID(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to load project: %w", err)
		}

		existing, err := repos.phaseStatuses.CountByProject(projectID)
		if err != nil {
			return fmt.Errorf("failed to count phase statuses: %w", err)
		}
		if existing > 0 {
			resp.AlreadyBootstrapped = true
			statuses, err := repos.phaseStatuses.ListByProject(projectID)
			if err != nil {
				return err
			}
			resp.Phases = toPhaseStatusResponses(statuses)
			return nil
		}

		phases, err := repos.phases.ListOrdered()
		if err != nil {
			return fmt.Errorf("failed to list phases: %w", err)
		}
		if len(phases) == 0 {
			return apperrors.ErrEmptyPhaseCatalog
		}

		project, err := repos.projects.GetByID(projectID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		statuses := make([]models.ProjectPhaseStatus, 0, len(phases))
		for i, phase := range phases {
			row := models.ProjectPhaseStatus{
				OrganizationID: project.OrganizationID,
				ProjectID:      projectID,
				PhaseID:        phase.ID,
				Status:         models.StageStatusLocked,
				OrderIndex:     phase.OrderIndex,
			}
			if i == 0 {
				row.Status = models.StageStatusActive
				row.StartedAt = &now
			}
			statuses = append(statuses, row)
		}

		if err := repos.phaseStatuses.CreateBatch(statuses); err != nil {
			return fmt.Errorf("failed to create phase statuses: %w", err)
		}

		resp.Phases = toPhaseStatusResponses(statuses)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil && !resp.AlreadyBootstrapped {
		s.metrics.RoadmapsBootstrappedTotal.Inc()
	}
	s.log.WithField("project_id", projectID).Info("project roadmap bootstrapped")
	return resp, nil
}

func toPhaseStatusResponses(statuses []models.ProjectPhaseStatus) []PhaseStatusResponse {
	out := make([]PhaseStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, PhaseStatusResponse{
			ID:          st.ID,
			PhaseID:     st.PhaseID,
			Status:      st.Status,
			OrderIndex:  st.OrderIndex,
			StartedAt:   st.StartedAt,
			CompletedAt: st.CompletedAt,
		})
	}
	return out
}

// AttachTemplatesRequest selects the stage templates to copy into a project.
// Either StageTemplateIDs or PhaseID must be set; PhaseID attaches every
// template of that phase visible to the project's organization.
type AttachTemplatesRequest struct {
	StageTemplateIDs []uuid.UUID `json:"stage_template_ids,omitempty"`
	PhaseID          *uuid.UUID  `json:"phase_id,omitempty"`
}

// AttachTemplatesResponse reports the stages created by an attach call
type AttachTemplatesResponse struct {
	CreatedStageIDs []uuid.UUID    `json:"created_stage_ids"`
	SkippedExisting int            `json:"skipped_existing"`
	Activation      *AdvanceResult `json:"activation,omitempty"`
}

// AttachTemplates copies stage templates into locked ProjectStage rows.
// Idempotent: templates already attached to the project are skipped, keyed
// by (project_id, template_stage_id). If the attach targets the project's
// active phase and that phase has no active stage yet, the lowest-order
// locked stage is activated within the same transaction.
func (s *RoadmapService) AttachTemplates(projectID uuid.UUID, req *AttachTemplatesRequest) (*AttachTemplatesResponse, error) {
	if len(req.StageTemplateIDs) == 0 && req.PhaseID == nil {
		return nil, apperrors.NewValidationError("stage_template_ids", "either stage_template_ids or phase_id is required")
	}

	resp := &AttachTemplatesResponse{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newRoadmapRepos(tx)

		project, err := repos.projects.GetByID(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to load project: %w", err)
		}

		var templates []models.StageTemplate
		if req.PhaseID != nil {
			if _, err := repos.phases.GetByID(*req.PhaseID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrPhaseNotFound
				}
				return err
			}
			templates, err = repos.templates.ListByPhase(*req.PhaseID, &project.OrganizationID)
			if err != nil {
				return fmt.Errorf("failed to list phase templates: %w", err)
			}
		} else {
			templates, err = repos.templates.ListByIDs(req.StageTemplateIDs)
			if err != nil {
				return fmt.Errorf("failed to load stage templates: %w", err)
			}
			if len(templates) != len(req.StageTemplateIDs) {
				return apperrors.ErrStageTemplateNotFound
			}
		}

		// Next free order index per phase, so repeated attaches append
		// after the stages that already exist. Target phases are collected
		// from every requested template, skipped or not, so an idempotent
		// re-attach can still activate a phase that stalled.
		nextOrder := make(map[uuid.UUID]int)
		targetPhases := make(map[uuid.UUID]bool)

		for _, tpl := range templates {
			targetPhases[tpl.PhaseID] = true

			exists, err := repos.stages.ExistsForTemplateStage(projectID, tpl.ID)
			if err != nil {
				return fmt.Errorf("failed to check existing stage: %w", err)
			}
			if exists {
				resp.SkippedExisting++
				continue
			}

			order, ok := nextOrder[tpl.PhaseID]
			if !ok {
				max, err := repos.stages.MaxOrderIndex(projectID, tpl.PhaseID)
				if err != nil {
					return fmt.Errorf("failed to resolve stage order: %w", err)
				}
				order = max + 1
			}
			nextOrder[tpl.PhaseID] = order + 1

			templateID := tpl.ID
			stage := models.ProjectStage{
				OrganizationID:  project.OrganizationID,
				ProjectID:       projectID,
				PhaseID:         tpl.PhaseID,
				TemplateStageID: &templateID,
				Name:            tpl.Name,
				Description:     tpl.Description,
				Status:          models.StageStatusLocked,
				OrderIndex:      order,
				DurationDays:    tpl.DurationDays,
			}
			if err := repos.stages.Create(&stage); err != nil {
				return fmt.Errorf("failed to create project stage: %w", err)
			}
			resp.CreatedStageIDs = append(resp.CreatedStageIDs, stage.ID)
		}

		// Kick off the first stage when the attach lands in the project's
		// currently active phase and nothing is running there yet.
		activePhase, err := repos.phaseStatuses.GetActiveByProject(projectID)
		if err != nil {
			return fmt.Errorf("failed to load active phase: %w", err)
		}
		if activePhase == nil || !targetPhases[activePhase.PhaseID] {
			return nil
		}

		running, err := repos.stages.ActiveExistsInPhase(projectID, activePhase.PhaseID)
		if err != nil {
			return err
		}
		if running {
			return nil
		}

		first, err := repos.stages.FirstLockedInPhase(projectID, activePhase.PhaseID)
		if err != nil {
			return mapStageError(err)
		}
		if first == nil {
			return nil
		}

		activated, err := s.activateStageTx(repos, first)
		if err != nil {
			return err
		}
		resp.Activation = &AdvanceResult{Advanced: AdvancedStage, NextID: &activated.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"project_id": projectID,
		"created":    len(resp.CreatedStageIDs),
		"skipped":    resp.SkippedExisting,
	}).Info("stage templates attached")
	return resp, nil
}

// CreateStageRequest creates a manual (template-less) stage. Tasks are added
// to it by the user before activation.
type CreateStageRequest struct {
	PhaseID      uuid.UUID `json:"phase_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=200"`
	Description  string    `json:"description,omitempty"`
	DurationDays int       `json:"duration_days" validate:"min=0"`
}

// CreateManualStage appends a locked, unbound stage to a project phase
func (s *RoadmapService) CreateManualStage(projectID uuid.UUID, req *CreateStageRequest) (*models.ProjectStage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var stage models.ProjectStage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newRoadmapRepos(tx)

		project, err := repos.projects.GetByID(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return err
		}
		if _, err := repos.phases.GetByID(req.PhaseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPhaseNotFound
			}
			return err
		}

		max, err := repos.stages.MaxOrderIndex(projectID, req.PhaseID)
		if err != nil {
			return err
		}

		stage = models.ProjectStage{
			OrganizationID: project.OrganizationID,
			ProjectID:      projectID,
			PhaseID:        req.PhaseID,
			Name:           req.Name,
			Description:    req.Description,
			Status:         models.StageStatusLocked,
			OrderIndex:     max + 1,
			DurationDays:   req.DurationDays,
		}
		return repos.stages.Create(&stage)
	})
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// AllTasksTerminal reports whether every task under the stage has reached a
// terminal status. Pure read, usable for UI "can I complete?" checks.
func (s *RoadmapService) AllTasksTerminal(stageID uuid.UUID) (bool, error) {
	repos := newRoadmapRepos(s.db)

	if _, err := repos.stages.GetByID(stageID); err != nil {
		return false, mapStageError(err)
	}

	nonTerminal, err := repos.tasks.CountNonTerminal(stageID, s.terminalStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to count non-terminal tasks: %w", err)
	}
	return nonTerminal == 0, nil
}
