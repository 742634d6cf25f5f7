package service

import (
	"errors"
	"fmt"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"
	"project-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService exposes the template catalog: phases, stage templates, and
// task blueprints. Read-only from the engine's perspective; the create
// operations exist for administration and seeding.
type CatalogService struct {
	phaseRepo     repository.PhaseRepositoryInterface
	templateRepo  repository.StageTemplateRepositoryInterface
	blueprintRepo repository.TaskBlueprintRepositoryInterface
	validator     *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	phaseRepo repository.PhaseRepositoryInterface,
	templateRepo repository.StageTemplateRepositoryInterface,
	blueprintRepo repository.TaskBlueprintRepositoryInterface,
	validate *validator.Validate,
) *CatalogService {
	return &CatalogService{
		phaseRepo:     phaseRepo,
		templateRepo:  templateRepo,
		blueprintRepo: blueprintRepo,
		validator:     validate,
	}
}

// ListPhases returns the phase catalog ordered by index
func (s *CatalogService) ListPhases() ([]models.Phase, error) {
	phases, err := s.phaseRepo.ListOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	if len(phases) == 0 {
		return nil, apperrors.ErrEmptyPhaseCatalog
	}
	return phases, nil
}

// ListStageTemplates returns a phase's stage templates ordered by position
func (s *CatalogService) ListStageTemplates(phaseID uuid.UUID, orgID *uuid.UUID) ([]models.StageTemplate, error) {
	if _, err := s.phaseRepo.GetByID(phaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhaseNotFound
		}
		return nil, err
	}
	templates, err := s.templateRepo.ListByPhase(phaseID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage templates: %w", err)
	}
	return templates, nil
}

// ListTaskBlueprints returns a stage template's blueprints ordered by index
func (s *CatalogService) ListTaskBlueprints(stageTemplateID uuid.UUID) ([]models.TaskBlueprint, error) {
	if _, err := s.templateRepo.GetByID(stageTemplateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageTemplateNotFound
		}
		return nil, err
	}
	blueprints, err := s.blueprintRepo.ListByStageTemplate(stageTemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task blueprints: %w", err)
	}
	return blueprints, nil
}

// CreatePhaseRequest defines a new catalog phase
type CreatePhaseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
	OrderIndex  int    `json:"order_index" validate:"min=0"`
	Color       string `json:"color,omitempty" validate:"max=20"`
}

// CreatePhase adds a phase to the catalog
func (s *CatalogService) CreatePhase(req *CreatePhaseRequest) (*models.Phase, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	phase := &models.Phase{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
		Color:       req.Color,
	}
	if err := s.phaseRepo.Create(phase); err != nil {
		return nil, fmt.Errorf("failed to create phase: %w", err)
	}
	return phase, nil
}

// CreateStageTemplateRequest defines a new stage template
type CreateStageTemplateRequest struct {
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	PhaseID        uuid.UUID  `json:"phase_id" validate:"required"`
	Name           string     `json:"name" validate:"required,min=1,max=200"`
	Description    string     `json:"description,omitempty"`
	DurationDays   int        `json:"duration_days" validate:"min=0"`
	Position       int        `json:"position" validate:"min=0"`
}

// CreateStageTemplate adds a stage template under a phase
func (s *CatalogService) CreateStageTemplate(req *CreateStageTemplateRequest) (*models.StageTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.phaseRepo.GetByID(req.PhaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhaseNotFound
		}
		return nil, err
	}

	template := &models.StageTemplate{
		OrganizationID: req.OrganizationID,
		PhaseID:        req.PhaseID,
		Name:           req.Name,
		Description:    req.Description,
		DurationDays:   req.DurationDays,
		Position:       req.Position,
	}
	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create stage template: %w", err)
	}
	return template, nil
}

// CreateTaskBlueprintRequest defines a new task blueprint
type CreateTaskBlueprintRequest struct {
	StageTemplateID    uuid.UUID `json:"stage_template_id" validate:"required"`
	Title              string    `json:"title" validate:"required,min=1,max=250"`
	Description        string    `json:"description,omitempty"`
	DurationDays       int       `json:"duration_days" validate:"min=0"`
	EstimatedHours     float64   `json:"estimated_hours" validate:"min=0"`
	RequiredCapability string    `json:"required_capability,omitempty" validate:"max=100"`
	Tags               []string  `json:"tags,omitempty"`
	OrderIndex         int       `json:"order_index" validate:"min=0"`
}

// CreateTaskBlueprint adds a task blueprint under a stage template
func (s *CatalogService) CreateTaskBlueprint(req *CreateTaskBlueprintRequest) (*models.TaskBlueprint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.templateRepo.GetByID(req.StageTemplateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageTemplateNotFound
		}
		return nil, err
	}

	blueprint := &models.TaskBlueprint{
		StageTemplateID:    req.StageTemplateID,
		Title:              req.Title,
		Description:        req.Description,
		DurationDays:       req.DurationDays,
		EstimatedHours:     req.EstimatedHours,
		RequiredCapability: req.RequiredCapability,
		Tags:               req.Tags,
		OrderIndex:         req.OrderIndex,
	}
	if err := s.blueprintRepo.Create(blueprint); err != nil {
		return nil, fmt.Errorf("failed to create task blueprint: %w", err)
	}
	return blueprint, nil
}
