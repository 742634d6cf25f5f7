package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"
	"project-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validate *validator.Validate) *ProjectService {
	return &ProjectService{repo: repo, orgRepo: orgRepo, validator: validate}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	OrganizationID uuid.UUID            `json:"organization_id" validate:"required"`
	Name           string               `json:"name" validate:"required,min=1,max=200"`
	DisplayName    string               `json:"display_name" validate:"required,max=250"`
	Description    string               `json:"description,omitempty"`
	ClientName     string               `json:"client_name,omitempty" validate:"max=200"`
	Status         models.ProjectStatus `json:"status,omitempty"`
	Metadata       json.RawMessage      `json:"metadata,omitempty" swaggertype:"object"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	DisplayName string                `json:"display_name" validate:"required,max=250"`
	Description string                `json:"description,omitempty"`
	ClientName  string                `json:"client_name,omitempty" validate:"max=200"`
	Status      *models.ProjectStatus `json:"status,omitempty"`
	Metadata    json.RawMessage       `json:"metadata,omitempty" swaggertype:"object"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	existing, err := s.repo.GetByName(req.OrganizationID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing project: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectExists
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := &models.Project{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		DisplayName:    req.DisplayName,
		Description:    req.Description,
		ClientName:     req.ClientName,
		Status:         status,
		Metadata:       req.Metadata,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// GetByOrganization retrieves an organization's projects with pagination
func (s *ProjectService) GetByOrganization(orgID uuid.UUID, page, pageSize int) ([]models.Project, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	return s.repo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
}

// Update updates a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.DisplayName = req.DisplayName
	project.Description = req.Description
	project.ClientName = req.ClientName
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Metadata != nil {
		project.Metadata = req.Metadata
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes a project
func (s *ProjectService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
