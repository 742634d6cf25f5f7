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

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validate *validator.Validate) *OrganizationService {
	return &OrganizationService{repo: repo, validator: validate}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" validate:"required,max=200"`
	Domain      string          `json:"domain" validate:"required,max=100"`
	Description string          `json:"description,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Domain:      req.Domain,
		Description: req.Description,
		Metadata:    req.Metadata,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*models.Organization, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// GetAll retrieves organizations with pagination
func (s *OrganizationService) GetAll(page, pageSize int) ([]models.Organization, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	return s.repo.GetAll(pageSize, (page-1)*pageSize)
}

// Delete removes an organization
func (s *OrganizationService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
