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

// ProjectMemberService handles business logic for the project roster
type ProjectMemberService struct {
	repo        repository.ProjectMemberRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewProjectMemberService creates a new project member service
func NewProjectMemberService(repo repository.ProjectMemberRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validate *validator.Validate) *ProjectMemberService {
	return &ProjectMemberService{repo: repo, projectRepo: projectRepo, validator: validate}
}

// AddMemberRequest represents the request to add a member to a project roster
type AddMemberRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	FullName string    `json:"full_name" validate:"required,max=200"`
	Email    string    `json:"email" validate:"required,email,max=255"`
	Role     string    `json:"role" validate:"required,max=100"`
}

// Add adds a member to a project roster
func (s *ProjectMemberService) Add(projectID uuid.UUID, req *AddMemberRequest) (*models.ProjectMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	existing, err := s.repo.GetByProjectAndUser(projectID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectMemberExists
	}

	member := &models.ProjectMember{
		OrganizationID: project.OrganizationID,
		ProjectID:      projectID,
		UserID:         req.UserID,
		FullName:       req.FullName,
		Email:          req.Email,
		Role:           req.Role,
		IsActive:       true,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to add project member: %w", err)
	}
	return member, nil
}

// GetRoster retrieves a project's active roster in stable order
func (s *ProjectMemberService) GetRoster(projectID uuid.UUID) ([]models.ProjectMember, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return s.repo.GetRoster(projectID)
}

// Remove deletes a roster entry
func (s *ProjectMemberService) Remove(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectMemberNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
