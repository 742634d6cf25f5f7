package repository

import (
	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectMemberRepository handles database operations for the project roster
type ProjectMemberRepository struct {
	db *gorm.DB
}

// NewProjectMemberRepository creates a new project member repository
func NewProjectMemberRepository(db *gorm.DB) *ProjectMemberRepository {
	return &ProjectMemberRepository{db: db}
}

// Create creates a new project member
func (r *ProjectMemberRepository) Create(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a project member by ID
func (r *ProjectMemberRepository) GetByID(id uuid.UUID) (*models.ProjectMember, error) {
	var member models.ProjectMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByProjectAndUser retrieves a roster entry for a specific user in a project
func (r *ProjectMemberRepository) GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectMember, error) {
	var member models.ProjectMember
	err := r.db.First(&member, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetRoster retrieves the active roster for a project ordered by full name.
// The ordering is what makes capability resolution deterministic across
// retries of the same activation.
func (r *ProjectMemberRepository) GetRoster(projectID uuid.UUID) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := r.db.
		Where("project_id = ? AND is_active = ?", projectID, true).
		Order("full_name ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a project member
func (r *ProjectMemberRepository) Update(member *models.ProjectMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a project member
func (r *ProjectMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectMember{}, "id = ?", id).Error
}
