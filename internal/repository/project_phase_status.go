package repository

import (
	"errors"

	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectPhaseStatusRepository handles database operations for per-project
// phase progression rows
type ProjectPhaseStatusRepository struct {
	db *gorm.DB
}

// NewProjectPhaseStatusRepository creates a new project phase status repository
func NewProjectPhaseStatusRepository(db *gorm.DB) *ProjectPhaseStatusRepository {
	return &ProjectPhaseStatusRepository{db: db}
}

// CreateBatch inserts a set of phase status rows in one statement
func (r *ProjectPhaseStatusRepository) CreateBatch(statuses []models.ProjectPhaseStatus) error {
	if len(statuses) == 0 {
		return nil
	}
	return r.db.Create(&statuses).Error
}

// GetByID retrieves a phase status row by ID
func (r *ProjectPhaseStatusRepository) GetByID(id uuid.UUID) (*models.ProjectPhaseStatus, error) {
	var status models.ProjectPhaseStatus
	err := r.db.First(&status, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetByProjectAndPhase retrieves the status row for one (project, phase) pair
func (r *ProjectPhaseStatusRepository) GetByProjectAndPhase(projectID, phaseID uuid.UUID) (*models.ProjectPhaseStatus, error) {
	var status models.ProjectPhaseStatus
	err := forUpdate(r.db).First(&status, "project_id = ? AND phase_id = ?", projectID, phaseID).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetActiveByProject retrieves the project's single active phase row, or nil
// when the project has no active phase (not bootstrapped or roadmap done).
func (r *ProjectPhaseStatusRepository) GetActiveByProject(projectID uuid.UUID) (*models.ProjectPhaseStatus, error) {
	var status models.ProjectPhaseStatus
	err := r.db.First(&status, "project_id = ? AND status = ?", projectID, models.StageStatusActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// NextLocked retrieves the locked phase row with the smallest order index
// greater than afterOrder, or nil when the roadmap is exhausted.
func (r *ProjectPhaseStatusRepository) NextLocked(projectID uuid.UUID, afterOrder int) (*models.ProjectPhaseStatus, error) {
	var status models.ProjectPhaseStatus
	err := forUpdate(r.db).
		Where("project_id = ? AND status = ? AND order_index > ?", projectID, models.StageStatusLocked, afterOrder).
		Order("order_index ASC").
		First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ListByProject retrieves all phase status rows for a project in roadmap order
func (r *ProjectPhaseStatusRepository) ListByProject(projectID uuid.UUID) ([]models.ProjectPhaseStatus, error) {
	var statuses []models.ProjectPhaseStatus
	err := r.db.
		Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// CountByProject counts the phase status rows of a project
func (r *ProjectPhaseStatusRepository) CountByProject(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectPhaseStatus{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// Update updates a phase status row
func (r *ProjectPhaseStatusRepository) Update(status *models.ProjectPhaseStatus) error {
	return r.db.Save(status).Error
}
