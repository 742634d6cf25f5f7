package repository

import (
	"errors"

	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStageRepository handles database operations for project sub-stages
type ProjectStageRepository struct {
	db *gorm.DB
}

// NewProjectStageRepository creates a new project stage repository
func NewProjectStageRepository(db *gorm.DB) *ProjectStageRepository {
	return &ProjectStageRepository{db: db}
}

// Create creates a new project stage
func (r *ProjectStageRepository) Create(stage *models.ProjectStage) error {
	return r.db.Create(stage).Error
}

// GetByID retrieves a project stage by ID
func (r *ProjectStageRepository) GetByID(id uuid.UUID) (*models.ProjectStage, error) {
	var stage models.ProjectStage
	err := r.db.First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetByIDForUpdate retrieves a project stage holding a row lock for the
// remainder of the enclosing transaction. Must be called before reading the
// status that drives a transition.
func (r *ProjectStageRepository) GetByIDForUpdate(id uuid.UUID) (*models.ProjectStage, error) {
	var stage models.ProjectStage
	err := forUpdate(r.db).First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// ExistsForTemplateStage reports whether a project already has a stage copied
// from the given stage template. This is the duplicate check that makes
// template attachment idempotent.
func (r *ProjectStageRepository) ExistsForTemplateStage(projectID, templateStageID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectStage{}).
		Where("project_id = ? AND template_stage_id = ?", projectID, templateStageID).
		Count(&count).Error
	return count > 0, err
}

// MaxOrderIndex returns the highest stage order index within (project, phase),
// or -1 when the phase has no stages yet.
func (r *ProjectStageRepository) MaxOrderIndex(projectID, phaseID uuid.UUID) (int, error) {
	var max *int
	err := r.db.Model(&models.ProjectStage{}).
		Where("project_id = ? AND phase_id = ?", projectID, phaseID).
		Select("MAX(order_index)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// NextLockedInPhase retrieves the locked stage with the smallest order index
// greater than afterOrder within (project, phase), or nil when none remains.
func (r *ProjectStageRepository) NextLockedInPhase(projectID, phaseID uuid.UUID, afterOrder int) (*models.ProjectStage, error) {
	var stage models.ProjectStage
	err := forUpdate(r.db).
		Where("project_id = ? AND phase_id = ? AND status = ? AND order_index > ?",
			projectID, phaseID, models.StageStatusLocked, afterOrder).
		Order("order_index ASC").
		First(&stage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// FirstLockedInPhase retrieves the lowest-order locked stage of a phase, or
// nil when the phase has none.
func (r *ProjectStageRepository) FirstLockedInPhase(projectID, phaseID uuid.UUID) (*models.ProjectStage, error) {
	return r.NextLockedInPhase(projectID, phaseID, -1)
}

// ActiveExistsInPhase reports whether any stage is active within (project, phase)
func (r *ProjectStageRepository) ActiveExistsInPhase(projectID, phaseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectStage{}).
		Where("project_id = ? AND phase_id = ? AND status = ?", projectID, phaseID, models.StageStatusActive).
		Count(&count).Error
	return count > 0, err
}

// ListActiveIDs retrieves the IDs of every active stage across all projects.
// Used by the background advance poller.
func (r *ProjectStageRepository) ListActiveIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ProjectStage{}).
		Where("status = ?", models.StageStatusActive).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListByProject retrieves all stages of a project ordered by phase and index
func (r *ProjectStageRepository) ListByProject(projectID uuid.UUID) ([]models.ProjectStage, error) {
	var stages []models.ProjectStage
	err := r.db.
		Where("project_id = ?", projectID).
		Order("phase_id, order_index ASC").
		Find(&stages).Error
	if err != nil {
		return nil, err
	}
	return stages, nil
}

// Update updates a project stage
func (r *ProjectStageRepository) Update(stage *models.ProjectStage) error {
	return r.db.Save(stage).Error
}

// Delete deletes a project stage
func (r *ProjectStageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectStage{}, "id = ?", id).Error
}
