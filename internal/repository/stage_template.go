package repository

import (
	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageTemplateRepository handles database operations for stage templates
type StageTemplateRepository struct {
	db *gorm.DB
}

// NewStageTemplateRepository creates a new stage template repository
func NewStageTemplateRepository(db *gorm.DB) *StageTemplateRepository {
	return &StageTemplateRepository{db: db}
}

// Create creates a new stage template
func (r *StageTemplateRepository) Create(template *models.StageTemplate) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a stage template by ID
func (r *StageTemplateRepository) GetByID(id uuid.UUID) (*models.StageTemplate, error) {
	var template models.StageTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// ListByPhase retrieves the stage templates of a phase ordered by position.
// Global templates (nil organization) are always included; org-owned
// templates only when orgID is given.
func (r *StageTemplateRepository) ListByPhase(phaseID uuid.UUID, orgID *uuid.UUID) ([]models.StageTemplate, error) {
	var templates []models.StageTemplate
	query := r.db.Where("phase_id = ?", phaseID)
	if orgID != nil {
		query = query.Where("organization_id IS NULL OR organization_id = ?", *orgID)
	} else {
		query = query.Where("organization_id IS NULL")
	}
	err := query.Order("position ASC").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// ListByIDs retrieves stage templates by their IDs ordered by position
func (r *StageTemplateRepository) ListByIDs(ids []uuid.UUID) ([]models.StageTemplate, error) {
	var templates []models.StageTemplate
	err := r.db.Where("id IN ?", ids).Order("position ASC").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}
