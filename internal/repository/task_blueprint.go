package repository

import (
	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskBlueprintRepository handles database operations for task blueprints
type TaskBlueprintRepository struct {
	db *gorm.DB
}

// NewTaskBlueprintRepository creates a new task blueprint repository
func NewTaskBlueprintRepository(db *gorm.DB) *TaskBlueprintRepository {
	return &TaskBlueprintRepository{db: db}
}

// Create creates a new task blueprint
func (r *TaskBlueprintRepository) Create(blueprint *models.TaskBlueprint) error {
	return r.db.Create(blueprint).Error
}

// GetByID retrieves a task blueprint by ID
func (r *TaskBlueprintRepository) GetByID(id uuid.UUID) (*models.TaskBlueprint, error) {
	var blueprint models.TaskBlueprint
	err := r.db.First(&blueprint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blueprint, nil
}

// ListByStageTemplate retrieves the blueprints of a stage template ordered by
// index. The order drives both materialization and waterfall scheduling.
func (r *TaskBlueprintRepository) ListByStageTemplate(stageTemplateID uuid.UUID) ([]models.TaskBlueprint, error) {
	var blueprints []models.TaskBlueprint
	err := r.db.
		Where("stage_template_id = ?", stageTemplateID).
		Order("order_index ASC").
		Find(&blueprints).Error
	if err != nil {
		return nil, err
	}
	return blueprints, nil
}
