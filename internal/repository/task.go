package repository

import (
	"time"

	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// CreateBatch inserts materialized tasks in one statement so a failed
// activation leaves no partial task set behind.
func (r *TaskRepository) CreateBatch(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Create(&tasks).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByStage retrieves the tasks of a stage ordered by creation time. For
// manual stages this is the materialization order.
func (r *TaskRepository) ListByStage(stageID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("project_stage_id = ?", stageID).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByProject retrieves all tasks of a project with pagination
func (r *TaskRepository) ListByProject(projectID uuid.UUID, limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	query := r.db.Model(&models.Task{}).Where("project_id = ?", projectID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// CountNonTerminal counts the stage's tasks whose status is outside the
// terminal set. Zero means the stage may be completed.
func (r *TaskRepository) CountNonTerminal(stageID uuid.UUID, terminal []models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("project_stage_id = ? AND status NOT IN ?", stageID, terminal).
		Count(&count).Error
	return count, err
}

// UpdateDeadline sets a task's deadline in place. Used for manual stages
// whose tasks already exist at activation time.
func (r *TaskRepository) UpdateDeadline(taskID uuid.UUID, deadline time.Time) error {
	return r.db.Model(&models.Task{}).Where("id = ?", taskID).Update("deadline", deadline).Error
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}
