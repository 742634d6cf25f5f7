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

// TaskService handles business logic for tasks outside the activation path:
// manual creation (for template-less stages and unbound tasks) and status
// changes coming from the external task-tracking flow.
type TaskService struct {
	repo        repository.TaskRepositoryInterface
	stageRepo   repository.ProjectStageRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(
	repo repository.TaskRepositoryInterface,
	stageRepo repository.ProjectStageRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	validate *validator.Validate,
) *TaskService {
	return &TaskService{repo: repo, stageRepo: stageRepo, projectRepo: projectRepo, validator: validate}
}

// CreateTaskRequest represents the request to create a task manually
type CreateTaskRequest struct {
	ProjectID          uuid.UUID  `json:"project_id" validate:"required"`
	ProjectStageID     *uuid.UUID `json:"project_stage_id,omitempty"`
	Title              string     `json:"title" validate:"required,min=1,max=250"`
	Description        string     `json:"description,omitempty"`
	DurationDays       int        `json:"duration_days" validate:"min=0"`
	EstimatedHours     float64    `json:"estimated_hours" validate:"min=0"`
	RequiredCapability string     `json:"required_capability,omitempty" validate:"max=100"`
	AssigneeID         *uuid.UUID `json:"assignee_id,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
}

// Create creates a task. Tasks may only be added to locked stages: once a
// stage is active its task set is fixed by the materializer.
func (s *TaskService) Create(req *CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.projectRepo.GetByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	if req.ProjectStageID != nil {
		stage, err := s.stageRepo.GetByID(*req.ProjectStageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProjectStageNotFound
			}
			return nil, err
		}
		if stage.Status != models.StageStatusLocked {
			return nil, apperrors.NewInvalidTransitionError(
				"project stage", string(stage.Status), "add task to",
				"tasks can only be staged before activation")
		}
	}

	task := &models.Task{
		OrganizationID:     project.OrganizationID,
		ProjectID:          req.ProjectID,
		ProjectStageID:     req.ProjectStageID,
		Title:              req.Title,
		Description:        req.Description,
		Status:             models.TaskStatusToDo,
		DurationDays:       req.DurationDays,
		EstimatedHours:     req.EstimatedHours,
		RequiredCapability: req.RequiredCapability,
		AssigneeID:         req.AssigneeID,
		Tags:               req.Tags,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(id uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListByProject retrieves a project's tasks with pagination
func (s *TaskService) ListByProject(projectID uuid.UUID, page, pageSize int) ([]models.Task, int64, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	return s.repo.ListByProject(projectID, pageSize, (page-1)*pageSize)
}

// UpdateStatusRequest changes a task's execution status
type UpdateStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required"`
}

// UpdateStatus updates the task's status. Deadlines and assignment are not
// recomputed here: rescheduling is an explicit separate concern.
func (s *TaskService) UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	task.Status = req.Status
	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return task, nil
}

// Delete removes a task
func (s *TaskService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
