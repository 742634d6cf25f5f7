package repository

import (
	"time"

	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(orgID uuid.UUID, name string) (*models.Project, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// ProjectMemberRepositoryInterface defines the interface for roster operations.
// GetRoster returns active members in stable full-name order; capability
// resolution during activation relies on that ordering being deterministic.
type ProjectMemberRepositoryInterface interface {
	Create(member *models.ProjectMember) error
	GetByID(id uuid.UUID) (*models.ProjectMember, error)
	GetByProjectAndUser(projectID, userID uuid.UUID) (*models.ProjectMember, error)
	GetRoster(projectID uuid.UUID) ([]models.ProjectMember, error)
	Update(member *models.ProjectMember) error
	Delete(id uuid.UUID) error
}

// PhaseRepositoryInterface defines read access to the fixed phase catalog
type PhaseRepositoryInterface interface {
	Create(phase *models.Phase) error
	GetByID(id uuid.UUID) (*models.Phase, error)
	ListOrdered() ([]models.Phase, error)
}

// StageTemplateRepositoryInterface defines access to reusable stage blueprints
type StageTemplateRepositoryInterface interface {
	Create(template *models.StageTemplate) error
	GetByID(id uuid.UUID) (*models.StageTemplate, error)
	ListByPhase(phaseID uuid.UUID, orgID *uuid.UUID) ([]models.StageTemplate, error)
	ListByIDs(ids []uuid.UUID) ([]models.StageTemplate, error)
}

// TaskBlueprintRepositoryInterface defines access to template task definitions
type TaskBlueprintRepositoryInterface interface {
	Create(blueprint *models.TaskBlueprint) error
	GetByID(id uuid.UUID) (*models.TaskBlueprint, error)
	ListByStageTemplate(stageTemplateID uuid.UUID) ([]models.TaskBlueprint, error)
}

// ProjectPhaseStatusRepositoryInterface defines per-project phase progression state
type ProjectPhaseStatusRepositoryInterface interface {
	CreateBatch(statuses []models.ProjectPhaseStatus) error
	GetByID(id uuid.UUID) (*models.ProjectPhaseStatus, error)
	GetByProjectAndPhase(projectID, phaseID uuid.UUID) (*models.ProjectPhaseStatus, error)
	GetActiveByProject(projectID uuid.UUID) (*models.ProjectPhaseStatus, error)
	NextLocked(projectID uuid.UUID, afterOrder int) (*models.ProjectPhaseStatus, error)
	ListByProject(projectID uuid.UUID) ([]models.ProjectPhaseStatus, error)
	CountByProject(projectID uuid.UUID) (int64, error)
	Update(status *models.ProjectPhaseStatus) error
}

// ProjectStageRepositoryInterface defines per-project sub-stage state.
// GetByIDForUpdate takes a row lock on the stage being transitioned so
// concurrent activations or completions serialize instead of double-firing.
type ProjectStageRepositoryInterface interface {
	Create(stage *models.ProjectStage) error
	GetByID(id uuid.UUID) (*models.ProjectStage, error)
	GetByIDForUpdate(id uuid.UUID) (*models.ProjectStage, error)
	ExistsForTemplateStage(projectID, templateStageID uuid.UUID) (bool, error)
	MaxOrderIndex(projectID, phaseID uuid.UUID) (int, error)
	NextLockedInPhase(projectID, phaseID uuid.UUID, afterOrder int) (*models.ProjectStage, error)
	FirstLockedInPhase(projectID, phaseID uuid.UUID) (*models.ProjectStage, error)
	ActiveExistsInPhase(projectID, phaseID uuid.UUID) (bool, error)
	ListActiveIDs() ([]uuid.UUID, error)
	ListByProject(projectID uuid.UUID) ([]models.ProjectStage, error)
	Update(stage *models.ProjectStage) error
	Delete(id uuid.UUID) error
}

// TaskRepositoryInterface defines task persistence used by the materializer
// and the completion advancer
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	CreateBatch(tasks []models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	ListByStage(stageID uuid.UUID) ([]models.Task, error)
	ListByProject(projectID uuid.UUID, limit, offset int) ([]models.Task, int64, error)
	CountNonTerminal(stageID uuid.UUID, terminal []models.TaskStatus) (int64, error)
	UpdateDeadline(taskID uuid.UUID, deadline time.Time) error
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}
