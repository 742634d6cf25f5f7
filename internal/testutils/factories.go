package testutils

import (
	"time"

	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
		Description: "A test organization for testing purposes",
		Domain:      id.String()[:8] + ".test.com",
		Metadata:    nil,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name + " Display Name"
	return org
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "test-project",
		DisplayName:    "Test Project",
		Description:    "A test project for testing purposes",
		ClientName:     "Test Client",
		Status:         models.ProjectStatusActive,
		Metadata:       nil,
	}
}

// WithOrganization sets the organization ID for the project
func (f *ProjectFactory) WithOrganization(orgID uuid.UUID) *models.Project {
	project := f.Create()
	project.OrganizationID = orgID
	return project
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	project.DisplayName = name + " Project"
	return project
}

// MemberFactory provides methods to create test ProjectMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test ProjectMember with default values
func (f *MemberFactory) Create() *models.ProjectMember {
	id := uuid.New()
	return &models.ProjectMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		ProjectID:      uuid.New(),
		UserID:         uuid.New(),
		FullName:       "John Doe",
		Email:          "john.doe+" + id.String()[:6] + "@test.com",
		Role:           "Editor",
		IsActive:       true,
	}
}

// WithProject sets the project and organization IDs for the member
func (f *MemberFactory) WithProject(project *models.Project) *models.ProjectMember {
	member := f.Create()
	member.OrganizationID = project.OrganizationID
	member.ProjectID = project.ID
	return member
}

// WithRole sets the capability role for the member
func (f *MemberFactory) WithRole(role string) *models.ProjectMember {
	member := f.Create()
	member.Role = role
	return member
}

// PhaseFactory provides methods to create test Phase data
type PhaseFactory struct{}

// NewPhaseFactory creates a new PhaseFactory
func NewPhaseFactory() *PhaseFactory {
	return &PhaseFactory{}
}

// Create creates a test Phase with default values
func (f *PhaseFactory) Create() *models.Phase {
	id := uuid.New()
	return &models.Phase{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "phase-" + id.String()[:8],
		Title:       "Test Phase",
		Description: "A test phase for testing purposes",
		OrderIndex:  0,
		Color:       "#4287f5",
	}
}

// WithOrder sets the order index (and a name unique per index)
func (f *PhaseFactory) WithOrder(orderIndex int) *models.Phase {
	phase := f.Create()
	phase.OrderIndex = orderIndex
	return phase
}

// StageTemplateFactory provides methods to create test StageTemplate data
type StageTemplateFactory struct{}

// NewStageTemplateFactory creates a new StageTemplateFactory
func NewStageTemplateFactory() *StageTemplateFactory {
	return &StageTemplateFactory{}
}

// Create creates a test StageTemplate with default values
func (f *StageTemplateFactory) Create() *models.StageTemplate {
	return &models.StageTemplate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PhaseID:      uuid.New(),
		Name:         "test-stage-template",
		Description:  "A test stage template for testing purposes",
		DurationDays: 5,
		Position:     0,
	}
}

// WithPhase sets the phase ID for the template
func (f *StageTemplateFactory) WithPhase(phaseID uuid.UUID) *models.StageTemplate {
	template := f.Create()
	template.PhaseID = phaseID
	return template
}

// WithPosition sets the catalog position for the template
func (f *StageTemplateFactory) WithPosition(position int) *models.StageTemplate {
	template := f.Create()
	template.Position = position
	return template
}

// TaskBlueprintFactory provides methods to create test TaskBlueprint data
type TaskBlueprintFactory struct{}

// NewTaskBlueprintFactory creates a new TaskBlueprintFactory
func NewTaskBlueprintFactory() *TaskBlueprintFactory {
	return &TaskBlueprintFactory{}
}

// Create creates a test TaskBlueprint with default values
func (f *TaskBlueprintFactory) Create() *models.TaskBlueprint {
	return &models.TaskBlueprint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StageTemplateID:    uuid.New(),
		Title:              "Test Task Blueprint",
		Description:        "A test task blueprint for testing purposes",
		DurationDays:       2,
		EstimatedHours:     8,
		RequiredCapability: "Editor",
		Tags:               []string{"test"},
		OrderIndex:         0,
	}
}

// WithTemplate sets the stage template ID for the blueprint
func (f *TaskBlueprintFactory) WithTemplate(templateID uuid.UUID) *models.TaskBlueprint {
	blueprint := f.Create()
	blueprint.StageTemplateID = templateID
	return blueprint
}

// WithCapability sets the required capability for the blueprint
func (f *TaskBlueprintFactory) WithCapability(capability string) *models.TaskBlueprint {
	blueprint := f.Create()
	blueprint.RequiredCapability = capability
	return blueprint
}

// ProjectStageFactory provides methods to create test ProjectStage data
type ProjectStageFactory struct{}

// NewProjectStageFactory creates a new ProjectStageFactory
func NewProjectStageFactory() *ProjectStageFactory {
	return &ProjectStageFactory{}
}

// Create creates a test ProjectStage with default values
func (f *ProjectStageFactory) Create() *models.ProjectStage {
	return &models.ProjectStage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		ProjectID:      uuid.New(),
		PhaseID:        uuid.New(),
		Name:           "test-stage",
		Description:    "A test stage for testing purposes",
		Status:         models.StageStatusLocked,
		OrderIndex:     0,
		DurationDays:   5,
	}
}

// WithProject sets the project, organization and phase for the stage
func (f *ProjectStageFactory) WithProject(project *models.Project, phaseID uuid.UUID) *models.ProjectStage {
	stage := f.Create()
	stage.OrganizationID = project.OrganizationID
	stage.ProjectID = project.ID
	stage.PhaseID = phaseID
	return stage
}

// WithStatus sets the progression status for the stage
func (f *ProjectStageFactory) WithStatus(status models.StageStatus) *models.ProjectStage {
	stage := f.Create()
	stage.Status = status
	return stage
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:     uuid.New(),
		ProjectID:          uuid.New(),
		Title:              "Test Task",
		Description:        "A test task for testing purposes",
		Status:             models.TaskStatusToDo,
		DurationDays:       2,
		EstimatedHours:     8,
		RequiredCapability: "Editor",
		Tags:               []string{"test"},
	}
}

// WithStage sets the stage, project and organization for the task
func (f *TaskFactory) WithStage(stage *models.ProjectStage) *models.Task {
	task := f.Create()
	task.OrganizationID = stage.OrganizationID
	task.ProjectID = stage.ProjectID
	task.ProjectStageID = &stage.ID
	return task
}

// WithStatus sets the execution status for the task
func (f *TaskFactory) WithStatus(status models.TaskStatus) *models.Task {
	task := f.Create()
	task.Status = status
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization  *OrganizationFactory
	Project       *ProjectFactory
	Member        *MemberFactory
	Phase         *PhaseFactory
	StageTemplate *StageTemplateFactory
	TaskBlueprint *TaskBlueprintFactory
	ProjectStage  *ProjectStageFactory
	Task          *TaskFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:  NewOrganizationFactory(),
		Project:       NewProjectFactory(),
		Member:        NewMemberFactory(),
		Phase:         NewPhaseFactory(),
		StageTemplate: NewStageTemplateFactory(),
		TaskBlueprint: NewTaskBlueprintFactory(),
		ProjectStage:  NewProjectStageFactory(),
		Task:          NewTaskFactory(),
	}
}

// CreateRoadmapFixture creates an organization with a project, a roster
// member and a two-phase catalog where the first phase has one templated
// stage with a single blueprint.
func (fs *FactorySet) CreateRoadmapFixture() (*models.Organization, *models.Project, *models.ProjectMember, []*models.Phase, *models.StageTemplate, *models.TaskBlueprint) {
	org := fs.Organization.Create()

	project := fs.Project.WithOrganization(org.ID)

	member := fs.Member.WithProject(project)

	first := fs.Phase.WithOrder(0)
	second := fs.Phase.WithOrder(1)

	template := fs.StageTemplate.WithPhase(first.ID)
	blueprint := fs.TaskBlueprint.WithTemplate(template.ID)

	return org, project, member, []*models.Phase{first, second}, template, blueprint
}
