package handlers

import (
	"net/http"

	"project-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoadmapHandler handles HTTP requests for the stage progression engine
type RoadmapHandler struct {
	roadmapService *service.RoadmapService
}

// NewRoadmapHandler creates a new roadmap handler
func NewRoadmapHandler(roadmapService *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
	}
}

// BootstrapProject handles POST /projects/:id/roadmap/bootstrap
// @Summary Bootstrap a project roadmap
// @Description Create the per-project phase progression rows, activating the first phase
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 201 {object} service.BootstrapResponse "Roadmap bootstrapped"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/roadmap/bootstrap [post]
func (h *RoadmapHandler) BootstrapProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	resp, err := h.roadmapService.BootstrapProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if resp.AlreadyBootstrapped {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// AttachTemplates handles POST /projects/:id/roadmap/attach
// @Summary Attach stage templates to a project
// @Description Copy stage templates into locked project stages; idempotent per template
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param request body service.AttachTemplatesRequest true "Templates to attach"
// @Success 200 {object} service.AttachTemplatesResponse "Templates attached"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project, phase or template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/roadmap/attach [post]
func (h *RoadmapHandler) AttachTemplates(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.AttachTemplatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.roadmapService.AttachTemplates(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActivateStage handles POST /stages/:id/activate
// @Summary Activate a locked stage
// @Description Transition the stage to active and materialize its tasks with waterfall deadlines
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Stage ID (UUID)"
// @Success 200 {object} service.AdvanceResult "Stage activated (or already active)"
// @Failure 400 {object} ErrorResponse "Invalid stage ID"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Failure 409 {object} ErrorResponse "Invalid transition or concurrent modification"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stages/{id}/activate [post]
func (h *RoadmapHandler) ActivateStage(c *gin.Context) {
	stageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage ID"})
		return
	}

	result, err := h.roadmapService.ActivateStage(stageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CompleteStage handles POST /stages/:id/complete
// @Summary Complete an active stage
// @Description Complete the stage and advance the roadmap to the next stage or phase
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Stage ID (UUID)"
// @Success 200 {object} service.AdvanceResult "Stage completed; result says what advanced"
// @Failure 400 {object} ErrorResponse "Invalid stage ID"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Failure 409 {object} ErrorResponse "Tasks unfinished, invalid transition, or concurrent modification"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stages/{id}/complete [post]
func (h *RoadmapHandler) CompleteStage(c *gin.Context) {
	stageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage ID"})
		return
	}

	result, err := h.roadmapService.CompleteStage(stageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TasksTerminal handles GET /stages/:id/tasks-terminal
// @Summary Check whether a stage can be completed
// @Description Report whether every task under the stage reached a terminal status
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Stage ID (UUID)"
// @Success 200 {object} map[string]bool "Terminal check result"
// @Failure 400 {object} ErrorResponse "Invalid stage ID"
// @Failure 404 {object} ErrorResponse "Stage not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stages/{id}/tasks-terminal [get]
func (h *RoadmapHandler) TasksTerminal(c *gin.Context) {
	stageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage ID"})
		return
	}

	terminal, err := h.roadmapService.AllTasksTerminal(stageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"all_tasks_terminal": terminal})
}

// GetRoadmap handles GET /projects/:id/roadmap
// @Summary Get a project roadmap snapshot
// @Description Phases, stages, and tasks of a project with statuses and deadlines
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.RoadmapSnapshot "Roadmap snapshot"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/roadmap [get]
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	snapshot, err := h.roadmapService.GetRoadmapSnapshot(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// CreateStage handles POST /projects/:id/stages
// @Summary Create a manual stage
// @Description Append a locked, template-less stage to a project phase
// @Tags roadmap
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param stage body service.CreateStageRequest true "Stage data"
// @Success 201 {object} models.ProjectStage "Stage created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project or phase not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/stages [post]
func (h *RoadmapHandler) CreateStage(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stage, err := h.roadmapService.CreateManualStage(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stage)
}
