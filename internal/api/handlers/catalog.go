package handlers

import (
	"net/http"

	"project-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles HTTP requests for the template catalog
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListPhases handles GET /phases
// @Summary List catalog phases
// @Description Get the fixed phase catalog ordered by index
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Phase "Phases in roadmap order"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phases [get]
func (h *CatalogHandler) ListPhases(c *gin.Context) {
	phases, err := h.catalogService.ListPhases()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, phases)
}

// CreatePhase handles POST /phases
// @Summary Create a catalog phase
// @Description Add a phase to the fixed catalog (administration)
// @Tags catalog
// @Accept json
// @Produce json
// @Param phase body service.CreatePhaseRequest true "Phase data"
// @Success 201 {object} models.Phase "Phase created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phases [post]
func (h *CatalogHandler) CreatePhase(c *gin.Context) {
	var req service.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phase, err := h.catalogService.CreatePhase(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, phase)
}

// ListStageTemplates handles GET /phases/:id/stage-templates
// @Summary List stage templates of a phase
// @Description Get a phase's stage templates ordered by position
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Phase ID (UUID)"
// @Param organization_id query string false "Organization scope (UUID)"
// @Success 200 {array} models.StageTemplate "Stage templates"
// @Failure 400 {object} ErrorResponse "Invalid phase ID"
// @Failure 404 {object} ErrorResponse "Phase not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /phases/{id}/stage-templates [get]
func (h *CatalogHandler) ListStageTemplates(c *gin.Context) {
	phaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase ID"})
		return
	}

	var orgID *uuid.UUID
	if raw := c.Query("organization_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
			return
		}
		orgID = &parsed
	}

	templates, err := h.catalogService.ListStageTemplates(phaseID, orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateStageTemplate handles POST /stage-templates
// @Summary Create a stage template
// @Description Add a reusable stage template under a phase
// @Tags catalog
// @Accept json
// @Produce json
// @Param template body service.CreateStageTemplateRequest true "Template data"
// @Success 201 {object} models.StageTemplate "Template created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Phase not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stage-templates [post]
func (h *CatalogHandler) CreateStageTemplate(c *gin.Context) {
	var req service.CreateStageTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.catalogService.CreateStageTemplate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

// ListTaskBlueprints handles GET /stage-templates/:id/task-blueprints
// @Summary List task blueprints of a stage template
// @Description Get a stage template's task blueprints ordered by index
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Stage template ID (UUID)"
// @Success 200 {array} models.TaskBlueprint "Task blueprints"
// @Failure 400 {object} ErrorResponse "Invalid template ID"
// @Failure 404 {object} ErrorResponse "Stage template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stage-templates/{id}/task-blueprints [get]
func (h *CatalogHandler) ListTaskBlueprints(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage template ID"})
		return
	}

	blueprints, err := h.catalogService.ListTaskBlueprints(templateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blueprints)
}

// CreateTaskBlueprint handles POST /task-blueprints
// @Summary Create a task blueprint
// @Description Add a task blueprint under a stage template
// @Tags catalog
// @Accept json
// @Produce json
// @Param blueprint body service.CreateTaskBlueprintRequest true "Blueprint data"
// @Success 201 {object} models.TaskBlueprint "Blueprint created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Stage template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /task-blueprints [post]
func (h *CatalogHandler) CreateTaskBlueprint(c *gin.Context) {
	var req service.CreateTaskBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blueprint, err := h.catalogService.CreateTaskBlueprint(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blueprint)
}
