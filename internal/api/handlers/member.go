package handlers

import (
	"net/http"

	"project-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for project roster operations
type MemberHandler struct {
	memberService *service.ProjectMemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.ProjectMemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// AddMember handles POST /projects/:id/members
// @Summary Add a member to a project roster
// @Description Add a team member with a capability role to a project's roster
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} models.ProjectMember "Member added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Member already on roster"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Add(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetRoster handles GET /projects/:id/members
// @Summary Get project roster
// @Description Get a project's active members ordered by full name
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.ProjectMember "Roster"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/members [get]
func (h *MemberHandler) GetRoster(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	members, err := h.memberService.GetRoster(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// RemoveMember handles DELETE /members/:id
// @Summary Remove a roster member
// @Description Remove a roster entry by its ID
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	if err := h.memberService.Remove(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
