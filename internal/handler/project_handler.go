package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issue-tracker-api/internal/response"
	"issue-tracker-api/internal/service"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendJSON(c, http.StatusOK, projects)
}
