package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issue-tracker-api/internal/dto"
	"issue-tracker-api/internal/response"
	"issue-tracker-api/internal/service"
)

// IssueHandler handles issue-related HTTP requests
type IssueHandler struct {
	issueService service.IssueService
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// ListIssues handles GET /api/issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	issues, err := h.issueService.ListIssues(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendJSON(c, http.StatusOK, issues)
}

// CreateIssue handles POST /api/issues
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	issue, err := h.issueService.CreateIssue(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendJSON(c, http.StatusOK, issue)
}

// UpdateIssue handles PUT /api/issues/:id
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	issue, err := h.issueService.UpdateIssue(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendJSON(c, http.StatusOK, issue)
}

// DeleteIssue handles DELETE /api/issues/:id
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	id := c.Param("id")

	if err := h.issueService.DeleteIssue(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendJSON(c, http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}
