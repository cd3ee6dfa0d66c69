package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issue-tracker-api/internal/dto"
	"issue-tracker-api/internal/response"
	"issue-tracker-api/internal/service"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments handles GET /api/comments/:issueId
func (h *CommentHandler) ListComments(c *gin.Context) {
	issueID := c.Param("issueId")

	comments, err := h.commentService.ListComments(c.Request.Context(), issueID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendJSON(c, http.StatusOK, comments)
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendJSON(c, http.StatusOK, comment)
}
