package dto

import (
	"time"

	"issue-tracker-api/internal/domain"
)

// CreateCommentRequest represents the request to create a new comment
type CreateCommentRequest struct {
	IssueID         string `json:"issue_id"`
	CommentText     string `json:"comment_text"`
	ActionTaken     string `json:"action_taken"`
	SolutionSummary string `json:"solution_summary"`
	CreatedBy       string `json:"created_by"`
}

// CommentResponse is the wire form of a comment
type CommentResponse struct {
	ID              string    `json:"id"`
	IssueID         string    `json:"issue_id"`
	CommentText     string    `json:"comment_text"`
	ActionTaken     string    `json:"action_taken,omitempty"`
	SolutionSummary string    `json:"solution_summary,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToCommentResponse converts a domain comment to its wire form
func ToCommentResponse(comment *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:              comment.ID,
		IssueID:         comment.IssueID,
		CommentText:     comment.CommentText,
		ActionTaken:     comment.ActionTaken,
		SolutionSummary: comment.SolutionSummary,
		CreatedBy:       comment.CreatedBy,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
	}
}

// ToCommentResponses converts a slice of domain comments
func ToCommentResponses(comments []*domain.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, ToCommentResponse(comment))
	}
	return out
}
