package client

import (
	"context"
	"net/http"
	"net/url"
)

// CreateCommentParams holds the fields for a new comment. IssueID and
// CommentText are required.
type CreateCommentParams struct {
	IssueID         string
	CommentText     string
	ActionTaken     string
	SolutionSummary string
	CreatedBy       string
}

// ListComments returns the comments of one issue, oldest first. Results
// are cached briefly per issue.
func (c *Client) ListComments(ctx context.Context, issueID string) ([]Comment, error) {
	cacheKey := commentsCacheKeyBase + issueID

	var cached []Comment
	if c.cacheGet(cacheKey, &cached) {
		return cached, nil
	}

	var wire []wireComment
	if err := c.get(ctx, "/api/comments/"+url.PathEscape(issueID), &wire); err != nil {
		return nil, err
	}
	comments := make([]Comment, 0, len(wire))
	for i := range wire {
		comments = append(comments, wire[i].toComment())
	}
	c.cacheSet(cacheKey, comments)
	return comments, nil
}

// CreateComment adds a comment to an issue
func (c *Client) CreateComment(ctx context.Context, params CreateCommentParams) (*Comment, error) {
	body := map[string]interface{}{
		"issue_id":         params.IssueID,
		"comment_text":     params.CommentText,
		"action_taken":     params.ActionTaken,
		"solution_summary": params.SolutionSummary,
		"created_by":       params.CreatedBy,
	}

	var wire wireComment
	if err := c.do(ctx, http.MethodPost, "/api/comments", body, &wire); err != nil {
		return nil, err
	}
	c.cache.Delete(commentsCacheKeyBase + params.IssueID)
	comment := wire.toComment()
	return &comment, nil
}
