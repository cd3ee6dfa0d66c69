package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// CreateIssueParams holds the fields for a new issue. Title is required;
// type, priority and status fall back to server defaults when empty.
type CreateIssueParams struct {
	Title            string
	Description      string
	Type             string
	Priority         string
	Status           string
	Assignee         string
	ReportedBy       string
	Project          string
	Environment      string
	Labels           []string
	Sprint           string
	EpicLink         string
	StepsToReproduce string
	ActualResult     string
	ExpectedResult   string
	Attachments      []string
	RaisedDate       *time.Time
}

// UpdateIssueParams holds a partial issue update. Nil fields are left
// untouched on the server.
type UpdateIssueParams struct {
	Title            *string
	Description      *string
	Type             *string
	Priority         *string
	Status           *string
	Assignee         *string
	ReportedBy       *string
	Project          *string
	Environment      *string
	Labels           []string
	Sprint           *string
	EpicLink         *string
	StepsToReproduce *string
	ActualResult     *string
	ExpectedResult   *string
	Attachments      []string
	RaisedDate       *time.Time
	ClosedDate       *time.Time
}

// ListIssues returns all issues, newest first. Results are cached briefly;
// any write through this client invalidates the cache.
func (c *Client) ListIssues(ctx context.Context) ([]Issue, error) {
	var cached []Issue
	if c.cacheGet(issuesCacheKey, &cached) {
		return cached, nil
	}

	var wire []wireIssue
	if err := c.get(ctx, "/api/issues", &wire); err != nil {
		return nil, err
	}
	issues := make([]Issue, 0, len(wire))
	for i := range wire {
		issues = append(issues, wire[i].toIssue())
	}
	c.cacheSet(issuesCacheKey, issues)
	return issues, nil
}

// CreateIssue creates a new issue
func (c *Client) CreateIssue(ctx context.Context, params CreateIssueParams) (*Issue, error) {
	labels, err := joinWireList(params.Labels)
	if err != nil {
		return nil, err
	}
	attachments, err := joinWireList(params.Attachments)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"title":              params.Title,
		"description":        params.Description,
		"type":               params.Type,
		"priority":           params.Priority,
		"status":             params.Status,
		"assignee":           params.Assignee,
		"reported_by":        params.ReportedBy,
		"project":            params.Project,
		"environment":        params.Environment,
		"labels":             labels,
		"sprint":             params.Sprint,
		"epic_link":          params.EpicLink,
		"steps_to_reproduce": params.StepsToReproduce,
		"actual_result":      params.ActualResult,
		"expected_result":    params.ExpectedResult,
		"attachments":        attachments,
	}
	if params.RaisedDate != nil {
		body["raised_date"] = params.RaisedDate
	}

	var wire wireIssue
	if err := c.do(ctx, http.MethodPost, "/api/issues", body, &wire); err != nil {
		return nil, err
	}
	c.cache.Delete(issuesCacheKey)
	issue := wire.toIssue()
	return &issue, nil
}

// UpdateIssue applies a partial update to an issue
func (c *Client) UpdateIssue(ctx context.Context, id string, params UpdateIssueParams) (*Issue, error) {
	body := map[string]interface{}{}
	setIfPresent := func(key string, value *string) {
		if value != nil {
			body[key] = *value
		}
	}
	setIfPresent("title", params.Title)
	setIfPresent("description", params.Description)
	setIfPresent("type", params.Type)
	setIfPresent("priority", params.Priority)
	setIfPresent("status", params.Status)
	setIfPresent("assignee", params.Assignee)
	setIfPresent("reported_by", params.ReportedBy)
	setIfPresent("project", params.Project)
	setIfPresent("environment", params.Environment)
	setIfPresent("sprint", params.Sprint)
	setIfPresent("epic_link", params.EpicLink)
	setIfPresent("steps_to_reproduce", params.StepsToReproduce)
	setIfPresent("actual_result", params.ActualResult)
	setIfPresent("expected_result", params.ExpectedResult)

	if params.Labels != nil {
		labels, err := joinWireList(params.Labels)
		if err != nil {
			return nil, err
		}
		body["labels"] = labels
	}
	if params.Attachments != nil {
		attachments, err := joinWireList(params.Attachments)
		if err != nil {
			return nil, err
		}
		body["attachments"] = attachments
	}
	if params.RaisedDate != nil {
		body["raised_date"] = params.RaisedDate
	}
	if params.ClosedDate != nil {
		body["closed_date"] = params.ClosedDate
	}

	var wire wireIssue
	if err := c.do(ctx, http.MethodPut, "/api/issues/"+url.PathEscape(id), body, &wire); err != nil {
		return nil, err
	}
	c.cache.Delete(issuesCacheKey)
	issue := wire.toIssue()
	return &issue, nil
}

// DeleteIssue removes an issue and its comments
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/issues/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Delete(issuesCacheKey)
	c.cache.Delete(commentsCacheKeyBase + id)
	return nil
}
