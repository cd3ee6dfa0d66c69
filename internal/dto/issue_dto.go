package dto

import (
	"strings"
	"time"

	"issue-tracker-api/internal/domain"
)

// CreateIssueRequest represents the request to create a new issue.
// Labels and attachments arrive as comma-joined strings, matching the
// wire format the board UI sends.
type CreateIssueRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Type             string     `json:"type"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	Assignee         string     `json:"assignee"`
	ReportedBy       string     `json:"reported_by"`
	Project          string     `json:"project"`
	Environment      string     `json:"environment"`
	Labels           string     `json:"labels"`
	Sprint           string     `json:"sprint"`
	EpicLink         string     `json:"epic_link"`
	StepsToReproduce string     `json:"steps_to_reproduce"`
	ActualResult     string     `json:"actual_result"`
	ExpectedResult   string     `json:"expected_result"`
	Attachments      string     `json:"attachments"`
	RaisedDate       *time.Time `json:"raised_date"`
}

// UpdateIssueRequest represents a partial update. Only fields present in
// the request body are merged over the stored record.
type UpdateIssueRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Type             *string    `json:"type"`
	Priority         *string    `json:"priority"`
	Status           *string    `json:"status"`
	Assignee         *string    `json:"assignee"`
	ReportedBy       *string    `json:"reported_by"`
	Project          *string    `json:"project"`
	Environment      *string    `json:"environment"`
	Labels           *string    `json:"labels"`
	Sprint           *string    `json:"sprint"`
	EpicLink         *string    `json:"epic_link"`
	StepsToReproduce *string    `json:"steps_to_reproduce"`
	ActualResult     *string    `json:"actual_result"`
	ExpectedResult   *string    `json:"expected_result"`
	Attachments      *string    `json:"attachments"`
	RaisedDate       *time.Time `json:"raised_date"`
	ClosedDate       *time.Time `json:"closed_date"`
}

// IssueResponse is the wire form of an issue
type IssueResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Type             string     `json:"type"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	Assignee         string     `json:"assignee,omitempty"`
	ReportedBy       string     `json:"reported_by,omitempty"`
	Project          string     `json:"project,omitempty"`
	Environment      string     `json:"environment,omitempty"`
	Labels           string     `json:"labels,omitempty"`
	Sprint           string     `json:"sprint,omitempty"`
	EpicLink         string     `json:"epic_link,omitempty"`
	StepsToReproduce string     `json:"steps_to_reproduce,omitempty"`
	ActualResult     string     `json:"actual_result,omitempty"`
	ExpectedResult   string     `json:"expected_result,omitempty"`
	Attachments      string     `json:"attachments,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	StatusDate       time.Time  `json:"status_date"`
	RaisedDate       *time.Time `json:"raised_date,omitempty"`
	ClosedDate       *time.Time `json:"closed_date,omitempty"`
}

// ToIssueResponse converts a domain issue to its wire form
func ToIssueResponse(issue *domain.Issue) *IssueResponse {
	return &IssueResponse{
		ID:               issue.ID,
		Title:            issue.Title,
		Description:      issue.Description,
		Type:             string(issue.Type),
		Priority:         string(issue.Priority),
		Status:           string(issue.Status),
		Assignee:         issue.Assignee,
		ReportedBy:       issue.ReportedBy,
		Project:          issue.Project,
		Environment:      issue.Environment,
		Labels:           JoinList(issue.Labels),
		Sprint:           issue.Sprint,
		EpicLink:         issue.EpicLink,
		StepsToReproduce: issue.StepsToReproduce,
		ActualResult:     issue.ActualResult,
		ExpectedResult:   issue.ExpectedResult,
		Attachments:      JoinList(issue.Attachments),
		CreatedAt:        issue.CreatedAt,
		UpdatedAt:        issue.UpdatedAt,
		StatusDate:       issue.StatusDate,
		RaisedDate:       issue.RaisedDate,
		ClosedDate:       issue.ClosedDate,
	}
}

// ToIssueResponses converts a slice of domain issues
func ToIssueResponses(issues []*domain.Issue) []*IssueResponse {
	out := make([]*IssueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, ToIssueResponse(issue))
	}
	return out
}

// SplitList parses a comma-joined wire value into a list of elements.
// Empty elements are dropped and surrounding whitespace is trimmed.
func SplitList(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinList renders a list field in its comma-joined wire form
func JoinList(values []string) string {
	return strings.Join(values, ",")
}
