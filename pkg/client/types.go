package client

import (
	"errors"
	"strings"
	"time"
)

// ErrListElementComma is returned when a label or attachment element
// contains a comma. Commas separate elements on the wire, so an element
// containing one would silently split on the next read.
var ErrListElementComma = errors.New("list elements must not contain commas")

// Issue is the client-side form of an issue. List fields are real slices;
// the comma-joined wire encoding stays inside the client.
type Issue struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Type             string     `json:"type"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	Assignee         string     `json:"assignee,omitempty"`
	ReportedBy       string     `json:"reportedBy,omitempty"`
	Project          string     `json:"project,omitempty"`
	Environment      string     `json:"environment,omitempty"`
	Labels           []string   `json:"labels,omitempty"`
	Sprint           string     `json:"sprint,omitempty"`
	EpicLink         string     `json:"epicLink,omitempty"`
	StepsToReproduce string     `json:"stepsToReproduce,omitempty"`
	ActualResult     string     `json:"actualResult,omitempty"`
	ExpectedResult   string     `json:"expectedResult,omitempty"`
	Attachments      []string   `json:"attachments,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	StatusDate       time.Time  `json:"statusDate"`
	RaisedDate       *time.Time `json:"raisedDate,omitempty"`
	ClosedDate       *time.Time `json:"closedDate,omitempty"`
}

// Project is the client-side form of a project
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	UserRole    string    `json:"userRole,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment is the client-side form of a comment
type Comment struct {
	ID              string    `json:"id"`
	IssueID         string    `json:"issueId"`
	CommentText     string    `json:"commentText"`
	ActionTaken     string    `json:"actionTaken,omitempty"`
	SolutionSummary string    `json:"solutionSummary,omitempty"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// wireIssue mirrors the API's snake_case issue payload
type wireIssue struct {
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
	RaisedDate       *time.Time `json:"raised_date,omitempty"`
	ClosedDate       *time.Time `json:"closed_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	StatusDate       time.Time  `json:"status_date"`
}

func (w *wireIssue) toIssue() Issue {
	return Issue{
		ID:               w.ID,
		Title:            w.Title,
		Description:      w.Description,
		Type:             w.Type,
		Priority:         w.Priority,
		Status:           w.Status,
		Assignee:         w.Assignee,
		ReportedBy:       w.ReportedBy,
		Project:          w.Project,
		Environment:      w.Environment,
		Labels:           splitWireList(w.Labels),
		Sprint:           w.Sprint,
		EpicLink:         w.EpicLink,
		StepsToReproduce: w.StepsToReproduce,
		ActualResult:     w.ActualResult,
		ExpectedResult:   w.ExpectedResult,
		Attachments:      splitWireList(w.Attachments),
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
		StatusDate:       w.StatusDate,
		RaisedDate:       w.RaisedDate,
		ClosedDate:       w.ClosedDate,
	}
}

// wireProject mirrors the API's snake_case project payload
type wireProject struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	UserRole    string    `json:"user_role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (w *wireProject) toProject() Project {
	return Project{
		ID:          w.ID,
		Name:        w.Name,
		Code:        w.Code,
		Description: w.Description,
		UserRole:    w.UserRole,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// wireComment mirrors the API's snake_case comment payload
type wireComment struct {
	ID              string    `json:"id"`
	IssueID         string    `json:"issue_id"`
	CommentText     string    `json:"comment_text"`
	ActionTaken     string    `json:"action_taken,omitempty"`
	SolutionSummary string    `json:"solution_summary,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (w *wireComment) toComment() Comment {
	return Comment{
		ID:              w.ID,
		IssueID:         w.IssueID,
		CommentText:     w.CommentText,
		ActionTaken:     w.ActionTaken,
		SolutionSummary: w.SolutionSummary,
		CreatedBy:       w.CreatedBy,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func splitWireList(joined string) []string {
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

// joinWireList encodes a slice for the wire, refusing elements that would
// corrupt the encoding
func joinWireList(values []string) (string, error) {
	for _, v := range values {
		if strings.Contains(v, ",") {
			return "", ErrListElementComma
		}
	}
	return strings.Join(values, ","), nil
}
