package xlsx

import (
	"context"
	"sort"
	"time"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/repository"
)

var issueHeaders = []string{
	"id", "title", "description", "type", "priority", "status",
	"assignee", "reported_by", "project", "environment", "labels",
	"sprint", "epic_link", "steps_to_reproduce", "actual_result",
	"expected_result", "attachments", "created_at", "updated_at",
	"status_date", "raised_date", "closed_date",
}

// issueRepository is the workbook implementation of repository.IssueRepository
type issueRepository struct {
	store *Store
}

// NewIssueRepository creates a workbook-backed issue repository
func NewIssueRepository(store *Store) repository.IssueRepository {
	return &issueRepository{store: store}
}

// List returns all issues ordered by creation time, newest first
func (r *issueRepository) List(ctx context.Context) (issues []*domain.Issue, err error) {
	start := time.Now()
	defer func() { r.store.observe("list", "issues", start, err) }()

	r.store.issuesMu.Lock()
	defer r.store.issuesMu.Unlock()

	issues, err = r.readAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})
	return issues, nil
}

// FindByID finds an issue by its ID
func (r *issueRepository) FindByID(ctx context.Context, id string) (issue *domain.Issue, err error) {
	start := time.Now()
	defer func() { r.store.observe("find", "issues", start, err) }()

	r.store.issuesMu.Lock()
	defer r.store.issuesMu.Unlock()

	issues, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for _, candidate := range issues {
		if candidate.ID == id {
			return candidate, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Create appends a new issue and rewrites the collection
func (r *issueRepository) Create(ctx context.Context, issue *domain.Issue) (err error) {
	start := time.Now()
	defer func() { r.store.observe("insert", "issues", start, err) }()

	r.store.issuesMu.Lock()
	defer r.store.issuesMu.Unlock()

	issues, err := r.readAll()
	if err != nil {
		return err
	}
	issues = append(issues, issue)
	return r.writeAll(issues)
}

// Update replaces the stored record with the given issue
func (r *issueRepository) Update(ctx context.Context, issue *domain.Issue) (err error) {
	start := time.Now()
	defer func() { r.store.observe("update", "issues", start, err) }()

	r.store.issuesMu.Lock()
	defer r.store.issuesMu.Unlock()

	issues, err := r.readAll()
	if err != nil {
		return err
	}
	for i, candidate := range issues {
		if candidate.ID == issue.ID {
			issues[i] = issue
			return r.writeAll(issues)
		}
	}
	return repository.ErrNotFound
}

// Delete hard-deletes an issue by ID
func (r *issueRepository) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { r.store.observe("delete", "issues", start, err) }()

	r.store.issuesMu.Lock()
	defer r.store.issuesMu.Unlock()

	issues, err := r.readAll()
	if err != nil {
		return err
	}
	remaining := issues[:0]
	for _, candidate := range issues {
		if candidate.ID != id {
			remaining = append(remaining, candidate)
		}
	}
	if len(remaining) == len(issues) {
		return repository.ErrNotFound
	}
	return r.writeAll(remaining)
}

func (r *issueRepository) readAll() ([]*domain.Issue, error) {
	records, err := r.store.readSheet(issuesFile)
	if err != nil {
		return nil, err
	}
	issues := make([]*domain.Issue, 0, len(records))
	for _, record := range records {
		issue, err := decodeIssue(record)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func (r *issueRepository) writeAll(issues []*domain.Issue) error {
	records := make([]map[string]string, 0, len(issues))
	for _, issue := range issues {
		records = append(records, encodeIssue(issue))
	}
	return r.store.writeSheet(issuesFile, issueHeaders, records)
}

func encodeIssue(issue *domain.Issue) map[string]string {
	record := map[string]string{
		"id":                 issue.ID,
		"title":              issue.Title,
		"description":        issue.Description,
		"type":               string(issue.Type),
		"priority":           string(issue.Priority),
		"status":             string(issue.Status),
		"assignee":           issue.Assignee,
		"reported_by":        issue.ReportedBy,
		"project":            issue.Project,
		"environment":        issue.Environment,
		"labels":             joinList(issue.Labels),
		"sprint":             issue.Sprint,
		"epic_link":          issue.EpicLink,
		"steps_to_reproduce": issue.StepsToReproduce,
		"actual_result":      issue.ActualResult,
		"expected_result":    issue.ExpectedResult,
		"attachments":        joinList(issue.Attachments),
		"created_at":         formatTime(issue.CreatedAt),
		"updated_at":         formatTime(issue.UpdatedAt),
		"status_date":        formatTime(issue.StatusDate),
	}
	if issue.RaisedDate != nil {
		record["raised_date"] = formatTime(*issue.RaisedDate)
	}
	if issue.ClosedDate != nil {
		record["closed_date"] = formatTime(*issue.ClosedDate)
	}
	return record
}

func decodeIssue(record map[string]string) (*domain.Issue, error) {
	createdAt, err := parseTime(record["created_at"])
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(record["updated_at"])
	if err != nil {
		return nil, err
	}
	statusDate, err := parseTime(record["status_date"])
	if err != nil {
		return nil, err
	}
	raisedDate, err := parseTimePtr(record["raised_date"])
	if err != nil {
		return nil, err
	}
	closedDate, err := parseTimePtr(record["closed_date"])
	if err != nil {
		return nil, err
	}

	return &domain.Issue{
		ID:               record["id"],
		Title:            record["title"],
		Description:      record["description"],
		Type:             domain.IssueType(record["type"]),
		Priority:         domain.Priority(record["priority"]),
		Status:           domain.Status(record["status"]),
		Assignee:         record["assignee"],
		ReportedBy:       record["reported_by"],
		Project:          record["project"],
		Environment:      record["environment"],
		Labels:           splitList(record["labels"]),
		Sprint:           record["sprint"],
		EpicLink:         record["epic_link"],
		StepsToReproduce: record["steps_to_reproduce"],
		ActualResult:     record["actual_result"],
		ExpectedResult:   record["expected_result"],
		Attachments:      splitList(record["attachments"]),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		StatusDate:       statusDate,
		RaisedDate:       raisedDate,
		ClosedDate:       closedDate,
	}, nil
}
