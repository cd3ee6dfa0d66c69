package service

import (
	"context"

	"issue-tracker-api/internal/domain"
)

// MockIssueRepository is a function-field mock of repository.IssueRepository
type MockIssueRepository struct {
	ListFunc     func(ctx context.Context) ([]*domain.Issue, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.Issue, error)
	CreateFunc   func(ctx context.Context, issue *domain.Issue) error
	UpdateFunc   func(ctx context.Context, issue *domain.Issue) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *MockIssueRepository) List(ctx context.Context) ([]*domain.Issue, error) {
	return m.ListFunc(ctx)
}

func (m *MockIssueRepository) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockIssueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	return m.CreateFunc(ctx, issue)
}

func (m *MockIssueRepository) Update(ctx context.Context, issue *domain.Issue) error {
	return m.UpdateFunc(ctx, issue)
}

func (m *MockIssueRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

// MockProjectRepository is a function-field mock of repository.ProjectRepository
type MockProjectRepository struct {
	ListFunc        func(ctx context.Context) ([]*domain.Project, error)
	CountFunc       func(ctx context.Context) (int64, error)
	CreateBatchFunc func(ctx context.Context, projects []*domain.Project) error
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	return m.ListFunc(ctx)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

func (m *MockProjectRepository) CreateBatch(ctx context.Context, projects []*domain.Project) error {
	return m.CreateBatchFunc(ctx, projects)
}

// MockCommentRepository is a function-field mock of repository.CommentRepository
type MockCommentRepository struct {
	FindByIssueIDFunc   func(ctx context.Context, issueID string) ([]*domain.Comment, error)
	CreateFunc          func(ctx context.Context, comment *domain.Comment) error
	DeleteByIssueIDFunc func(ctx context.Context, issueID string) error
}

func (m *MockCommentRepository) FindByIssueID(ctx context.Context, issueID string) ([]*domain.Comment, error) {
	return m.FindByIssueIDFunc(ctx, issueID)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return m.CreateFunc(ctx, comment)
}

func (m *MockCommentRepository) DeleteByIssueID(ctx context.Context, issueID string) error {
	return m.DeleteByIssueIDFunc(ctx, issueID)
}

// MockPublisher records published events
type MockPublisher struct {
	Events []string
}

func (m *MockPublisher) Publish(eventType, entityID string) {
	m.Events = append(m.Events, eventType+":"+entityID)
}
