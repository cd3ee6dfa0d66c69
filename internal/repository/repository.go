// Package repository defines the collection-level storage contract shared
// by the database and workbook backends, plus the GORM implementations.
package repository

import (
	"context"
	"errors"

	"issue-tracker-api/internal/domain"
)

// ErrNotFound is returned when a record id does not exist in the store.
// Both storage backends report missing records with this sentinel.
var ErrNotFound = errors.New("record not found")

// IssueRepository defines data access for issues
type IssueRepository interface {
	List(ctx context.Context) ([]*domain.Issue, error)
	FindByID(ctx context.Context, id string) (*domain.Issue, error)
	Create(ctx context.Context, issue *domain.Issue) error
	Update(ctx context.Context, issue *domain.Issue) error
	Delete(ctx context.Context, id string) error
}

// ProjectRepository defines data access for projects
type ProjectRepository interface {
	List(ctx context.Context) ([]*domain.Project, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, projects []*domain.Project) error
}

// CommentRepository defines data access for comments
type CommentRepository interface {
	FindByIssueID(ctx context.Context, issueID string) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	DeleteByIssueID(ctx context.Context, issueID string) error
}
