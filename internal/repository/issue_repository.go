package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"issue-tracker-api/internal/domain"
)

// issueRepositoryImpl is the GORM implementation of IssueRepository
type issueRepositoryImpl struct {
	db *gorm.DB
}

// NewIssueRepository creates a new instance of IssueRepository
func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &issueRepositoryImpl{db: db}
}

// List returns all issues ordered by creation time, newest first
func (r *issueRepositoryImpl) List(ctx context.Context) ([]*domain.Issue, error) {
	var issues []*domain.Issue
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

// FindByID finds an issue by its ID
func (r *issueRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	var issue domain.Issue
	if err := r.db.WithContext(ctx).First(&issue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &issue, nil
}

// Create inserts a new issue
func (r *issueRepositoryImpl) Create(ctx context.Context, issue *domain.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

// Update replaces the stored record with the given issue
func (r *issueRepositoryImpl) Update(ctx context.Context, issue *domain.Issue) error {
	result := r.db.WithContext(ctx).Model(&domain.Issue{}).
		Where("id = ?", issue.ID).
		Select("*").
		Updates(issue)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hard-deletes an issue by ID
func (r *issueRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Issue{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
