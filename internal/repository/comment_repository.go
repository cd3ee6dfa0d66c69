package repository

import (
	"context"

	"gorm.io/gorm"

	"issue-tracker-api/internal/domain"
)

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// FindByIssueID returns the comments for one issue, oldest first
func (r *commentRepositoryImpl) FindByIssueID(ctx context.Context, issueID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// DeleteByIssueID removes all comments belonging to an issue
func (r *commentRepositoryImpl) DeleteByIssueID(ctx context.Context, issueID string) error {
	return r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&domain.Comment{}).Error
}
