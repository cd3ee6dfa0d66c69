package repository

import (
	"context"

	"gorm.io/gorm"

	"issue-tracker-api/internal/domain"
)

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// List returns all projects ordered by name ascending
func (r *projectRepositoryImpl) List(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Count returns the number of stored projects
func (r *projectRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateBatch inserts multiple projects at once
func (r *projectRepositoryImpl) CreateBatch(ctx context.Context, projects []*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(projects).Error
}
