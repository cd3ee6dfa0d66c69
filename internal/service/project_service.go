package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/dto"
	"issue-tracker-api/internal/repository"
	"issue-tracker-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error)
	EnsureSeeded(ctx context.Context) error
}

type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo repository.ProjectRepository, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// ListProjects returns all projects ordered by name
func (s *projectServiceImpl) ListProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list projects", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeStorage, "Failed to load projects", err.Error())
	}
	return dto.ToProjectResponses(projects), nil
}

// EnsureSeeded writes the default projects into an empty store. It runs
// once at startup so reads never seed as a side effect.
func (s *projectServiceImpl) EnsureSeeded(ctx context.Context) error {
	count, err := s.projectRepo.Count(ctx)
	if err != nil {
		return response.NewAppError(response.ErrCodeStorage, "Failed to count projects", err.Error())
	}
	if count > 0 {
		return nil
	}

	defaults := domain.DefaultProjects(s.now().UTC())
	if err := s.projectRepo.CreateBatch(ctx, defaults); err != nil {
		return response.NewAppError(response.ErrCodeStorage, "Failed to seed projects", err.Error())
	}
	s.logger.Info("seeded default projects", zap.Int("count", len(defaults)))
	return nil
}
