package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"issue-tracker-api/internal/domain"
)

func TestEnsureSeeded_EmptyStore(t *testing.T) {
	var created []*domain.Project
	repo := &MockProjectRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 0, nil },
		CreateBatchFunc: func(ctx context.Context, projects []*domain.Project) error {
			created = projects
			return nil
		},
	}
	svc := NewProjectService(repo, zap.NewNop())

	require.NoError(t, svc.EnsureSeeded(context.Background()))
	require.Len(t, created, 3)

	codes := []string{created[0].Code, created[1].Code, created[2].Code}
	assert.ElementsMatch(t, []string{"SLP", "TMS", "TCP"}, codes)
	for _, project := range created {
		assert.NotEmpty(t, project.ID)
		assert.NotEmpty(t, project.Name)
	}
}

func TestEnsureSeeded_NonEmptyStoreIsNoop(t *testing.T) {
	repo := &MockProjectRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 5, nil },
		CreateBatchFunc: func(ctx context.Context, projects []*domain.Project) error {
			t.Fatal("seeding must not run against a non-empty store")
			return nil
		},
	}
	svc := NewProjectService(repo, zap.NewNop())

	require.NoError(t, svc.EnsureSeeded(context.Background()))
}

func TestListProjects(t *testing.T) {
	now := time.Now().UTC()
	repo := &MockProjectRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Project, error) {
			return domain.DefaultProjects(now), nil
		},
	}
	svc := NewProjectService(repo, zap.NewNop())

	projects, err := svc.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "1", projects[0].ID)
}
