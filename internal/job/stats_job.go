// Package job holds the scheduled background work.
package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/metrics"
	"issue-tracker-api/internal/repository"
)

// StatsJob refreshes the board gauges from the store. It runs on a cron
// schedule so the metrics reflect writes made by other processes too.
type StatsJob struct {
	issueRepo   repository.IssueRepository
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	timeout     time.Duration
}

// NewStatsJob creates the gauge refresh job
func NewStatsJob(
	issueRepo repository.IssueRepository,
	projectRepo repository.ProjectRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StatsJob {
	return &StatsJob{
		issueRepo:   issueRepo,
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
		timeout:     30 * time.Second,
	}
}

// Run recomputes the issue and project gauges once
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	issues, err := j.issueRepo.List(ctx)
	if err != nil {
		j.logger.Warn("stats refresh: failed to list issues", zap.Error(err))
		return
	}

	counts := map[domain.Status]int{
		domain.StatusTodo:     0,
		domain.StatusProgress: 0,
		domain.StatusDone:     0,
	}
	for _, issue := range issues {
		counts[issue.Status]++
	}
	for status, count := range counts {
		j.metrics.SetIssuesByStatus(string(status), count)
	}

	projectCount, err := j.projectRepo.Count(ctx)
	if err != nil {
		j.logger.Warn("stats refresh: failed to count projects", zap.Error(err))
		return
	}
	j.metrics.SetProjectsTotal(int(projectCount))

	j.logger.Debug("stats refreshed",
		zap.Int("issues", len(issues)),
		zap.Int64("projects", projectCount),
	)
}
