package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/dto"
	"issue-tracker-api/internal/metrics"
	"issue-tracker-api/internal/repository"
	"issue-tracker-api/internal/response"
)

// Event types published on the realtime feed
const (
	EventIssueCreated   = "issue.created"
	EventIssueUpdated   = "issue.updated"
	EventIssueDeleted   = "issue.deleted"
	EventCommentCreated = "comment.created"
)

// EventPublisher pushes change notifications to connected board clients
type EventPublisher interface {
	Publish(eventType, entityID string)
}

// IssueService defines the interface for issue business logic
type IssueService interface {
	ListIssues(ctx context.Context) ([]*dto.IssueResponse, error)
	CreateIssue(ctx context.Context, req *dto.CreateIssueRequest) (*dto.IssueResponse, error)
	UpdateIssue(ctx context.Context, id string, req *dto.UpdateIssueRequest) (*dto.IssueResponse, error)
	DeleteIssue(ctx context.Context, id string) error
}

type issueServiceImpl struct {
	issueRepo   repository.IssueRepository
	commentRepo repository.CommentRepository
	events      EventPublisher
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewIssueService creates a new issue service instance. The publisher and
// metrics may be nil, in which case notifications are skipped.
func NewIssueService(
	issueRepo repository.IssueRepository,
	commentRepo repository.CommentRepository,
	events EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) IssueService {
	return &issueServiceImpl{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		events:      events,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// ListIssues returns all issues, newest first
func (s *issueServiceImpl) ListIssues(ctx context.Context) ([]*dto.IssueResponse, error) {
	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list issues", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeStorage, "Failed to load issues", err.Error())
	}
	return dto.ToIssueResponses(issues), nil
}

// CreateIssue validates the request, fills defaults and stores a new issue
func (s *issueServiceImpl) CreateIssue(ctx context.Context, req *dto.CreateIssueRequest) (*dto.IssueResponse, error) {
	if req.Title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Title is required", "")
	}

	issueType := domain.IssueType(req.Type)
	if req.Type == "" {
		issueType = domain.IssueTypeTask
	} else if !issueType.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid issue type", req.Type)
	}

	priority := domain.Priority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	} else if !priority.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid priority", req.Priority)
	}

	status := domain.Status(req.Status)
	if req.Status == "" {
		status = domain.StatusTodo
	} else if !status.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid status", req.Status)
	}

	now := s.now().UTC()
	issue := &domain.Issue{
		ID:               uuid.NewString(),
		Title:            req.Title,
		Description:      req.Description,
		Type:             issueType,
		Priority:         priority,
		Status:           status,
		Assignee:         req.Assignee,
		ReportedBy:       req.ReportedBy,
		Project:          req.Project,
		Environment:      req.Environment,
		Labels:           dto.SplitList(req.Labels),
		Sprint:           req.Sprint,
		EpicLink:         req.EpicLink,
		StepsToReproduce: req.StepsToReproduce,
		ActualResult:     req.ActualResult,
		ExpectedResult:   req.ExpectedResult,
		Attachments:      dto.SplitList(req.Attachments),
		CreatedAt:        now,
		UpdatedAt:        now,
		StatusDate:       now,
		RaisedDate:       req.RaisedDate,
	}
	if status == domain.StatusDone {
		issue.ClosedDate = &now
	}

	if err := s.issueRepo.Create(ctx, issue); err != nil {
		s.logger.Error("failed to create issue", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeStorage, "Failed to create issue", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementIssueCreated()
	}
	s.publish(EventIssueCreated, issue.ID)
	s.logger.Info("issue created", zap.String("issue_id", issue.ID), zap.String("status", string(issue.Status)))

	return dto.ToIssueResponse(issue), nil
}

// UpdateIssue merges the provided fields over the stored record. A status
// change refreshes the status date, and entering the done column stamps
// the closed date while leaving it clears the stamp again.
func (s *issueServiceImpl) UpdateIssue(ctx context.Context, id string, req *dto.UpdateIssueRequest) (*dto.IssueResponse, error) {
	issue, err := s.issueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Issue not found", id)
		}
		s.logger.Error("failed to load issue", zap.String("issue_id", id), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeStorage, "Failed to load issue", err.Error())
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewAppError(response.ErrCodeValidation, "Title cannot be empty", "")
		}
		issue.Title = *req.Title
	}
	if req.Description != nil {
		issue.Description = *req.Description
	}
	if req.Type != nil {
		issueType := domain.IssueType(*req.Type)
		if !issueType.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid issue type", *req.Type)
		}
		issue.Type = issueType
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		if !priority.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid priority", *req.Priority)
		}
		issue.Priority = priority
	}

	now := s.now().UTC()
	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid status", *req.Status)
		}
		if status != issue.Status {
			issue.StatusDate = now
			if status == domain.StatusDone {
				issue.ClosedDate = &now
			} else if issue.Status == domain.StatusDone {
				issue.ClosedDate = nil
			}
		}
		issue.Status = status
	}

	if req.Assignee != nil {
		issue.Assignee = *req.Assignee
	}
	if req.ReportedBy != nil {
		issue.ReportedBy = *req.ReportedBy
	}
	if req.Project != nil {
		issue.Project = *req.Project
	}
	if req.Environment != nil {
		issue.Environment = *req.Environment
	}
	if req.Labels != nil {
		issue.Labels = dto.SplitList(*req.Labels)
	}
	if req.Sprint != nil {
		issue.Sprint = *req.Sprint
	}
	if req.EpicLink != nil {
		issue.EpicLink = *req.EpicLink
	}
	if req.StepsToReproduce != nil {
		issue.StepsToReproduce = *req.StepsToReproduce
	}
	if req.ActualResult != nil {
		issue.ActualResult = *req.ActualResult
	}
	if req.ExpectedResult != nil {
		issue.ExpectedResult = *req.ExpectedResult
	}
	if req.Attachments != nil {
		issue.Attachments = dto.SplitList(*req.Attachments)
	}
	if req.RaisedDate != nil {
		issue.RaisedDate = req.RaisedDate
	}
	if req.ClosedDate != nil {
		issue.ClosedDate = req.ClosedDate
	}
	issue.UpdatedAt = now

	if err := s.issueRepo.Update(ctx, issue); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Issue not found", id)
		}
		s.logger.Error("failed to update issue", zap.String("issue_id", id), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeStorage, "Failed to update issue", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementIssueUpdated()
	}
	s.publish(EventIssueUpdated, issue.ID)
	s.logger.Info("issue updated", zap.String("issue_id", issue.ID))

	return dto.ToIssueResponse(issue), nil
}

// DeleteIssue removes an issue and all of its comments
func (s *issueServiceImpl) DeleteIssue(ctx context.Context, id string) error {
	if err := s.issueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Issue not found", id)
		}
		s.logger.Error("failed to delete issue", zap.String("issue_id", id), zap.Error(err))
		return response.NewAppError(response.ErrCodeStorage, "Failed to delete issue", err.Error())
	}

	// Deleting an issue takes its comments with it
	if err := s.commentRepo.DeleteByIssueID(ctx, id); err != nil {
		s.logger.Error("failed to delete comments for issue", zap.String("issue_id", id), zap.Error(err))
		return response.NewAppError(response.ErrCodeStorage, "Failed to delete issue comments", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementIssueDeleted()
	}
	s.publish(EventIssueDeleted, id)
	s.logger.Info("issue deleted", zap.String("issue_id", id))
	return nil
}

func (s *issueServiceImpl) publish(eventType, entityID string) {
	if s.events != nil {
		s.events.Publish(eventType, entityID)
	}
}
