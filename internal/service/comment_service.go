package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/dto"
	"issue-tracker-api/internal/metrics"
	"issue-tracker-api/internal/repository"
	"issue-tracker-api/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	ListComments(ctx context.Context, issueID string) ([]*dto.CommentResponse, error)
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	events      EventPublisher
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewCommentService creates a new comment service instance
func NewCommentService(
	commentRepo repository.CommentRepository,
	events EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		events:      events,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// ListComments returns the comments of one issue, oldest first
func (s *commentServiceImpl) ListComments(ctx context.Context, issueID string) ([]*dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindByIssueID(ctx, issueID)
	if err != nil {
		s.logger.Error("failed to list comments", zap.String("issue_id", issueID), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeStorage, "Failed to load comments", err.Error())
	}
	return dto.ToCommentResponses(comments), nil
}

// CreateComment validates and stores a new comment. The referenced issue
// is not looked up, so a comment may outlive or predate its issue.
func (s *commentServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if req.IssueID == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Issue ID is required", "")
	}
	if req.CommentText == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment text is required", "")
	}

	now := s.now().UTC()
	comment := &domain.Comment{
		ID:              uuid.NewString(),
		IssueID:         req.IssueID,
		CommentText:     req.CommentText,
		ActionTaken:     req.ActionTaken,
		SolutionSummary: req.SolutionSummary,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("failed to create comment", zap.String("issue_id", req.IssueID), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeStorage, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	if s.events != nil {
		s.events.Publish(EventCommentCreated, comment.ID)
	}
	s.logger.Info("comment created", zap.String("comment_id", comment.ID), zap.String("issue_id", comment.IssueID))

	return dto.ToCommentResponse(comment), nil
}
