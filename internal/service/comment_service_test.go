package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/dto"
	"issue-tracker-api/internal/response"
)

func TestCreateComment(t *testing.T) {
	var stored *domain.Comment
	commentRepo := &MockCommentRepository{
		CreateFunc: func(ctx context.Context, comment *domain.Comment) error {
			stored = comment
			return nil
		},
	}
	publisher := &MockPublisher{}
	svc := NewCommentService(commentRepo, publisher, nil, zap.NewNop()).(*commentServiceImpl)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	resp, err := svc.CreateComment(context.Background(), &dto.CreateCommentRequest{
		IssueID:     "issue-1",
		CommentText: "looks like a race",
		CreatedBy:   "dana",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "issue-1", resp.IssueID)
	assert.Equal(t, now, resp.CreatedAt)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, resp.ID)
	assert.Equal(t, []string{EventCommentCreated + ":" + resp.ID}, publisher.Events)
}

func TestCreateComment_Validation(t *testing.T) {
	commentRepo := &MockCommentRepository{
		CreateFunc: func(ctx context.Context, comment *domain.Comment) error {
			t.Fatal("create must not be called for invalid input")
			return nil
		},
	}
	svc := NewCommentService(commentRepo, nil, nil, zap.NewNop())

	tests := []struct {
		name string
		req  *dto.CreateCommentRequest
	}{
		{"missing issue id", &dto.CreateCommentRequest{CommentText: "text"}},
		{"missing text", &dto.CreateCommentRequest{IssueID: "issue-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateComment(context.Background(), tt.req)
			var appErr *response.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, response.ErrCodeValidation, appErr.Code)
		})
	}
}

func TestCreateComment_UnknownIssueAccepted(t *testing.T) {
	var stored *domain.Comment
	commentRepo := &MockCommentRepository{
		CreateFunc: func(ctx context.Context, comment *domain.Comment) error {
			stored = comment
			return nil
		},
	}
	svc := NewCommentService(commentRepo, nil, nil, zap.NewNop())

	// The issue id is an opaque reference, never checked for existence
	resp, err := svc.CreateComment(context.Background(), &dto.CreateCommentRequest{
		IssueID:     "no-such-issue",
		CommentText: "orphan",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "no-such-issue", resp.IssueID)
}

func TestListComments(t *testing.T) {
	now := time.Now().UTC()
	commentRepo := &MockCommentRepository{
		FindByIssueIDFunc: func(ctx context.Context, issueID string) ([]*domain.Comment, error) {
			return []*domain.Comment{
				{ID: "c1", IssueID: issueID, CommentText: "first", CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	svc := NewCommentService(commentRepo, nil, nil, zap.NewNop())

	comments, err := svc.ListComments(context.Background(), "issue-1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "c1", comments[0].ID)
}
